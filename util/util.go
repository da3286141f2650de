// Package util holds the small generic helpers shared across the
// decoder packages: clamping, minimum, and the tab-file directory walk
// the index command uses to discover input files.
package util

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
)

// Min returns the smaller of two ordered values.
func Min[A constraints.Ordered](a, b A) A {
	if a < b {
		return a
	}
	return b
}

// Clamp restricts v to [lo, hi].
func Clamp[A constraints.Ordered](v, lo, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var tabSuffixes = []string{".gp3", ".gp4", ".gp5", ".gpx", ".gp"}

// GatherTabPaths walks root and returns every file whose extension
// matches a recognized tablature suffix, up to maxNum results (0 means
// unlimited).
func GatherTabPaths(root string, maxNum int) ([]string, error) {
	var res []string
	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		lower := strings.ToLower(path)
		for _, suffix := range tabSuffixes {
			if strings.HasSuffix(lower, suffix) {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, path)
				}
				break
			}
		}
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, err
	}
	return res, nil
}
