package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	assert.Equal(t, 3, Min(3, 5))
	assert.Equal(t, 3, Min(5, 3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 99))
	assert.Equal(t, 99, Clamp(150, 0, 99))
	assert.Equal(t, 42, Clamp(42, 0, 99))
}

func TestGatherTabPathsFiltersBySuffix(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.gp5", "b.gpx", "c.txt", "d.mid"} {
		f, err := os.Create(filepath.Join(dir, name))
		assert.NoError(t, err)
		f.Close()
	}

	paths, err := GatherTabPaths(dir, 0)
	assert.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestGatherTabPathsHonorsMaxNum(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.gp5", "b.gp5", "c.gp5"} {
		f, err := os.Create(filepath.Join(dir, name))
		assert.NoError(t, err)
		f.Close()
	}

	paths, err := GatherTabPaths(dir, 2)
	assert.NoError(t, err)
	assert.Len(t, paths, 2)
}
