package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsphweid/gptab"
	"github.com/jsphweid/gptab/blobstore"
	"github.com/jsphweid/gptab/catalog"
	"github.com/jsphweid/gptab/util"
)

var (
	indexCatalogTable string
	indexBucket       string
)

func init() {
	indexCmd.Flags().StringVar(&indexCatalogTable, "catalog-table", "", "DynamoDB table name (overrides GPTAB_CATALOG_TABLE)")
	indexCmd.Flags().StringVar(&indexBucket, "bucket", "", "S3 bucket name (overrides GPTAB_BUCKET)")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index <dir>",
	Short: "Parses every tablature file under a directory and catalogs it",
	Long:  `Parses every tablature file under a directory and catalogs it`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		if indexCatalogTable != "" {
			os.Setenv("GPTAB_CATALOG_TABLE", indexCatalogTable)
		}
		if indexBucket != "" {
			os.Setenv("GPTAB_BUCKET", indexBucket)
		}
		runIndex(args[0])
	},
}

func runIndex(dir string) {
	paths, err := util.GatherTabPaths(dir, 0)
	if err != nil {
		panic("could not walk directory because: " + err.Error())
	}

	for i, path := range paths {
		fmt.Printf("Processing %v of %v files\n", i+1, len(paths))
		indexOne(path)
	}
}

func indexOne(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}

	song, err := gptab.Parse(data, path)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}

	key, err := blobstore.Put(song)
	if err != nil {
		fmt.Printf("Skipping %v, could not store blob: %v\n", path, err)
		return
	}

	if err := catalog.Put(catalog.EntryFromSong(key, song)); err != nil {
		fmt.Printf("Skipping %v, could not catalog: %v\n", path, err)
	}
}
