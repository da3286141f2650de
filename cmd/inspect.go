package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmespath/go-jmespath"
	"github.com/spf13/cobra"

	"github.com/jsphweid/gptab"
)

var inspectQuery string

func init() {
	inspectCmd.Flags().StringVar(&inspectQuery, "query", "", "jmespath expression run over the decoded Song JSON")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Decodes one file and prints its Song as JSON",
	Long:  `Decodes one file and prints its Song as JSON`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("could not read file because: " + err.Error())
	}

	song, err := gptab.Parse(data, path)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}

	printAsJSON(song)
}

func printAsJSON(v any) {
	if inspectQuery == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			panic("could not encode song because: " + err.Error())
		}
		return
	}

	// jmespath.Search operates on generic JSON data (map[string]any,
	// []any, ...), so round-trip through the JSON encoding first.
	raw, err := json.Marshal(v)
	if err != nil {
		panic("could not marshal song because: " + err.Error())
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		panic("could not unmarshal song because: " + err.Error())
	}

	result, err := jmespath.Search(inspectQuery, generic)
	if err != nil {
		panic("bad --query expression: " + err.Error())
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		panic("could not encode query result because: " + err.Error())
	}
	fmt.Println(string(out))
}
