package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fortelabs/pcsets/db"
	"github.com/fortelabs/pcsets/examples"
	"github.com/fortelabs/pcsets/forte"
)

var (
	examplesComposer string
	examplesMetadata bool
)

func init() {
	examplesCmd.Flags().StringVar(&examplesComposer, "composer", "", "filter by composer")
	examplesCmd.Flags().BoolVar(&examplesMetadata, "metadata", false, "fetch recording metadata")
	rootCmd.AddCommand(examplesCmd)
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Lists musical examples",
	Long:  `Lists the built-in musical examples with their classifications`,
	Run: func(cmd *cobra.Command, args []string) {
		listExamples()
	},
}

func listExamples() {
	catalog := forte.NewCatalog()

	all := examples.All()
	if examplesComposer != "" {
		all = examples.ByComposer(examplesComposer)
	}

	for _, ex := range all {
		s := ex.Set()
		number, _ := catalog.ForteNumber(s)
		if number == "" {
			number = "-"
		}
		fmt.Printf("%-28s %-6s %v  %s: %s\n", ex.Name, number, s.Classes(), ex.Composer, ex.Piece)
	}

	if !examplesMetadata {
		return
	}

	names := make([]string, 0, len(all))
	for _, ex := range all {
		names = append(names, ex.Name)
	}
	metadatas, err := db.GetExampleMetadatas(names)
	if err != nil {
		panic("Could not fetch metadata: " + err.Error())
	}
	for name, m := range metadatas {
		fmt.Printf("%s: %s, %s (%d)\n", name, m.Composer, m.Piece, m.Year)
	}
}
