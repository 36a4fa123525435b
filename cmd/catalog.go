package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fortelabs/pcsets/forte"
	"github.com/fortelabs/pcsets/model"
	"github.com/fortelabs/pcsets/parse"
)

var catalogJSON bool

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "emit the entries as JSON")
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog <cardinality or forte number>",
	Short: "Lists catalog entries",
	Long:  `Lists catalog entries by cardinality, or shows one entry by Forte number`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need a cardinality (1-12) or a forte number, e.g. 3-11")
		}
		showCatalog(args[0])
	},
}

func showCatalog(arg string) {
	catalog := forte.NewCatalog()

	if parse.IsForteNumber(arg) {
		showEntry(catalog, arg)
		return
	}

	cardinality, err := strconv.Atoi(arg)
	if err != nil {
		panic("Not a cardinality or forte number: " + arg)
	}
	sets := catalog.SetsByCardinality(cardinality)
	if sets == nil {
		panic("Cardinality must be between 1 and 12")
	}

	entries := make([]model.CatalogEntry, 0, len(sets))
	for _, cs := range sets {
		vector, _ := catalog.IntervalVectorFor(cs.Number)
		entries = append(entries, model.CatalogEntry{
			ForteNumber:    cs.Number,
			PrimeForm:      cs.Set.Classes(),
			IntervalVector: vector,
		})
	}

	if catalogJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(entries)
		return
	}
	for _, e := range entries {
		fmt.Printf("%-6s %-22v %v\n", e.ForteNumber, e.PrimeForm, e.IntervalVector)
	}
}

func showEntry(catalog *forte.Catalog, number string) {
	s, ok := catalog.SetForNumber(number)
	if !ok {
		panic("No catalog entry for " + number)
	}
	vector, _ := catalog.IntervalVectorFor(number)

	fmt.Printf("forte number:    %v\n", number)
	fmt.Printf("prime form:      %v\n", s.Classes())
	fmt.Printf("interval vector: %v\n", vector)
	if similar := catalog.FindSimilar(number); len(similar) > 0 {
		fmt.Printf("similar sets:    %v\n", similar)
	}
	if partner, ok := catalog.ZPartner(s); ok {
		fmt.Printf("z partner:       %v\n", partner)
	}
}
