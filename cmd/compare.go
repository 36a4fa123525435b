package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fortelabs/pcsets/analysis"
	"github.com/fortelabs/pcsets/forte"
	"github.com/fortelabs/pcsets/parse"
	"github.com/fortelabs/pcsets/pcset"
)

var compareJSON bool

func init() {
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "emit the report as JSON")
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <set1> <set2>",
	Short: "Compares two pitch class sets",
	Long:  `Compares two pitch class sets, e.g. "pcsets compare 0,4,7 0,3,7"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need exactly 2 sets, e.g. 0,4,7 0,3,7")
		}
		compare(args[0], args[1])
	},
}

func compare(input1, input2 string) {
	pcs1, err := parse.Set(input1)
	if err != nil {
		panic("Could not parse first set: " + err.Error())
	}
	pcs2, err := parse.Set(input2)
	if err != nil {
		panic("Could not parse second set: " + err.Error())
	}

	analyzer := analysis.NewAnalyzer(forte.NewCatalog())
	report := analyzer.Compare(pcset.New(pcs1...), pcset.New(pcs2...))

	if compareJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(report)
		return
	}

	fmt.Printf("set 1: %v (%v)\n", report.Set1.PitchClasses, report.Set1.ForteNumber)
	fmt.Printf("set 2: %v (%v)\n", report.Set2.PitchClasses, report.Set2.ForteNumber)
	fmt.Printf("same prime form:      %v\n", report.SamePrimeForm)
	fmt.Printf("same interval vector: %v\n", report.SameIntervalVector)
	fmt.Printf("same forte number:    %v\n", report.SameForteNumber)
	fmt.Printf("set 1 subset of 2:    %v\n", report.Set1SubsetOfSet2)
	fmt.Printf("set 2 subset of 1:    %v\n", report.Set2SubsetOfSet1)
	fmt.Printf("intersection:         %v\n", report.Intersection)
	fmt.Printf("union:                %v\n", report.Union)
	fmt.Printf("similarity:           R=%v R0=%v R1=%v R2=%v\n",
		report.Similarity.R, report.Similarity.R0, report.Similarity.R1, report.Similarity.R2)
}
