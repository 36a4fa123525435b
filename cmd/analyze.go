package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fortelabs/pcsets/analysis"
	"github.com/fortelabs/pcsets/forte"
	"github.com/fortelabs/pcsets/parse"
	"github.com/fortelabs/pcsets/pcset"
	"github.com/fortelabs/pcsets/util"
)

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit the report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <pitch classes>",
	Short: "Analyzes a pitch class set",
	Long:  `Analyzes a pitch class set, e.g. "pcsets analyze 0,4,7"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need a pitch class set, e.g. 0,4,7")
		}
		analyze(strings.Join(args, " "))
	},
}

func analyze(input string) {
	pcs, err := parse.Set(input)
	if err != nil {
		panic("Could not parse set: " + err.Error())
	}
	analyzer := analysis.NewAnalyzer(forte.NewCatalog())
	report := analyzer.Analyze(pcset.New(pcs...))

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(report)
		return
	}
	printAnalysis(report)
}

func printAnalysis(report analysis.Analysis) {
	fmt.Printf("set:             %v\n", report.PitchClasses)
	fmt.Printf("cardinality:     %v\n", report.Cardinality)
	fmt.Printf("prime form:      %v\n", report.PrimeForm)
	fmt.Printf("interval vector: %v (%d intervals)\n",
		report.IntervalVector, util.Sum(report.IntervalVector[:]))
	if report.ForteNumber != "" {
		fmt.Printf("forte number:    %v\n", report.ForteNumber)
	} else {
		fmt.Println("forte number:    not in catalog")
	}
	fmt.Printf("complement:      %v", report.Complement.PitchClasses)
	if report.Complement.ForteNumber != "" {
		fmt.Printf(" (%v)", report.Complement.ForteNumber)
	}
	fmt.Println()

	for n, t := range report.Transpositions {
		fmt.Printf("T%-3d %v\n", n, t)
	}
	for n, inv := range report.Inversions {
		fmt.Printf("I%-3d %v\n", n, inv)
	}
	for n, r := range report.Rotations {
		fmt.Printf("rot%d %v\n", n, r)
	}
	for _, size := range util.SortedKeys(report.Subsets) {
		fmt.Printf("subsets of size %d: %d\n", size, len(report.Subsets[size]))
	}
	for _, size := range util.SortedKeys(report.Supersets) {
		fmt.Printf("supersets of size %d: %d\n", size, len(report.Supersets[size]))
	}
	if len(report.SimilarSets) > 0 {
		fmt.Printf("similar sets: %v\n", strings.Join(report.SimilarSets, ", "))
	}
}
