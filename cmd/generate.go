package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fortelabs/pcsets/forte"
	"github.com/fortelabs/pcsets/generate"
	"github.com/fortelabs/pcsets/parse"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <cardinality or forte number>",
	Short: "Generates pitch class sets",
	Long:  `Generates a random set of a cardinality, or every set sharing a Forte number`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need a cardinality (1-12) or a forte number, e.g. 3-11")
		}
		runGenerate(args[0])
	},
}

func runGenerate(arg string) {
	catalog := forte.NewCatalog()
	generator := generate.NewGenerator(catalog)

	if parse.IsForteNumber(arg) {
		family := generator.SetsByForteNumber(arg)
		if family == nil {
			panic("No catalog entry for " + arg)
		}
		for _, s := range family {
			fmt.Printf("%v\n", s.Classes())
		}
		return
	}

	cardinality, err := strconv.Atoi(arg)
	if err != nil {
		panic("Not a cardinality or forte number: " + arg)
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s, err := generator.RandomSet(cardinality, rng)
	if err != nil {
		panic(err)
	}

	number, _ := catalog.ForteNumber(s)
	if number == "" {
		number = "-"
	}
	fmt.Printf("%v  prime form %v  forte %s\n", s.Classes(), s.PrimeForm(), number)
}
