package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fortelabs/pcsets/forte"
	"github.com/fortelabs/pcsets/midi"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.mid>",
	Short: "Classifies the sets in a MIDI file",
	Long:  `Reads a MIDI file and classifies every set of simultaneously sounding pitch classes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 midi file path")
		}
		runImport(args[0])
	},
}

func runImport(path string) {
	file, err := midi.ReadFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	catalog := forte.NewCatalog()
	for _, s := range midi.Simultaneities(file) {
		number, _ := catalog.ForteNumber(s)
		if number == "" {
			number = "-"
		}
		fmt.Printf("%-6s %v\n", number, s.Classes())
	}
}
