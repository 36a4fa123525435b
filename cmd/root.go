package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pcsets",
	Short: "Pitch class set toolkit",
	Long:  `Analyze, compare, generate, and audition pitch class sets with Forte classifications.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
