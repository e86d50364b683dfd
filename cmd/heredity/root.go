package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "heredity",
	Short: "Exact gene and trait inference over family pedigrees",
	Long: "heredity computes, for every person in a pedigree, the probability of carrying\n" +
		"0, 1 or 2 copies of a gene and of exhibiting the associated trait.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
