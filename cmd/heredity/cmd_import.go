package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/carbocation/heredity"
	"github.com/spf13/cobra"
)

var importFlags struct {
	name string
}

var importCmd = &cobra.Command{
	Use:   "import <pedigree.csv> <out.db>",
	Short: "Convert a CSV pedigree into a SQLite pedigree database",
	Args:  cobra.ExactArgs(2),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFlags.name, "name", "", "Name recorded in the Metadata table (default: CSV file name)")
}

func runImport(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	pedigree, err := heredity.Open(cmd.Context(), src)
	if err != nil {
		return fmt.Errorf("load %s: %w", src, err)
	}

	name := importFlags.name
	if name == "" {
		name = strings.SplitN(filepath.Base(src), ".", 2)[0]
	}

	db, err := heredity.OpenPedigreeDB(dst)
	if err != nil {
		return fmt.Errorf("open %s: %w", dst, err)
	}
	defer db.Close()

	if err := db.Store(cmd.Context(), name, pedigree); err != nil {
		return fmt.Errorf("store %s: %w", dst, err)
	}

	log.Printf("Wrote %d people to %s using the %s driver\n", len(pedigree), dst, heredity.WhichSQLiteDriver())
	return nil
}
