// Package heredity computes, for every person in a pedigree, the posterior
// distribution over how many copies of a gene they carry and whether they
// exhibit the trait the gene influences.
//
// Inference is exact: every assignment of gene counts and traits that agrees
// with the observed evidence is enumerated, so the work grows exponentially
// with the number of people. Pedigrees of up to roughly 15-20 people are
// practical.
package heredity

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// databaseExtensions are the suffixes Open treats as SQLite pedigree
// databases rather than CSV.
var databaseExtensions = map[string]struct{}{
	".db":      {},
	".sqlite":  {},
	".sqlite3": {},
}

// Open loads and validates a pedigree. Paths ending in .db, .sqlite or .sqlite3
// are opened as local SQLite pedigree databases; anything else is read as CSV
// via OpenSource, so it may be compressed and may live in gs:// or s3://.
func Open(ctx context.Context, path string) (Pedigree, error) {
	var (
		pedigree Pedigree
		err      error
	)

	if _, isDB := databaseExtensions[strings.ToLower(filepath.Ext(path))]; isDB {
		pedigree, err = loadDB(ctx, path)
	} else {
		pedigree, err = loadCSV(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	if err := pedigree.Validate(); err != nil {
		return nil, err
	}

	return pedigree, nil
}

func loadDB(ctx context.Context, path string) (Pedigree, error) {
	// Opening a missing SQLite file would silently create it
	if _, err := os.Stat(path); err != nil {
		return nil, pfx.Err(err)
	}

	db, err := OpenPedigreeDB(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer db.Close()

	return db.Load(ctx)
}

func loadCSV(ctx context.Context, path string) (Pedigree, error) {
	rc, err := OpenSource(ctx, path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	return ReadCSV(rc)
}
