//go:build cgo

package heredity

// If cgo is enabled, we will use the mattn cgo sqlite3 driver. It is faster
// than the modernc sqlite driver.

import (
	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

const whichSQLiteDriver = "sqlite3"

// OpenPedigreeDB opens (or creates) the SQLite pedigree database at path.
func OpenPedigreeDB(path string) (*PedigreeDB, error) {
	p := &PedigreeDB{
		Metadata: &PedigreeMetadata{},
	}

	db, err := sqlx.Connect(whichSQLiteDriver, sqlitePath(path))
	if err != nil {
		return nil, pfx.Err(err)
	}
	p.DB = db

	p.loadMetadata()

	return p, nil
}
