//go:build !cgo

package heredity

// If cgo is not enabled, we will use the modernc.org/sqlite non-cgo sqlite
// driver. It is slower than the sqlite3 cgo driver.

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

const whichSQLiteDriver = "sqlite"

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

	_, err = db.DB.Exec(`
	PRAGMA synchronous = OFF;
	PRAGMA auto_vacuum = NONE;
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to set pragmas: %w", err)
	}

	p.loadMetadata()

	return p, nil
}
