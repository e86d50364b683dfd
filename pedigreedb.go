package heredity

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

const pedigreeSchema = `
CREATE TABLE IF NOT EXISTS Person (
	name   TEXT PRIMARY KEY,
	mother TEXT,
	father TEXT,
	trait  INTEGER
);
CREATE TABLE IF NOT EXISTS Metadata (
	name    TEXT,
	created INTEGER
);
`

// PedigreeDB is a pedigree stored in SQLite.
type PedigreeDB struct {
	DB       *sqlx.DB
	Metadata *PedigreeMetadata
}

func (p *PedigreeDB) Close() error {
	return p.DB.Close()
}

// PedigreeMetadata conforms to the single row of the optional "Metadata"
// table.
type PedigreeMetadata struct {
	Name    string `db:"name"`
	Created Time   `db:"created"`
}

// personRow conforms to the rows of the "Person" table and can be parsed
// with sqlx.
type personRow struct {
	Name   string         `db:"name"`
	Mother sql.NullString `db:"mother"`
	Father sql.NullString `db:"father"`
	Trait  sql.NullInt64  `db:"trait"`
}

func sqlitePath(path string) string {
	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return path
}

func (p *PedigreeDB) loadMetadata() {
	// Not all pedigree databases have metadata; ignore any error
	_ = p.DB.Get(p.Metadata, "SELECT name, created FROM Metadata LIMIT 1")
}

// Load reads every person. The result has not been validated; see
// Pedigree.Validate.
func (p *PedigreeDB) Load(ctx context.Context) (Pedigree, error) {
	var rows []personRow
	if err := p.DB.SelectContext(ctx, &rows, "SELECT name, mother, father, trait FROM Person ORDER BY name"); err != nil {
		return nil, pfx.Err(err)
	}

	pedigree := make(Pedigree, len(rows))
	for _, row := range rows {
		person := Person{
			Name:   row.Name,
			Mother: row.Mother.String,
			Father: row.Father.String,
		}
		if row.Trait.Valid {
			switch row.Trait.Int64 {
			case 0:
				person.Trait = Absent
			case 1:
				person.Trait = Present
			default:
				return nil, pfx.Err(fmt.Errorf("%q: trait must be 0, 1 or NULL, got %d", row.Name, row.Trait.Int64))
			}
		}
		pedigree[row.Name] = person
	}

	return pedigree, nil
}

// Store replaces the people and Metadata held in the database with pedigree
// and name, creating the tables if needed. It runs in a single transaction.
func (p *PedigreeDB) Store(ctx context.Context, name string, pedigree Pedigree) error {
	tx, err := p.DB.BeginTxx(ctx, nil)
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, pedigreeSchema); err != nil {
		return pfx.Err(err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM Person"); err != nil {
		return pfx.Err(err)
	}

	for _, key := range pedigree.Names() {
		person := pedigree[key]
		row := personRow{
			Name:   key,
			Mother: sql.NullString{String: person.Mother, Valid: person.Mother != ""},
			Father: sql.NullString{String: person.Father, Valid: person.Father != ""},
		}
		if hasTrait, known := person.Trait.Observed(); known {
			row.Trait = sql.NullInt64{Int64: int64(traitIndex(hasTrait)), Valid: true}
		}
		if _, err := tx.NamedExecContext(ctx, `INSERT INTO Person (name, mother, father, trait) VALUES (:name, :mother, :father, :trait)`, row); err != nil {
			return pfx.Err(err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM Metadata"); err != nil {
		return pfx.Err(err)
	}
	created := time.Now()
	if _, err := tx.ExecContext(ctx, "INSERT INTO Metadata (name, created) VALUES (?, ?)", name, created.Unix()); err != nil {
		return pfx.Err(err)
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	p.Metadata = &PedigreeMetadata{Name: name, Created: Time(time.Unix(created.Unix(), 0))}

	return nil
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
