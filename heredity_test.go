package heredity

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "family0.csv.gz")
	require.NoError(t, os.WriteFile(csvPath, compress(t, CompressionGzip, []byte(family0CSV)), 0o644))

	fromCSV, err := Open(context.Background(), csvPath)
	require.NoError(t, err)
	assert.Equal(t, family0(), fromCSV)

	dbPath := filepath.Join(dir, "family0.sqlite")
	db, err := OpenPedigreeDB(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Store(context.Background(), "family0", fromCSV))
	require.NoError(t, db.Close())

	fromDB, err := Open(context.Background(), dbPath)
	require.NoError(t, err)
	assert.Equal(t, fromCSV, fromDB)
}

func TestOpenValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orphan.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,mother,father,trait\nKid,Mum,Dad,\n"), 0o644))

	_, err := Open(context.Background(), path)
	assert.True(t, errors.Is(err, ErrMalformedPedigree), "got %v", err)
}

func TestOpenMissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	_, err := Open(context.Background(), path)
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "Open created %s", path)
}
