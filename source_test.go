package heredity

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, c Compression, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case CompressionGzip:
		w = gzip.NewWriter(&buf)
	case CompressionZLIB:
		w = zlib.NewWriter(&buf)
	case CompressionZStandard:
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = enc
	default:
		return data
	}

	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestCompressionFromPath(t *testing.T) {
	for path, expected := range map[string]Compression{
		"family.csv":         CompressionDisabled,
		"family.csv.gz":      CompressionGzip,
		"family.csv.zlib":    CompressionZLIB,
		"gs://b/family.zst":  CompressionZStandard,
		"family.gz.csv":      CompressionDisabled,
		"s3://b/k/family.gz": CompressionGzip,
	} {
		assert.Equal(t, expected, CompressionFromPath(path), path)
	}
}

func TestOpenSourceCompressed(t *testing.T) {
	dir := t.TempDir()

	for name, c := range map[string]Compression{
		"family0.csv":      CompressionDisabled,
		"family0.csv.gz":   CompressionGzip,
		"family0.csv.zlib": CompressionZLIB,
		"family0.csv.zst":  CompressionZStandard,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, compress(t, c, []byte(family0CSV)), 0o644))

			rc, err := OpenSource(context.Background(), path)
			require.NoError(t, err)
			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.NoError(t, rc.Close())

			assert.Equal(t, family0CSV, string(got))
		})
	}
}

func TestOpenSourceErrors(t *testing.T) {
	_, err := OpenSource(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	// Malformed bucket paths fail before any network access
	for _, path := range []string{"gs://bucket-only", "s3:///key", "gs://bucket/"} {
		_, err := OpenSource(context.Background(), path)
		assert.Error(t, err, path)
	}

	// A file that claims to be gzip but is not
	path := filepath.Join(t.TempDir(), "family.csv.gz")
	require.NoError(t, os.WriteFile(path, []byte(family0CSV), 0o644))
	_, err = OpenSource(context.Background(), path)
	assert.Error(t, err)
}

func TestSplitBucketPath(t *testing.T) {
	bucket, key, err := splitBucketPath("gs://my-bucket/pedigrees/family0.csv", googleStoragePrefix)
	require.NoError(t, err)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "pedigrees/family0.csv", key)
}
