package heredity

import (
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Compression indicates how (and whether) a pedigree file is compressed
type Compression uint32

const (
	CompressionDisabled Compression = iota
	CompressionZLIB
	CompressionZStandard
	CompressionGzip
)

func (c Compression) String() string {
	switch c {
	case CompressionDisabled:
		return "none"
	case CompressionZLIB:
		return "zlib"
	case CompressionZStandard:
		return "zstd"
	case CompressionGzip:
		return "gzip"

	default:
		return "Illegal selection"
	}
}

// CompressionFromPath infers the compression of a file from its suffix.
func CompressionFromPath(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(path, ".zlib"):
		return CompressionZLIB
	case strings.HasSuffix(path, ".zst"):
		return CompressionZStandard
	}
	return CompressionDisabled
}

// Decompress wraps src in a reader for the given compression. Closing the
// result closes src as well.
func Decompress(src io.ReadCloser, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionGzip:
		zr, err := gzip.NewReader(src)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return &stackedReadCloser{ReadCloser: zr, under: src}, nil
	case CompressionZLIB:
		zr, err := zlib.NewReader(src)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return &stackedReadCloser{ReadCloser: zr, under: src}, nil
	case CompressionZStandard:
		dec, err := zstd.NewReader(src)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return &stackedReadCloser{ReadCloser: dec.IOReadCloser(), under: src}, nil
	}

	return src, nil
}

// stackedReadCloser closes a decoder and then the stream beneath it.
type stackedReadCloser struct {
	io.ReadCloser
	under io.Closer
}

func (s *stackedReadCloser) Close() error {
	err := s.ReadCloser.Close()
	if uerr := s.under.Close(); err == nil {
		err = uerr
	}
	return err
}
