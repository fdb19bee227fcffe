package dataset

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies how a transaction file is compressed.
type Compression int

const (
	// NoCompression is plain text.
	NoCompression Compression = iota
	// SnappyCompression is the snappy framing format (".sz", ".snappy").
	SnappyCompression
	// ZstdCompression is a zstd stream (".zst", ".zstd").
	ZstdCompression
)

// String implements fmt.Stringer.
func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case SnappyCompression:
		return "snappy"
	case ZstdCompression:
		return "zstd"
	default:
		return "unknown"
	}
}

// CompressionFor guesses the compression of path from its extension.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sz", ".snappy":
		return SnappyCompression
	case ".zst", ".zstd":
		return ZstdCompression
	default:
		return NoCompression
	}
}

// decompress wraps r according to c. The returned release func must be
// called once reading is done.
func decompress(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case SnappyCompression:
		return snappy.NewReader(r), func() {}, nil
	case ZstdCompression:
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, errors.Wrap(err, "dataset: zstd")
		}
		return d, d.Close, nil
	default:
		return r, func() {}, nil
	}
}

// nopWriteCloser adapts a plain writer to compress's interface.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// compress wraps w according to c. Closing the result flushes the codec but
// leaves w open.
func compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case SnappyCompression:
		return snappy.NewBufferedWriter(w), nil
	case ZstdCompression:
		e, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, errors.Wrap(err, "dataset: zstd")
		}
		return e, nil
	default:
		return nopWriteCloser{w}, nil
	}
}
