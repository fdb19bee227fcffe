package dataset

import (
	"bufio"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvmine/fptree"
)

// maxLine bounds a single transaction line.
const maxLine = 10 * 1024 * 1024

var (
	// ErrUnknownEncoding is returned by Load for an unsupported encoding name.
	ErrUnknownEncoding = errors.New("dataset: unknown encoding")
)

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	separator string
	encoding  string
	lowercase bool
}

// WithSeparator splits items on the literal sep instead of whitespace/commas.
// An empty sep restores the default.
func WithSeparator(sep string) LoadOption {
	return func(c *loadConfig) { c.separator = sep }
}

// WithEncoding decodes the input from the named encoding: "utf-8" (default),
// "latin1" / "iso-8859-1", "windows-1252" or "utf-16".
func WithEncoding(name string) LoadOption {
	return func(c *loadConfig) { c.encoding = name }
}

// WithLowercase folds every item to lower case.
func WithLowercase() LoadOption {
	return func(c *loadConfig) { c.lowercase = true }
}

// lookupEncoding resolves an encoding name; nil means plain UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "utf-16", "utf16":
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.UseBOM), nil
	default:
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
	}
}

// Load reads transactions from r.
func Load(r io.Reader, opts ...LoadOption) ([]fptree.Transaction[string], error) {
	var cfg loadConfig
	for _, fn := range opts {
		fn(&cfg)
	}
	enc, err := lookupEncoding(cfg.encoding)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}
	var fold cases.Caser
	if cfg.lowercase {
		fold = cases.Lower(language.Und)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		txs  []fptree.Transaction[string]
		line int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items := splitItems(text, cfg.separator)
		if cfg.lowercase {
			for i := range items {
				items[i] = fold.String(items[i])
			}
		}
		slices.Sort(items)
		items = slices.Compact(items)
		if len(items) == 0 {
			continue
		}
		txs = append(txs, items)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "dataset: reading line %d", line+1)
	}

	return txs, nil
}

// LoadFile opens path and calls Load. Files ending in .sz/.snappy or
// .zst/.zstd are decompressed on the fly.
func LoadFile(path string, opts ...LoadOption) ([]fptree.Transaction[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset")
	}
	defer f.Close()

	r, release, err := decompress(f, CompressionFor(path))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	defer release()

	txs, err := Load(r, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return txs, nil
}

// splitItems splits one line and drops empty, trimmed-away items.
func splitItems(text, sep string) []string {
	var fields []string
	if sep == "" {
		fields = strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	} else {
		fields = strings.Split(text, sep)
	}

	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}
