package dataset

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvmine/fptree"
)

// Write emits txs in the Load text format, items joined by sep (a single
// space when empty).
func Write(w io.Writer, txs []fptree.Transaction[string], sep string) error {
	if sep == "" {
		sep = " "
	}
	bw := bufio.NewWriter(w)
	for _, tx := range txs {
		if _, err := bw.WriteString(strings.Join(tx, sep)); err != nil {
			return errors.Wrap(err, "dataset: write")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "dataset: write")
		}
	}

	return errors.Wrap(bw.Flush(), "dataset: write")
}

// WriteFile writes txs to path, compressed according to CompressionFor(path).
func WriteFile(path string, txs []fptree.Transaction[string], sep string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "dataset")
	}
	defer func() {
		err = errors.CombineErrors(err, f.Close())
	}()

	cw, err := compress(f, CompressionFor(path))
	if err != nil {
		return err
	}
	if err := Write(cw, txs, sep); err != nil {
		return err
	}

	return errors.Wrapf(cw.Close(), "%s", path)
}
