// SPDX-License-Identifier: MIT

// Package tsv reads and writes labelled abundance tables as tab-separated text.
//
// Layout:
//
//	<corner>\t<col id>\t<col id>...
//	<row id>\t<value>\t<value>...
//
// Blank lines and lines starting with '#' are skipped on read.
package tsv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/coda/logratio"
)

// DefaultCorner is written in the header's first cell when none is given.
const DefaultCorner = "feature"

// ErrFormat marks malformed TSV input.
var ErrFormat = errors.New("tsv: malformed table")

// Read parses a labelled table and returns it with its header corner cell.
func Read(r io.Reader) (*logratio.Table, string, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1 // ragged rows reported below with line numbers
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, "", errors.Wrap(ErrFormat, "empty input")
	}
	if err != nil {
		return nil, "", errors.Wrapf(ErrFormat, "header: %v", err)
	}
	if len(header) < 2 {
		return nil, "", errors.Wrap(ErrFormat, "header needs a corner cell and at least one column")
	}
	corner := strings.TrimPrefix(header[0], "\ufeff")
	colIDs := header[1:]

	var rowIDs []string
	var rows [][]float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", errors.Wrapf(ErrFormat, "%v", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != len(header) {
			return nil, "", errors.Wrapf(ErrFormat, "line %d: %d fields, want %d", line, len(rec), len(header))
		}
		vals := make([]float64, len(colIDs))
		for j, cell := range rec[1:] {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, "", errors.Wrapf(ErrFormat, "line %d, column %q: %v", line, colIDs[j], perr)
			}
			vals[j] = v
		}
		rowIDs = append(rowIDs, rec[0])
		rows = append(rows, vals)
	}
	if len(rows) == 0 {
		return nil, "", errors.Wrap(ErrFormat, "no data rows")
	}

	t, err := logratio.NewTable(rowIDs, colIDs, rows)
	if err != nil {
		return nil, "", err
	}

	return t, corner, nil
}

// ReadFile is Read on the named file.
func ReadFile(path string) (*logratio.Table, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	t, corner, err := Read(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read %s", path)
	}

	return t, corner, nil
}

// Write emits t with the given corner cell (DefaultCorner when empty).
// Unlabelled axes get 1-based positional labels.
func Write(w io.Writer, t *logratio.Table, corner string) error {
	if corner == "" {
		corner = DefaultCorner
	}
	r, c := t.Rows(), t.Cols()
	rowIDs := labels(t.RowIDs, r, "row")
	colIDs := labels(t.ColIDs, c, "col")

	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(append([]string{corner}, colIDs...)); err != nil {
		return errors.Wrap(err, "write header")
	}
	rec := make([]string, c+1)
	for i := 0; i < r; i++ {
		rec[0] = rowIDs[i]
		for j := 0; j < c; j++ {
			v, err := t.Data.At(i, j)
			if err != nil {
				return err
			}
			rec[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "write row %d", i)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "flush")
}

// WriteFile is Write into a freshly created file.
func WriteFile(path string, t *logratio.Table, corner string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	return Write(f, t, corner)
}

func labels(ids []string, n int, prefix string) []string {
	if ids != nil {
		return ids
	}
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i+1)
	}

	return out
}
