// Read benchmark result files and the peak bandwidth file.
//
// Both are CSV with a header row.  Fields may be written with whitespace after the comma (`a100,
// 500`); the whitespace is skipped.  Header names are trimmed.  Columns are found by name, so their
// order is irrelevant and extra columns are allowed.
//
// If a file can't be opened the error wraps the os.PathError, so errors.Is(err, os.ErrNotExist)
// works for missing files.  Structural problems are reported as ErrMissingColumn or
// ErrMalformedRow, with the file name and line number.

package results

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMissingColumn = errors.New("Missing column")
	ErrMalformedRow  = errors.New("Malformed row")
)

// Required columns of a result file, in declared key order followed by the value.
var resultColumns = []string{"kernel", "model", "arch", "compiler", "bandwidth"}

// Required columns of the peaks file.
var peakColumns = []string{"arch", "bandwidth"}

type Measurement struct {
	Kernel    string
	Model     string
	Arch      string
	Compiler  string
	Bandwidth float64

	// Other columns by name, nil if there are none.  Values are raw, the aggregator decides which
	// columns are numeric.
	Extra map[string]string
}

type Table struct {
	Filename     string
	ExtraColumns []string
	Rows         []Measurement
}

// Architecture name -> peak bandwidth.  Read-only after loading.
type Peaks map[string]float64

func ReadResults(filename string) (*Table, error) {
	input, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer input.Close()
	return ParseResults(bufio.NewReader(input), filename)
}

// Read the files in order, stopping at the first error.

func ReadAll(filenames []string) ([]*Table, error) {
	tables := make([]*Table, 0, len(filenames))
	for _, fn := range filenames {
		t, err := ReadResults(fn)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// `name` is used for error messages and is recorded in the table.

func ParseResults(input io.Reader, name string) (*Table, error) {
	rdr := newReader(input)
	header, ixs, err := readHeader(rdr, name, resultColumns)
	if err != nil {
		return nil, err
	}

	// Everything that is not a required column is an extra.
	isRequired := make(map[int]bool, len(ixs))
	for _, ix := range ixs {
		isRequired[ix] = true
	}
	extraIxs := make([]int, 0)
	extraNames := make([]string, 0)
	for i, h := range header {
		if !isRequired[i] {
			extraIxs = append(extraIxs, i)
			extraNames = append(extraNames, h)
		}
	}

	table := &Table{
		Filename:     name,
		ExtraColumns: extraNames,
		Rows:         make([]Measurement, 0),
	}
	for {
		fields, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rowError(name, err)
		}
		line, _ := rdr.FieldPos(0)
		bw, err := strconv.ParseFloat(strings.TrimSpace(fields[ixs[4]]), 64)
		if err != nil {
			return nil, fmt.Errorf(
				"%w: %s line %d: bandwidth %q", ErrMalformedRow, name, line, fields[ixs[4]])
		}
		m := Measurement{
			Kernel:    strings.TrimSpace(fields[ixs[0]]),
			Model:     strings.TrimSpace(fields[ixs[1]]),
			Arch:      strings.TrimSpace(fields[ixs[2]]),
			Compiler:  strings.TrimSpace(fields[ixs[3]]),
			Bandwidth: bw,
		}
		if len(extraIxs) > 0 {
			m.Extra = make(map[string]string, len(extraIxs))
			for j, ix := range extraIxs {
				m.Extra[extraNames[j]] = strings.TrimSpace(fields[ix])
			}
		}
		table.Rows = append(table.Rows, m)
	}
	return table, nil
}

func ReadPeaks(filename string) (Peaks, error) {
	input, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer input.Close()
	return ParsePeaks(bufio.NewReader(input), filename)
}

// A repeated architecture is not an error, the last value wins.

func ParsePeaks(input io.Reader, name string) (Peaks, error) {
	rdr := newReader(input)
	_, ixs, err := readHeader(rdr, name, peakColumns)
	if err != nil {
		return nil, err
	}
	peaks := make(Peaks)
	for {
		fields, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rowError(name, err)
		}
		line, _ := rdr.FieldPos(0)
		bw, err := strconv.ParseFloat(strings.TrimSpace(fields[ixs[1]]), 64)
		if err != nil {
			return nil, fmt.Errorf(
				"%w: %s line %d: bandwidth %q", ErrMalformedRow, name, line, fields[ixs[1]])
		}
		peaks[strings.TrimSpace(fields[ixs[0]])] = bw
	}
	return peaks, nil
}

func newReader(input io.Reader) *csv.Reader {
	rdr := csv.NewReader(input)
	rdr.TrimLeadingSpace = true
	rdr.ReuseRecord = true
	return rdr
}

// Read the header and return it (trimmed) along with the indices of the `required` columns, in the
// order of `required`.

func readHeader(rdr *csv.Reader, name string, required []string) ([]string, []int, error) {
	fields, err := rdr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%w: %s: empty file", ErrMissingColumn, name)
	}
	if err != nil {
		return nil, nil, rowError(name, err)
	}
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = strings.TrimSpace(f)
	}
	ixs := make([]int, len(required))
	for i, r := range required {
		ixs[i] = -1
		for j, h := range header {
			if h == r {
				ixs[i] = j
				break
			}
		}
		if ixs[i] == -1 {
			return nil, nil, fmt.Errorf("%w: %s: %s", ErrMissingColumn, name, r)
		}
	}
	return header, ixs, nil
}

func rowError(name string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%w: %s line %d: %w", ErrMalformedRow, name, perr.Line, perr.Err)
	}
	return fmt.Errorf("%s: %w", name, err)
}
