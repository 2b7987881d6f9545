// Output of raw row-major matrices: a header row and a list of rows, all strings.

package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Plain CSV.  The header is omitted if nil.

func FormatRawRowmajorCsv(out io.Writer, header []string, matrix [][]string) error {
	w := csv.NewWriter(out)
	if header != nil {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	for _, r := range matrix {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Fixed-width columns for human consumption.  The column width is the max across all the entries
// in the column, including the header; columns are separated by two spaces and trailing blanks
// are trimmed.  Rows may be ragged, missing cells are blank.
//
// The expectation here is that this is fairly low volume and that it's not worth it to try to
// optimize it to avoid allocations.

func FormatRawRowmajorFixed(unbufOut io.Writer, header []string, matrix [][]string) error {
	out := Buffered(unbufOut)

	numCols := len(header)
	for _, r := range matrix {
		numCols = max(numCols, len(r))
	}
	widths := make([]int, numCols)
	for col, h := range header {
		widths[col] = max(widths[col], utf8.RuneCountInString(h))
	}
	for _, r := range matrix {
		for col, v := range r {
			widths[col] = max(widths[col], utf8.RuneCountInString(v))
		}
	}

	var s strings.Builder
	line := func(r []string) {
		s.Reset()
		for col := 0; col < numCols; col++ {
			v := ""
			if col < len(r) {
				v = r[col]
			}
			writeStringPadded(&s, widths[col], v)
		}
		fmt.Fprintln(out, strings.TrimRight(s.String(), " "))
	}
	if header != nil {
		line(header)
	}
	for _, r := range matrix {
		line(r)
	}
	return out.Flush()
}

// We will almost never need more spaces than initial_spaces; the padder will create more as
// necessary but not update the global string b/c that would require a lock.
const initial_spaces = "                                                                                "

func writeStringPadded(s *strings.Builder, width int, str string) {
	spaces := initial_spaces
	needed := width - utf8.RuneCountInString(str) + 2
	for len(spaces) < needed {
		spaces = spaces + spaces
	}
	s.WriteString(str)
	s.WriteString(spaces[:needed])
}

func Buffered(unbufOut io.Writer) *bufio.Writer {
	if b, ok := unbufOut.(*bufio.Writer); ok {
		return b
	}
	return bufio.NewWriter(unbufOut)
}
