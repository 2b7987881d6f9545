// Per-kernel pivot tables of normalized bandwidth: one row per platform, one column per model,
// values in percent of peak, "X" where there is no data.
//
// Rows follow the architecture enumeration passed in (input order), columns are the sorted models
// seen for the kernel.  Display names come from the tables package and a missing one is an error.

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bwreport/aggregate"
	"bwreport/common"
	"bwreport/metrics"
	"bwreport/table"
	"bwreport/tables"
)

const (
	DeviceColumn = "Device"
	Missing      = "X"
)

type Report struct {
	Kernel string
	Models []string
	Header []string
	Rows   [][]string
}

func (r *Report) Filename() string {
	return r.Kernel + ".csv"
}

// `run` may be nil.

func Build(
	kernel string,
	aggs []*aggregate.Aggregate,
	ix aggregate.Index,
	arches []string,
	run *metrics.Run,
) (*Report, error) {
	models := aggregate.Models(aggs, kernel)
	header := make([]string, 0, len(models)+1)
	header = append(header, DeviceColumn)
	for _, m := range models {
		name, err := tables.ModelName(m)
		if err != nil {
			return nil, fmt.Errorf("Kernel %s: %w", kernel, err)
		}
		if !tables.InModelOrder(m) {
			common.Log.Warningf("Kernel %s: model %s is not in the preferred model order", kernel, m)
		}
		header = append(header, name)
	}

	rows := make([][]string, 0, len(arches))
	for _, arch := range arches {
		name, err := tables.PlatformName(arch)
		if err != nil {
			return nil, fmt.Errorf("Kernel %s: %w", kernel, err)
		}
		row := make([]string, 0, len(models)+1)
		row = append(row, name)
		for _, m := range models {
			state := metrics.CellPresent
			if a, found := ix.Lookup(kernel, m, arch); found {
				row = append(row, table.FormatFloat(a.Bandwidth*100))
			} else {
				row = append(row, Missing)
				state = metrics.CellMissing
			}
			if run != nil {
				run.Cells.WithLabelValues(tables.ModelGroup(m), state).Inc()
			}
		}
		rows = append(rows, row)
	}

	return &Report{
		Kernel: kernel,
		Models: models,
		Header: header,
		Rows:   rows,
	}, nil
}

// Write the report to <dir>/<kernel>.csv, replacing any existing file.  Returns the file name.

func Write(dir string, r *Report) (string, error) {
	fn := filepath.Join(dir, r.Filename())
	output, err := os.Create(fn)
	if err != nil {
		return "", err
	}
	err = table.FormatRawRowmajorCsv(output, r.Header, r.Rows)
	if cerr := output.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("Writing %s: %w", fn, err)
	}
	return fn, nil
}

// Fixed-width rendering, for the log.

func (r *Report) String() string {
	var s strings.Builder
	table.FormatRawRowmajorFixed(&s, r.Header, r.Rows)
	return s.String()
}
