// The whole report pipeline: load, aggregate, normalize, report.
//
// All input is read before anything is computed and reports are written one kernel at a time at
// the end.  The first error aborts the run; reports already written stay on disk.

package reorganize

import (
	"path/filepath"

	"bwreport/aggregate"
	"bwreport/common"
	"bwreport/metrics"
	"bwreport/normalize"
	"bwreport/report"
	"bwreport/results"
	"bwreport/tables"
)

type Options struct {
	// Directory holding the inputs and receiving the reports; "" is the working directory.
	Dir         string
	ResultFiles []string
	PeaksFile   string

	// May be nil.
	Metrics *metrics.Run
}

func DefaultOptions() *Options {
	return &Options{
		ResultFiles: tables.ResultFiles(),
		PeaksFile:   tables.PeaksFile(),
	}
}

// Returns the names of the reports written, in kernel order.

func Run(opts *Options) ([]string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	run := opts.Metrics

	// Load
	names := make([]string, len(opts.ResultFiles))
	for i, f := range opts.ResultFiles {
		names[i] = filepath.Join(dir, f)
	}
	ts, err := results.ReadAll(names)
	if err != nil {
		return nil, err
	}
	peaks, err := results.ReadPeaks(filepath.Join(dir, opts.PeaksFile))
	if err != nil {
		return nil, err
	}
	for _, t := range ts {
		common.Log.Infof("%s: %d rows", t.Filename, len(t.Rows))
		if run != nil {
			run.RowsRead.WithLabelValues(filepath.Base(t.Filename)).Add(float64(len(t.Rows)))
		}
	}

	// Aggregate
	ms := aggregate.Concat(ts...)
	if n := aggregate.NormalizeModels(ms); n > 0 {
		common.Log.Infof("Relabeled %d rows with legacy model names", n)
	}
	arches := aggregate.Arches(ms)
	aggs := aggregate.GroupMean(ms)
	common.Log.Infof("%d measurements in %d groups", len(ms), len(aggs))
	if run != nil {
		run.Groups.Set(float64(len(aggs)))
	}

	// Normalize
	if err := normalize.Normalize(aggs, peaks); err != nil {
		return nil, err
	}

	// Report
	ix := aggregate.NewIndex(aggs)
	written := make([]string, 0)
	for _, kernel := range aggregate.Kernels(aggs) {
		r, err := report.Build(kernel, aggs, ix, arches, run)
		if err != nil {
			return written, err
		}
		fn, err := report.Write(dir, r)
		if err != nil {
			return written, err
		}
		common.Log.Debugf("%s:\n%s", fn, r.String())
		written = append(written, fn)
		if run != nil {
			run.ReportsWritten.Inc()
		}
	}
	return written, nil
}
