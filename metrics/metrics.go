// Counters describing one run of the report pipeline.  They are kept in a private registry and
// only leave the process if a textfile is configured, in the format the node_exporter textfile
// collector reads.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	CellPresent = "present"
	CellMissing = "missing"
)

type Run struct {
	registry       *prometheus.Registry
	RowsRead       *prometheus.CounterVec
	Groups         prometheus.Gauge
	ReportsWritten prometheus.Counter
	Cells          *prometheus.CounterVec
}

func NewRun() *Run {
	r := &Run{
		registry: prometheus.NewRegistry(),
		RowsRead: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bwreport_rows_read_total",
				Help: "Measurement rows read, by input file.",
			},
			[]string{"file"},
		),
		Groups: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bwreport_groups",
				Help: "Distinct (kernel, model, arch, compiler) groups after averaging.",
			},
		),
		ReportsWritten: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bwreport_reports_written_total",
				Help: "Per-kernel report files written.",
			},
		),
		Cells: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bwreport_cells_total",
				Help: "Report cells, by model group and whether data was present.",
			},
			[]string{"group", "state"},
		),
	}
	r.registry.MustRegister(r.RowsRead, r.Groups, r.ReportsWritten, r.Cells)
	return r
}

func (r *Run) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Run) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, r.registry)
}
