package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCounters(t *testing.T) {
	r := NewRun()
	r.RowsRead.WithLabelValues("a100-results.csv").Add(3)
	r.Groups.Set(2)
	r.ReportsWritten.Inc()
	r.Cells.WithLabelValues("openmp", CellPresent).Inc()
	r.Cells.WithLabelValues("openmp", CellMissing).Add(2)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.RowsRead.WithLabelValues("a100-results.csv")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Groups))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ReportsWritten))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Cells.WithLabelValues("openmp", CellMissing)))

	n, err := testutil.GatherAndCount(r.Gatherer())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestWriteTextfile(t *testing.T) {
	r := NewRun()
	r.ReportsWritten.Add(4)
	fn := filepath.Join(t.TempDir(), "bwreport.prom")
	require.NoError(t, r.WriteTextfile(fn))
	bs, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(bs), "bwreport_reports_written_total 4"))
}
