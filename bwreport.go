// `bwreport` -- Per-kernel reports of memory bandwidth as a percentage of platform peak.
//
// Reads the per-platform benchmark result files and peaks.csv from the working directory and
// writes <kernel>.csv there for every kernel in the data.  The input file list and the name tables
// are fixed, see tables/tables.yaml.  There are no options; logging and a metrics textfile can be
// set up in bwreport.ini, see common/inifile.go.

package main

import (
	"fmt"
	"os"

	"bwreport/common"
	"bwreport/metrics"
	"bwreport/reorganize"
)

func main() {
	err := bwreport()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bwreport() error {
	settings := common.ReadSettings(common.IniFilename)
	flush, err := common.StartLogging(settings.LogLevel)
	if err != nil {
		// Keep going with the plain stderr logger.
		common.Log.Warningf("Could not start structured logging: %v", err)
	} else {
		defer flush()
	}

	opts := reorganize.DefaultOptions()
	opts.Metrics = metrics.NewRun()
	written, err := reorganize.Run(opts)
	if err != nil {
		return err
	}
	common.Log.Infof("Wrote %d reports", len(written))

	if settings.MetricsTextfile != "" {
		if err := opts.Metrics.WriteTextfile(settings.MetricsTextfile); err != nil {
			common.Log.Errorf("Writing %s: %v", settings.MetricsTextfile, err)
		}
	}
	return nil
}
