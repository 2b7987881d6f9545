package common

import (
	"errors"
	"io"
	"os"
	"strings"

	ini "github.com/lars-t-hansen/ini"

	"bwreport/status"
)

// Optional settings for the ambient behavior of a run, read from the working directory.  None of
// these affect what the reports contain.
const IniFilename = "bwreport.ini"

// MT: Constant after initialization
var (
	p               = ini.NewParser()
	logging         = p.AddSection("logging")
	LoggingLevel    = logging.AddString("level")
	metricsSection  = p.AddSection("metrics")
	MetricsTextfile = metricsSection.AddString("textfile")
)

type Settings struct {
	LogLevel        status.LogLevel
	MetricsTextfile string // "" for none
}

func DefaultSettings() *Settings {
	return &Settings{LogLevel: status.LogLevelWarning}
}

// A missing file yields the defaults.  A file that can't be read or parsed is reported and
// otherwise ignored, as is a bad value.

func ReadSettings(filename string) *Settings {
	input, err := os.Open(filename)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			Log.Errorf("Error in trying to open %s: %s", filename, err.Error())
		}
		return DefaultSettings()
	}
	defer input.Close()
	s, err := ParseSettings(input)
	if err != nil {
		Log.Errorf("Error in trying to parse %s: %s", filename, err.Error())
		return DefaultSettings()
	}
	return s
}

func ParseSettings(input io.Reader) (*Settings, error) {
	store, err := p.Parse(input)
	if err != nil {
		return nil, err
	}
	s := DefaultSettings()
	if LoggingLevel.Present(store) {
		l, err := status.ParseLevel(LoggingLevel.StringVal(store))
		if err != nil {
			Log.Warning(err.Error())
		} else {
			s.LogLevel = l
		}
	}
	if MetricsTextfile.Present(store) {
		s.MetricsTextfile = strings.TrimSpace(MetricsTextfile.StringVal(store))
	}
	return s, nil
}
