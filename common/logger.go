package common

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bwreport/status"
)

// MT: Constant after initialization; thread-safe
var Log status.Logger = status.Default()

// Tags every log line of this process.
//
// MT: Constant after initialization; immutable
var RunId = uuid.NewString()

// Route Log through zap (console encoding on stderr) at the given level, with the run id attached
// to every line.  The returned function flushes zap; main should defer it.

func StartLogging(level status.LogLevel) (func(), error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	u := status.NewZapUnderlying(zl.With(zap.String("run", RunId)))
	Log.SetStderr(nil)
	Log.SetUnderlying(u)
	Log.SetLevel(level)
	return func() {
		// Sync on a terminal fails with EINVAL on some systems, nothing to be done about it.
		_ = u.Sync()
	}, nil
}
