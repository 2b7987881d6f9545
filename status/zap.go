package status

import (
	"go.uber.org/zap"
)

// ZapUnderlying routes the StandardLogger's output into a zap logger.  The zap logger should be
// configured to let everything through (Debug level); filtering is done by the StandardLogger.

type ZapUnderlying struct {
	l *zap.Logger
}

func NewZapUnderlying(l *zap.Logger) *ZapUnderlying {
	return &ZapUnderlying{l}
}

func (z *ZapUnderlying) Debug(m string) error {
	z.l.Debug(m)
	return nil
}

func (z *ZapUnderlying) Info(m string) error {
	z.l.Info(m)
	return nil
}

func (z *ZapUnderlying) Warning(m string) error {
	z.l.Warn(m)
	return nil
}

func (z *ZapUnderlying) Err(m string) error {
	z.l.Error(m)
	return nil
}

// zap's own Fatal and Panic levels exit or panic, which the Logger contract forbids.
func (z *ZapUnderlying) Crit(m string) error {
	z.l.Error(m, zap.Bool("critical", true))
	return nil
}

func (z *ZapUnderlying) Sync() error {
	return z.l.Sync()
}
