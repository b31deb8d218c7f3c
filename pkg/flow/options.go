package flow

import (
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/internal"
)

type Option func(*Engine)

// WithFractionDigits sets how many fraction digits amounts are shown with.
func WithFractionDigits(digits int) Option {
	return func(e *Engine) {
		if digits >= 0 {
			e.digits = digits
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger.Named("flow")
	}
}

func defaultEngine(host Host) *Engine {
	return &Engine{
		host:   host,
		digits: internal.ErgFractionDigitCount,
		logger: zap.L().Named("flow"),
	}
}
