package ux

import "go.uber.org/zap"

type Option func(*Flow)

func WithPainter(p Painter) Option {
	return func(f *Flow) {
		f.painter = p
	}
}

// WithFaultHandler sets the function told about region content failures.
// The flow does not repaint after a fault; the handler is expected to move
// the display somewhere else.
func WithFaultHandler(h func(error)) Option {
	return func(f *Flow) {
		f.onFault = h
	}
}

func WithPageWidth(width int) Option {
	return func(f *Flow) {
		if width > 0 {
			f.pageWidth = width
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(f *Flow) {
		f.logger = logger.Named("ux")
	}
}
