package device

import (
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/internal/logging"
	"github.com/status-im/status-ergo-go/pkg/address"
	"github.com/status-im/status-ergo-go/pkg/grants"
	"github.com/status-im/status-ergo-go/pkg/keystore"
)

type Option func(*Device)

func WithNetwork(network address.Network) Option {
	return func(d *Device) {
		d.network = network
	}
}

// WithFractionDigits sets how many fraction digits amounts are shown with.
func WithFractionDigits(digits int) Option {
	return func(d *Device) {
		d.digits = digits
	}
}

func WithPageWidth(width int) Option {
	return func(d *Device) {
		d.pageWidth = width
	}
}

func WithKeystore(ks *keystore.Keystore) Option {
	return func(d *Device) {
		d.keystore = ks
	}
}

func WithGrants(store *grants.Store) Option {
	return func(d *Device) {
		d.grants = store
	}
}

// WithResponseHandler replaces the default delivery of responses as
// signals.
func WithResponseHandler(h func(Response)) Option {
	return func(d *Device) {
		d.onResponse = h
	}
}

// WithStatusHandler is called with the device status after every paint and
// busy change, besides the signals.
func WithStatusHandler(h func(Status)) Option {
	return func(d *Device) {
		d.onStatus = h
	}
}

// WithExit sets what the Quit menu entry does.
func WithExit(exit func()) Option {
	return func(d *Device) {
		d.exit = exit
	}
}

func WithLogging(enabled bool, filePath string) Option {
	return func(d *Device) {
		if err := logging.Install(enabled, filePath); err != nil {
			zap.L().Error("failed to initialize log", zap.Error(err))
		}
		d.logger = zap.L().Named("device")
	}
}
