// Package device is the simulated signer: it owns the display runtime, the
// screen buffer and the signing session, and admits one confirmation at a
// time.
package device

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/address"
	"github.com/status-im/status-ergo-go/pkg/flow"
	"github.com/status-im/status-ergo-go/pkg/grants"
	"github.com/status-im/status-ergo-go/pkg/keystore"
	"github.com/status-im/status-ergo-go/pkg/stx"
	"github.com/status-im/status-ergo-go/pkg/ux"
	"github.com/status-im/status-ergo-go/signal"
)

var (
	ErrUnknownButton = errors.New("unknown button")
	ErrNoKeystore    = errors.New("no keystore")
	ErrBadSession    = errors.New("unknown signing session")
	ErrBadOutput     = errors.New("output index out of range")
)

type Device struct {
	mu     sync.Mutex
	logger *zap.Logger

	network   address.Network
	digits    int
	pageWidth int
	keystore  *keystore.Keystore
	grants    *grants.Store

	onResponse func(Response)
	onStatus   func(Status)
	exit       func()

	engine *flow.Engine
	rt     *ux.Flow
	buf    flow.Buffer
	screen ux.Screen

	busy        bool
	appSession  uint32
	tx          stx.Context
	nextSession uint8

	tokenCtx  flow.AccessTokenConfirm
	outputCtx flow.OutputConfirm
	txCtx     flow.TransactionConfirm
	legacyCtx flow.LegacyConfirm
	addrCtx   flow.AddressConfirm
}

// New creates a device showing its idle menu.
func New(opts ...Option) (*Device, error) {
	d := &Device{
		logger:    zap.L().Named("device"),
		network:   address.Mainnet,
		digits:    internal.ErgFractionDigitCount,
		pageWidth: ux.DefaultPageWidth,
		exit:      func() {},
	}
	for _, opt := range opts {
		opt(d)
	}

	h := &host{d: d}
	d.engine = flow.NewEngine(h, flow.WithFractionDigits(d.digits), flow.WithLogger(d.logger))
	d.rt = ux.NewFlow(
		ux.WithPainter(ux.PainterFunc(d.paint)),
		ux.WithFaultHandler(h.fault),
		ux.WithPageWidth(d.pageWidth),
		ux.WithLogger(d.logger),
	)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.mainMenu(); err != nil {
		return nil, errors.Wrap(err, "failed to show menu")
	}
	return d, nil
}

func (d *Device) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status()
}

func (d *Device) status() Status {
	return Status{
		Busy:       d.busy,
		AppSession: d.appSession,
		Session:    d.tx.Session,
		State:      d.tx.State.String(),
		Screen:     d.screen,
	}
}

func (d *Device) publishStatus() {
	st := d.status()
	signal.Send(StatusChanged, st)
	if d.onStatus != nil {
		d.onStatus(st)
	}
}

func (d *Device) paint(s ux.Screen) {
	d.screen = s
	signal.Send(ScreenChanged, s)
	d.publishStatus()
}

func (d *Device) respond(r Response) {
	d.logger.Info("response", zap.String("sw", r.Code), zap.Int("data", len(r.Data)))
	if d.onResponse != nil {
		d.onResponse(r)
		return
	}
	signal.Send(ResponseSent, r)
}

// Press delivers a button event to the display.
func (d *Device) Press(b Button) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch b {
	case ButtonLeft:
		d.rt.Left()
	case ButtonRight:
		d.rt.Right()
	case ButtonBoth:
		d.rt.Both()
	default:
		return errors.Wrapf(ErrUnknownButton, "%q", b)
	}
	return nil
}

// admit starts a new confirmation request. It fails while another one is
// still waiting for the holder.
func (d *Device) admit() error {
	if d.busy {
		return internal.ErrBusy
	}
	d.buf.Reset()
	return nil
}

// show seals the buffer and puts it on screen. On failure the idle menu is
// shown again.
func (d *Device) show() error {
	if err := d.engine.DisplayScreens(&d.buf, d.rt); err != nil {
		d.logger.Error("failed to display screens", zap.Error(err))
		if menuErr := d.mainMenu(); menuErr != nil {
			d.logger.Error("failed to show menu", zap.Error(menuErr))
		}
		return err
	}
	d.publishStatus()
	return nil
}

func (d *Device) recordGrant(token uint32, session uint8) {
	if d.grants == nil || token == 0 {
		return
	}
	if err := d.grants.Record(token, session, time.Now()); err != nil {
		d.logger.Error("failed to record grant", zap.Error(err))
	}
}
