package flow

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/address"
	"github.com/status-im/status-ergo-go/pkg/format"
	"github.com/status-im/status-ergo-go/pkg/stx"
	"github.com/status-im/status-ergo-go/pkg/ux"
)

// Engine packs confirmation flows into a Buffer and binds their decisions to
// a Host.
type Engine struct {
	host   Host
	digits int
	logger *zap.Logger
}

func NewEngine(host Host, opts ...Option) *Engine {
	e := defaultEngine(host)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type screenText struct {
	title format.Buffer
	text  format.Buffer
}

func (s *screenText) reset() {
	s.title = format.NewBuffer(internal.TitleLen)
	s.text = format.NewBuffer(internal.TextLen)
}

// AccessTokenConfirm is the context of the "start signing" confirmation.
type AccessTokenConfirm struct {
	screenText
	token uint32
	tx    *stx.Context
}

// OutputConfirm shows one transaction output. On its own it is a complete
// flow; as an Operation it is nested at the front of a transaction.
type OutputConfirm struct {
	screenText
	output  *stx.OutputInfo
	network address.Network
	digits  int
	layout  Layout
	region  *DynamicRegion
}

// TransactionConfirm shows the totals of a transaction after an optional
// nested operation.
type TransactionConfirm struct {
	screenText
	amounts  *stx.Amounts
	op       Operation
	opScreen int
	layout   Layout
	digits   int
	region   *DynamicRegion
}

// LegacyConfirm shows the totals of a transaction through a Navigator.
type LegacyConfirm struct {
	screenText
	region *LegacyRegion
}

// AddressConfirm shows a derived address before it is released.
type AddressConfirm struct {
	screenText
	path format.Buffer
	raw  address.Raw
}

func (e *Engine) bindDecision(name string, onDecision func(approved bool)) (ux.Step, ux.Step) {
	return ApproveReject(e.logger.With(zap.String("flow", name)), func(approved bool) {
		e.logger.Debug("decision", zap.String("flow", name), zap.Bool("approved", approved))
		e.host.SetBusy(false)
		onDecision(approved)
		e.host.MainMenu()
	})
}

// AddAccessTokenScreens appends the application id screen, when token is
// set, and the decision for starting a signing session.
func (e *Engine) AddAccessTokenScreens(b *Buffer, ctx *AccessTokenConfirm, token uint32, tx *stx.Context) error {
	if err := b.reserve(accessTokenScreens); err != nil {
		return err
	}

	*ctx = AccessTokenConfirm{token: token, tx: tx}
	ctx.reset()
	if token != 0 {
		ctx.text.Set(fmt.Sprintf(appTokenFormat, token))
		b.push(ux.TextStep(ux.IconCertificate, titleApplication, ctx.text.String()))
	}

	approve, reject := e.bindDecision("access-token", func(approved bool) {
		if !approved {
			e.host.RespondDeny()
			return
		}
		e.host.SetAppSession(ctx.token)
		ctx.tx.State = stx.StateApproved
		e.host.RespondSessionID(ctx.tx.Session)
	})
	b.push(approve, reject)
	return nil
}

// NewOutputConfirm prepares an output for display without adding screens,
// for nesting it into a transaction confirmation.
func (e *Engine) NewOutputConfirm(output *stx.OutputInfo, network address.Network) *OutputConfirm {
	ctx := &OutputConfirm{}
	e.initOutput(ctx, output, network)
	return ctx
}

func (e *Engine) initOutput(ctx *OutputConfirm, output *stx.OutputInfo, network address.Network) {
	*ctx = OutputConfirm{
		output:  output,
		network: network,
		digits:  e.digits,
		layout:  OutputLayout(output.UsedTokensCount()),
	}
	ctx.reset()
}

func (c *OutputConfirm) ScreenCount() int {
	return c.layout.Count()
}

func (c *OutputConfirm) Render(screen int, title, text *format.Buffer) error {
	title.Clear()
	text.Clear()
	f, err := c.layout.Resolve(screen)
	if err != nil {
		return badState(err)
	}
	return renderOutputField(f, c.output, c.network, c.digits, title, text)
}

func (c *OutputConfirm) Respond(r Responder) {
	r.RespondOK()
}

// AddOutputScreens appends the confirmation of a single output.
func (e *Engine) AddOutputScreens(b *Buffer, ctx *OutputConfirm, output *stx.OutputInfo, network address.Network) error {
	if err := b.reserve(outputScreens); err != nil {
		return err
	}

	e.initOutput(ctx, output, network)
	ctx.region = NewDynamicRegion(ctx.ScreenCount(), &ctx.title, &ctx.text, ctx.Render)
	b.push(ux.TextStep(ux.IconWarning, titleConfirmOut, ""))
	b.pushRegion(ctx.region)

	approve, reject := e.bindDecision("output", func(approved bool) {
		if approved {
			ctx.Respond(e.host)
		} else {
			e.host.RespondDeny()
		}
	})
	b.push(approve, reject)
	return nil
}

func (c *TransactionConfirm) render(screen int, title, text *format.Buffer) error {
	title.Clear()
	text.Clear()
	if screen < c.opScreen {
		return c.op.Render(screen, title, text)
	}
	f, err := c.layout.Resolve(screen - c.opScreen)
	if err != nil {
		return badState(err)
	}
	return renderTxField(f, c.amounts, c.digits, title, text)
}

// AddTransactionScreens appends the confirmation of the transaction totals,
// preceded by op's screens when op is not nil. Approving responds through op
// and clears the signing context either way.
func (e *Engine) AddTransactionScreens(b *Buffer, ctx *TransactionConfirm, amounts *stx.Amounts, op Operation) error {
	if err := b.reserve(transactionScreens); err != nil {
		return err
	}

	*ctx = TransactionConfirm{
		amounts: amounts,
		op:      op,
		layout:  TransactionLayout(amounts.NonZeroTokensCount()),
		digits:  e.digits,
	}
	ctx.reset()
	if op != nil {
		ctx.opScreen = op.ScreenCount()
	}
	ctx.region = NewDynamicRegion(ctx.opScreen+ctx.layout.Count(), &ctx.title, &ctx.text, ctx.render)
	b.push(ux.TextStep(ux.IconWarning, titleConfirmTx, ""))
	b.pushRegion(ctx.region)

	approve, reject := e.bindDecision("transaction", func(approved bool) {
		switch {
		case !approved:
			e.host.RespondDeny()
		case ctx.op != nil:
			ctx.op.Respond(e.host)
		default:
			e.host.RespondOK()
		}
		e.host.ClearContext()
	})
	b.push(approve, reject)
	return nil
}

// AddLegacyTransactionScreens is AddTransactionScreens without a nested
// operation, walked with a Navigator.
func (e *Engine) AddLegacyTransactionScreens(b *Buffer, ctx *LegacyConfirm, amounts *stx.Amounts) error {
	if err := b.reserve(transactionScreens); err != nil {
		return err
	}

	*ctx = LegacyConfirm{}
	ctx.reset()
	ctx.region = newLegacyRegion(amounts, e.digits, &ctx.title, &ctx.text)
	b.push(ux.TextStep(ux.IconWarning, titleConfirmTx, ""))
	b.pushRegion(ctx.region)

	approve, reject := e.bindDecision("legacy-transaction", func(approved bool) {
		if approved {
			e.host.RespondOK()
		} else {
			e.host.RespondDeny()
		}
		e.host.ClearContext()
	})
	b.push(approve, reject)
	return nil
}

// AddAddressScreens appends the confirmation of an address derived at path.
// Approving responds with the raw address bytes.
func (e *Engine) AddAddressScreens(b *Buffer, ctx *AddressConfirm, path []uint32, raw address.Raw) error {
	if err := b.reserve(addressScreens); err != nil {
		return err
	}
	p, err := format.Path(path)
	if err != nil {
		return errors.Wrap(internal.ErrBIP32FormattingFailed, err.Error())
	}

	*ctx = AddressConfirm{raw: raw, path: format.NewBuffer(internal.TextLen)}
	ctx.reset()
	ctx.path.Set(p)
	ctx.text.Set(raw.String())
	b.push(
		ux.TextStep(ux.IconEye, titleConfirmAddr, ""),
		ux.TextStep(ux.IconNone, titlePath, ctx.path.String()),
		ux.TextStep(ux.IconNone, titleAddress, ctx.text.String()),
	)

	approve, reject := e.bindDecision("address", func(approved bool) {
		if approved {
			e.host.RespondData(ctx.raw[:])
		} else {
			e.host.RespondDeny()
		}
	})
	b.push(approve, reject)
	return nil
}

// DisplayScreens seals the buffer, starts rt on its first step and marks the
// device busy.
func (e *Engine) DisplayScreens(b *Buffer, rt *ux.Flow) error {
	if err := b.reserve(terminatorScreens); err != nil {
		return err
	}
	n := b.Len()
	b.push(ux.LoopStep(), ux.EndStep())
	if err := rt.Init(b.Steps(), 0); err != nil {
		b.n = n
		return err
	}
	e.host.SetBusy(true)
	return nil
}
