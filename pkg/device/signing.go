package device

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/flow"
	"github.com/status-im/status-ergo-go/pkg/stx"
	"github.com/status-im/status-ergo-go/pkg/ux"
)

const (
	titleStartSigning = "Start Signing"
	textStartSigning  = "New Session"
)

func (d *Device) newSession() uint8 {
	d.nextSession++
	if d.nextSession == 0 {
		d.nextSession = 1
	}
	return d.nextSession
}

func (d *Device) checkSession(session uint8, state stx.State) error {
	if d.tx.Session == 0 || d.tx.Session != session {
		return errors.Wrapf(ErrBadSession, "%d", session)
	}
	if d.tx.State != state {
		return errors.Wrapf(internal.ErrBadState, "session %d is %s", session, d.tx.State)
	}
	return nil
}

// StartSigning asks the holder to open a signing session for the application
// identified by token. On approval the session id is the response and the
// token becomes the application session.
func (d *Device) StartSigning(token uint32) (uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.admit(); err != nil {
		return 0, err
	}

	session := d.newSession()
	d.tx.Reset(session)
	if err := d.buf.AddScreen(ux.TextStep(ux.IconEye, titleStartSigning, textStartSigning)); err != nil {
		return 0, err
	}
	if err := d.engine.AddAccessTokenScreens(&d.buf, &d.tokenCtx, token, &d.tx); err != nil {
		return 0, err
	}

	d.logger.Info("signing session requested", zap.Uint8("session", session), zap.Uint32("token", token))
	return session, d.show()
}

// LoadTransaction stores what an approved session is about to sign. Outputs
// without their own token table refer to the transaction's.
func (d *Device) LoadTransaction(session uint8, amounts stx.Amounts, outputs []stx.OutputInfo) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.busy {
		return internal.ErrBusy
	}
	if err := d.checkSession(session, stx.StateApproved); err != nil {
		return err
	}
	if len(amounts.Tokens.Tokens) > internal.TokenMaxCount {
		return errors.Wrapf(internal.ErrBadTokenIndex, "%d tokens", len(amounts.Tokens.Tokens))
	}

	d.tx.Amounts = amounts
	d.tx.Outputs = outputs
	for i := range d.tx.Outputs {
		if d.tx.Outputs[i].Tokens == nil {
			d.tx.Outputs[i].Tokens = &d.tx.Amounts.Tokens
		}
	}
	d.tx.State = stx.StateDataLoaded
	d.logger.Info("transaction loaded", zap.Uint8("session", session), zap.Int("outputs", len(outputs)))
	d.publishStatus()
	return nil
}

func (d *Device) output(index int) (*stx.OutputInfo, error) {
	if index < 0 || index >= len(d.tx.Outputs) {
		return nil, errors.Wrapf(ErrBadOutput, "%d of %d", index, len(d.tx.Outputs))
	}
	return &d.tx.Outputs[index], nil
}

// ConfirmOutput shows one output of the loaded transaction.
func (d *Device) ConfirmOutput(session uint8, index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.admit(); err != nil {
		return err
	}
	if err := d.checkSession(session, stx.StateDataLoaded); err != nil {
		return err
	}
	output, err := d.output(index)
	if err != nil {
		return err
	}
	if err := d.engine.AddOutputScreens(&d.buf, &d.outputCtx, output, d.network); err != nil {
		return err
	}
	return d.show()
}

// ConfirmTransaction shows the totals of the loaded transaction. A
// non-negative output index nests that output in front of the totals.
func (d *Device) ConfirmTransaction(session uint8, output int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.admit(); err != nil {
		return err
	}
	if err := d.checkSession(session, stx.StateDataLoaded); err != nil {
		return err
	}

	var op flow.Operation
	if output >= 0 {
		o, err := d.output(output)
		if err != nil {
			return err
		}
		op = d.engine.NewOutputConfirm(o, d.network)
	}
	if err := d.engine.AddTransactionScreens(&d.buf, &d.txCtx, &d.tx.Amounts, op); err != nil {
		return err
	}
	return d.show()
}

// ConfirmLegacyTransaction is ConfirmTransaction for hosts which do not send
// outputs, walked field by field.
func (d *Device) ConfirmLegacyTransaction(session uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.admit(); err != nil {
		return err
	}
	if err := d.checkSession(session, stx.StateDataLoaded); err != nil {
		return err
	}
	if err := d.engine.AddLegacyTransactionScreens(&d.buf, &d.legacyCtx, &d.tx.Amounts); err != nil {
		return err
	}
	return d.show()
}

// ConfirmAddress shows the address derived at path and releases it on
// approval.
func (d *Device) ConfirmAddress(path []uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.keystore == nil {
		return ErrNoKeystore
	}
	if err := d.admit(); err != nil {
		return err
	}
	raw, err := d.keystore.Address(d.network, path)
	if err != nil {
		return err
	}
	if err := d.engine.AddAddressScreens(&d.buf, &d.addrCtx, path, raw); err != nil {
		return err
	}
	return d.show()
}
