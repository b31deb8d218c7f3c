package device

import (
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/internal"
)

// host is the side of the device the confirmation flows call back into.
// Its methods run from button handlers, so the device lock is already held.
type host struct {
	d *Device
}

func (h *host) RespondOK() {
	h.d.respond(newResponse(internal.SWOk, nil))
}

func (h *host) RespondData(data []byte) {
	h.d.respond(newResponse(internal.SWOk, append([]byte(nil), data...)))
}

func (h *host) RespondSessionID(session uint8) {
	h.d.respond(newResponse(internal.SWOk, []byte{session}))
}

func (h *host) RespondDeny() {
	h.d.respond(newResponse(internal.SWDeny, nil))
}

func (h *host) RespondError(sw internal.SW) {
	h.d.respond(newResponse(sw, nil))
}

func (h *host) SetBusy(busy bool) {
	h.d.busy = busy
}

func (h *host) SetAppSession(token uint32) {
	h.d.appSession = token
	h.d.recordGrant(token, h.d.tx.Session)
}

func (h *host) ClearContext() {
	h.d.tx.Reset(0)
}

func (h *host) MainMenu() {
	if err := h.d.mainMenu(); err != nil {
		h.d.logger.Error("failed to show menu", zap.Error(err))
	}
}

// fault aborts the confirmation on screen when one of its screens cannot be
// rendered.
func (h *host) fault(err error) {
	h.d.logger.Error("confirmation aborted", zap.Error(err))
	h.RespondError(internal.StatusWord(err))
	h.SetBusy(false)
	h.ClearContext()
	h.MainMenu()
}
