// Package flow builds the confirmation screens shown before a transaction is
// signed and binds the holder's decision back to the signing protocol.
package flow

import (
	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/format"
)

// Responder emits protocol responses to the host computer.
type Responder interface {
	RespondOK()
	RespondData(data []byte)
	RespondSessionID(session uint8)
	RespondDeny()
	RespondError(sw internal.SW)
}

// Host is the device side the confirmation flows report to.
type Host interface {
	Responder
	SetBusy(busy bool)
	SetAppSession(token uint32)
	ClearContext()
	MainMenu()
}

// RenderFunc fills title and text for one screen of a dynamic region. It must
// not change anything besides the two buffers.
type RenderFunc func(screen int, title, text *format.Buffer) error

// Operation is a sub-flow nested at the front of a transaction confirmation.
type Operation interface {
	ScreenCount() int
	Render(screen int, title, text *format.Buffer) error
	Respond(r Responder)
}

// Screen counts reserved by each builder, approve and reject included.
const (
	accessTokenScreens = 3
	outputScreens      = 6
	transactionScreens = 6
	addressScreens     = 5
	terminatorScreens  = 2
)

const (
	titleApplication = "Application"
	titleConfirmOut  = "Confirm Output"
	titleConfirmTx   = "Confirm Transaction"
	titleConfirmAddr = "Confirm Address"
	titleTxAmount    = "Transaction Amount"
	titleTxFee       = "Transaction Fee"
	titleOutputValue = "Output Value"
	titleChange      = "Change"
	titleAddress     = "Address"
	titleScript      = "Script"
	titleFee         = "Fee"
	titlePath        = "Path"
	textMinersFee    = "Miners Fee"
	prefixMinting    = "Minting: "
	prefixBurning    = "Burning: "
	prefixTokenValue = "Value: "
	tokenTitleFormat = "Token [%d]"
	appTokenFormat   = "0x%08x"
	titleApprove     = "Approve"
	titleReject      = "Reject"
)
