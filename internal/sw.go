package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// SW is a status word returned to the host alongside a response.
type SW uint16

const (
	SWOk                      SW = 0x9000
	SWDeny                    SW = 0x6985
	SWBusy                    SW = 0xB000
	SWBadState                SW = 0xB0FF
	SWBIP32FormattingFailed   SW = 0xE002
	SWAddressGenerationFailed SW = 0xE003
	SWAddressFormattingFailed SW = 0xE004
	SWBadTokenIndex           SW = 0xE101
	SWBadTokenID              SW = 0xE102
)

func (sw SW) String() string {
	return fmt.Sprintf("0x%04X", uint16(sw))
}

// StatusError is a fault which is reported to the host as a status word.
type StatusError struct {
	SW  SW
	Msg string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Msg, e.SW)
}

var (
	ErrBusy                    = &StatusError{SWBusy, "device busy"}
	ErrBadState                = &StatusError{SWBadState, "bad state"}
	ErrBIP32FormattingFailed   = &StatusError{SWBIP32FormattingFailed, "bip32 path formatting failed"}
	ErrAddressGenerationFailed = &StatusError{SWAddressGenerationFailed, "address generation failed"}
	ErrAddressFormattingFailed = &StatusError{SWAddressFormattingFailed, "address formatting failed"}
	ErrBadTokenIndex           = &StatusError{SWBadTokenIndex, "bad token index"}
	ErrBadTokenID              = &StatusError{SWBadTokenID, "bad token id"}
)

// StatusWord extracts the status word carried by err. Errors that are not
// status errors map to SWBadState.
func StatusWord(err error) SW {
	if err == nil {
		return SWOk
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.SW
	}
	return SWBadState
}
