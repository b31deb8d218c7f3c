package format

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"

	"github.com/status-im/status-ergo-go/internal"
)

const ellipsis = "..."

// ElidedLen is the length of every identifier passed through ElideMiddle
// that was long enough to be elided.
const ElidedLen = 2*internal.TokenIDCharacters + len(ellipsis)

var ErrEmptyInput = errors.New("nothing to encode")

// Base58 encodes b. Empty input is an error: a zero-length identifier is
// never valid on screen.
func Base58(b []byte) (string, error) {
	if len(b) == 0 {
		return "", ErrEmptyInput
	}
	return base58.Encode(b), nil
}

// ElideMiddle keeps the first and last TokenIDCharacters characters of s and
// puts "..." between them. Strings too short to be shortened are returned as
// is. This is a display transform only.
func ElideMiddle(s string) string {
	if len(s) < ElidedLen {
		return s
	}
	k := internal.TokenIDCharacters
	return s[:k] + ellipsis + s[len(s)-k:]
}

// Base58Elided encodes b and elides the middle of the result.
func Base58Elided(b []byte) (string, error) {
	s, err := Base58(b)
	if err != nil {
		return "", err
	}
	return ElideMiddle(s), nil
}
