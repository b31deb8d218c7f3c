package flow

import (
	"github.com/pkg/errors"
)

var ErrScreenOutOfRange = errors.New("screen index out of range")

// FieldKind names the value a screen shows.
type FieldKind int

const (
	FieldNone FieldKind = iota
	FieldOutputInfo
	FieldOutputValue
	FieldTxValue
	FieldTxFee
	FieldTokenID
	FieldTokenValue
)

func (k FieldKind) String() string {
	switch k {
	case FieldNone:
		return "none"
	case FieldOutputInfo:
		return "output-info"
	case FieldOutputValue:
		return "output-value"
	case FieldTxValue:
		return "tx-value"
	case FieldTxFee:
		return "tx-fee"
	case FieldTokenID:
		return "token-id"
	case FieldTokenValue:
		return "token-value"
	default:
		return "unknown"
	}
}

// Field selects what to render. Token is the position within the tokens
// that are shown, not the index into the token table.
type Field struct {
	Kind  FieldKind
	Token int
}

// Layout describes a dynamic region: a fixed prefix of fields followed by an
// id/value pair for each shown token.
type Layout struct {
	Prefix []FieldKind
	Tokens int
}

var (
	transactionPrefix = []FieldKind{FieldTxValue, FieldTxFee}
	outputPrefix      = []FieldKind{FieldOutputInfo, FieldOutputValue}
)

func TransactionLayout(tokens int) Layout {
	return Layout{Prefix: transactionPrefix, Tokens: tokens}
}

func OutputLayout(tokens int) Layout {
	return Layout{Prefix: outputPrefix, Tokens: tokens}
}

// Count is the number of screens in the layout.
func (l Layout) Count() int {
	return len(l.Prefix) + 2*l.Tokens
}

// Resolve maps a flat screen index to its field.
func (l Layout) Resolve(screen int) (Field, error) {
	if screen < 0 || screen >= l.Count() {
		return Field{}, errors.Wrapf(ErrScreenOutOfRange, "%d of %d", screen, l.Count())
	}
	if screen < len(l.Prefix) {
		return Field{Kind: l.Prefix[screen]}, nil
	}

	pos, isID := TokenSlot(screen - len(l.Prefix))
	if isID {
		return Field{Kind: FieldTokenID, Token: pos}, nil
	}
	return Field{Kind: FieldTokenValue, Token: pos}, nil
}

// Index is the inverse of Resolve.
func (l Layout) Index(f Field) (int, bool) {
	switch f.Kind {
	case FieldTokenID, FieldTokenValue:
		if f.Token < 0 || f.Token >= l.Tokens {
			return 0, false
		}
		return len(l.Prefix) + TokenOffset(f.Token, f.Kind == FieldTokenID), true
	default:
		for i, k := range l.Prefix {
			if k == f.Kind {
				return i, true
			}
		}
		return 0, false
	}
}

// TokenSlot splits an offset into the token region into the token position
// and whether the screen shows the id (even offsets) or the value (odd).
func TokenSlot(offset int) (pos int, isID bool) {
	return offset / 2, offset%2 == 0
}

// TokenOffset is the inverse of TokenSlot.
func TokenOffset(pos int, isID bool) int {
	if isID {
		return 2 * pos
	}
	return 2*pos + 1
}
