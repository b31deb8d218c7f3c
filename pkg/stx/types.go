// Package stx holds the data of a transaction being signed: the amounts it
// moves, the tokens it touches and the outputs it creates.
package stx

import (
	"github.com/status-im/status-ergo-go/internal"
)

// IndexNotExist is returned by the index lookups when no entry matches.
const IndexNotExist = -1

type TokenID [internal.ErgoIDLen]byte

// TokensTable lists the distinct token ids referenced by a transaction.
type TokensTable struct {
	Tokens []TokenID
}

func (t *TokensTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Tokens)
}

// Amounts summarises what a transaction spends. TokenAmounts runs parallel to
// Tokens.Tokens: a positive amount is minted, a negative one burned and zero
// means the token is untouched.
type Amounts struct {
	Value        uint64
	Fee          uint64
	Change       uint64
	Tokens       TokensTable
	TokenAmounts []int64
}

// NonZeroTokensCount returns how many tokens are minted or burned.
func (a *Amounts) NonZeroTokensCount() int {
	count := 0
	for i := range a.TokenAmounts {
		if i < a.Tokens.Len() && a.TokenAmounts[i] != 0 {
			count++
		}
	}
	return count
}

// NonZeroTokenIndex maps a position within the minted/burned subset to the
// token's index in the table, keeping table order.
func (a *Amounts) NonZeroTokenIndex(pos int) (int, bool) {
	if pos < 0 {
		return IndexNotExist, false
	}
	for i := range a.TokenAmounts {
		if i >= a.Tokens.Len() || a.TokenAmounts[i] == 0 {
			continue
		}
		if pos == 0 {
			return i, true
		}
		pos--
	}
	return IndexNotExist, false
}

type OutputKind int

const (
	OutputChange OutputKind = iota
	OutputAddress
	OutputScript
	OutputMinersFee
)

func (k OutputKind) String() string {
	switch k {
	case OutputChange:
		return "change"
	case OutputAddress:
		return "address"
	case OutputScript:
		return "script"
	case OutputMinersFee:
		return "fee"
	default:
		return "unknown"
	}
}

// ParseOutputKind is the inverse of OutputKind.String.
func ParseOutputKind(s string) (OutputKind, bool) {
	for k := OutputChange; k <= OutputMinersFee; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// OutputInfo describes one transaction output. Exactly one of BIP32Path,
// PublicKey or TreeHash is meaningful, as selected by Kind. TokenAmounts and
// TokenUsed run parallel to Tokens.
type OutputInfo struct {
	Kind         OutputKind
	Value        uint64
	BIP32Path    []uint32
	PublicKey    [internal.CompressedPubKeyLen]byte
	TreeHash     [internal.ErgoIDLen]byte
	Tokens       *TokensTable
	TokenAmounts []uint64
	TokenUsed    []bool
}

// UsedTokensCount returns how many table entries this output carries.
func (o *OutputInfo) UsedTokensCount() int {
	count := 0
	for i, used := range o.TokenUsed {
		if used && i < o.Tokens.Len() {
			count++
		}
	}
	return count
}

// UsedTokenIndex maps a position within the used subset to the table index.
func (o *OutputInfo) UsedTokenIndex(pos int) (int, bool) {
	if pos < 0 {
		return IndexNotExist, false
	}
	for i, used := range o.TokenUsed {
		if !used || i >= o.Tokens.Len() {
			continue
		}
		if pos == 0 {
			return i, true
		}
		pos--
	}
	return IndexNotExist, false
}

// TokenAmount returns the amount of table entry i carried by the output.
func (o *OutputInfo) TokenAmount(i int) uint64 {
	if i < 0 || i >= len(o.TokenAmounts) {
		return 0
	}
	return o.TokenAmounts[i]
}
