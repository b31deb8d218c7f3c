package stx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTable(n int) TokensTable {
	t := TokensTable{Tokens: make([]TokenID, n)}
	for i := range t.Tokens {
		t.Tokens[i][0] = byte(i + 1)
	}
	return t
}

func TestNonZeroTokenIndexKeepsOrder(t *testing.T) {
	a := Amounts{
		Tokens:       tokenTable(5),
		TokenAmounts: []int64{0, 7, 0, -3, 9},
	}

	assert.Equal(t, 3, a.NonZeroTokensCount())

	want := []int{1, 3, 4}
	for pos, idx := range want {
		got, ok := a.NonZeroTokenIndex(pos)
		assert.True(t, ok)
		assert.Equal(t, idx, got)
	}

	_, ok := a.NonZeroTokenIndex(3)
	assert.False(t, ok)
	_, ok = a.NonZeroTokenIndex(-1)
	assert.False(t, ok)
}

func TestNonZeroIgnoresAmountsBeyondTable(t *testing.T) {
	a := Amounts{
		Tokens:       tokenTable(1),
		TokenAmounts: []int64{1, 5},
	}
	assert.Equal(t, 1, a.NonZeroTokensCount())
}

func TestUsedTokenIndex(t *testing.T) {
	table := tokenTable(4)
	o := OutputInfo{
		Tokens:       &table,
		TokenAmounts: []uint64{0, 0, 12, 0},
		TokenUsed:    []bool{true, false, true, false},
	}

	assert.Equal(t, 2, o.UsedTokensCount())

	idx, ok := o.UsedTokenIndex(0)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = o.UsedTokenIndex(1)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, uint64(12), o.TokenAmount(idx))

	_, ok = o.UsedTokenIndex(2)
	assert.False(t, ok)
}

func TestUsedTokensWithoutTable(t *testing.T) {
	o := OutputInfo{TokenUsed: []bool{true}}
	assert.Equal(t, 0, o.UsedTokensCount())
}

func TestOutputKindRoundTrip(t *testing.T) {
	for k := OutputChange; k <= OutputMinersFee; k++ {
		got, ok := ParseOutputKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseOutputKind("unknown")
	assert.False(t, ok)
}
