package sim

import (
	"github.com/pkg/errors"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/keystore"
	"github.com/status-im/status-ergo-go/pkg/stx"
)

// DemoAppToken identifies the simulated wallet application.
const DemoAppToken uint32 = 0x0000CAFE

func hardened(i uint32) uint32 {
	return i | internal.HardenedIndex
}

// AccountPath is m/44'/429'/0'/change/index.
func AccountPath(change, index uint32) []uint32 {
	return []uint32{hardened(44), hardened(internal.ErgoCoinType), hardened(0), change, index}
}

func demoToken(seed byte) stx.TokenID {
	var id stx.TokenID
	for i := range id {
		id[i] = seed + byte(i)
	}
	return id
}

// DemoTransaction builds a transaction paying to the keystore's second
// receive address, minting one token and burning another.
func DemoTransaction(ks *keystore.Keystore) (stx.Amounts, []stx.OutputInfo, error) {
	recipient, err := ks.PublicKey(AccountPath(0, 1))
	if err != nil {
		return stx.Amounts{}, nil, errors.Wrap(err, "failed to derive recipient")
	}

	amounts := stx.Amounts{
		Value:        1500000000,
		Fee:          1100000,
		Change:       98900000,
		Tokens:       stx.TokensTable{Tokens: []stx.TokenID{demoToken(0x10), demoToken(0x80)}},
		TokenAmounts: []int64{1000, -25},
	}
	outputs := []stx.OutputInfo{
		{
			Kind:         stx.OutputAddress,
			Value:        1500000000,
			PublicKey:    recipient,
			TokenAmounts: []uint64{1000, 0},
			TokenUsed:    []bool{true, false},
		},
		{
			Kind:      stx.OutputChange,
			Value:     98900000,
			BIP32Path: AccountPath(1, 0),
		},
		{
			Kind:  stx.OutputMinersFee,
			Value: 1100000,
		},
	}
	return amounts, outputs, nil
}
