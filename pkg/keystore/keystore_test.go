package keystore

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/address"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

var receivePath = []uint32{
	44 | internal.HardenedIndex,
	internal.ErgoCoinType | internal.HardenedIndex,
	internal.HardenedIndex,
	0,
	0,
}

func TestSeedMatchesBIP39(t *testing.T) {
	assert.Equal(t, bip39.NewSeed(testMnemonic, "TREZOR"), Seed(testMnemonic, "TREZOR"))
	assert.Len(t, Seed(testMnemonic, ""), 64)
}

func TestLoadMnemonic(t *testing.T) {
	k := New()
	assert.False(t, k.Loaded())

	err := k.LoadMnemonic("abandon abandon", "")
	assert.True(t, errors.Is(err, ErrInvalidMnemonic))
	assert.False(t, k.Loaded())

	require.NoError(t, k.LoadMnemonic(testMnemonic, ""))
	assert.True(t, k.Loaded())

	k.Clear()
	_, err = k.PublicKey(receivePath)
	assert.True(t, errors.Is(err, ErrNoSeed))
}

func TestPublicKey(t *testing.T) {
	k := New()
	require.NoError(t, k.LoadMnemonic(testMnemonic, ""))

	pk, err := k.PublicKey(receivePath)
	require.NoError(t, err)
	_, err = crypto.DecompressPubkey(pk[:])
	require.NoError(t, err)

	again, err := k.PublicKey(receivePath)
	require.NoError(t, err)
	assert.Equal(t, pk, again)

	change := append(append([]uint32(nil), receivePath[:3]...), 1, 0)
	other, err := k.PublicKey(change)
	require.NoError(t, err)
	assert.NotEqual(t, pk, other)

	_, err = k.PublicKey(nil)
	assert.Equal(t, internal.SWBIP32FormattingFailed, internal.StatusWord(err))
}

func TestAddress(t *testing.T) {
	k := New()
	require.NoError(t, k.LoadMnemonic(testMnemonic, ""))

	raw, err := k.Address(address.Testnet, receivePath)
	require.NoError(t, err)
	assert.Equal(t, address.Testnet, raw.Network())
	assert.True(t, address.Verify(raw))
}

func TestGenerateMnemonic(t *testing.T) {
	m, err := GenerateMnemonic(128)
	require.NoError(t, err)
	assert.True(t, bip39.IsMnemonicValid(m))
}
