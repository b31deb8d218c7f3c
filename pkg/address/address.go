// Package address derives Ergo pay-to-public-key addresses.
package address

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/status-im/status-ergo-go/internal"
)

// Network is the network half of an address prefix byte.
type Network byte

const (
	Mainnet Network = 0x00
	Testnet Network = 0x10
)

// P2PK is the address type half of the prefix byte.
const P2PK byte = 0x01

var (
	ErrInvalidPublicKey = errors.New("invalid compressed public key")
	ErrUnknownNetwork   = errors.New("unknown network")
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	default:
		return "unknown"
	}
}

// ParseNetwork maps a network name to its prefix value.
func ParseNetwork(name string) (Network, error) {
	switch name {
	case "", "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	default:
		return 0, errors.Wrap(ErrUnknownNetwork, name)
	}
}

// Raw is the binary form of an address: prefix, public key, checksum.
type Raw [internal.AddressLen]byte

// String returns the base58 encoding of the address.
func (r Raw) String() string {
	return base58.Encode(r[:])
}

func (r Raw) Network() Network {
	return Network(r[0] &^ 0x0F)
}

// FromCompressedPubKey builds the P2PK address of pubkey on network.
func FromCompressedPubKey(network Network, pubkey [internal.CompressedPubKeyLen]byte) (Raw, error) {
	var raw Raw

	if _, err := crypto.DecompressPubkey(pubkey[:]); err != nil {
		return raw, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}

	raw[0] = byte(network) + P2PK
	copy(raw[1:], pubkey[:])

	body := internal.AddressLen - internal.AddressChecksumLen
	sum := blake2b.Sum256(raw[:body])
	copy(raw[body:], sum[:internal.AddressChecksumLen])

	return raw, nil
}

// Verify checks the checksum of a raw address.
func Verify(raw Raw) bool {
	body := internal.AddressLen - internal.AddressChecksumLen
	sum := blake2b.Sum256(raw[:body])
	for i := 0; i < internal.AddressChecksumLen; i++ {
		if raw[body+i] != sum[i] {
			return false
		}
	}
	return true
}
