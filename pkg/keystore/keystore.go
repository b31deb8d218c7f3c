// Package keystore holds the master key of the simulated device and derives
// the public keys shown and released by the confirmation flows.
package keystore

import (
	"crypto/sha512"
	"sync"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"go.uber.org/zap"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/address"
)

const bip39Salt = "mnemonic"

var (
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrNoSeed          = errors.New("no seed loaded")
)

type Keystore struct {
	mu     sync.RWMutex
	master *hdkeychain.ExtendedKey
	logger *zap.Logger
}

type Option func(*Keystore)

func WithLogger(logger *zap.Logger) Option {
	return func(k *Keystore) {
		k.logger = logger.Named("keystore")
	}
}

func New(opts ...Option) *Keystore {
	k := &Keystore{logger: zap.L().Named("keystore")}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// GenerateMnemonic returns a fresh mnemonic of the given entropy size.
func GenerateMnemonic(bitSize int) (string, error) {
	entropy, err := bip39.NewEntropy(bitSize)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}
	return bip39.NewMnemonic(entropy)
}

// Seed stretches a mnemonic into a BIP39 seed.
func Seed(mnemonic, password string) []byte {
	return pbkdf2.Key(norm.NFKD.Bytes([]byte(mnemonic)), norm.NFKD.Bytes([]byte(bip39Salt+password)), 2048, 64, sha512.New)
}

func (k *Keystore) LoadMnemonic(mnemonic, password string) error {
	if !bip39.IsMnemonicValid(mnemonic) {
		return ErrInvalidMnemonic
	}
	return k.LoadSeed(Seed(mnemonic, password))
}

func (k *Keystore) LoadSeed(seed []byte) error {
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return errors.Wrap(err, "failed to create master key")
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.master = master
	k.logger.Info("seed loaded")
	return nil
}

func (k *Keystore) Loaded() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.master != nil
}

func (k *Keystore) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.master = nil
}

// PublicKey derives the compressed public key at path.
func (k *Keystore) PublicKey(path []uint32) (pk [internal.CompressedPubKeyLen]byte, err error) {
	k.mu.RLock()
	key := k.master
	k.mu.RUnlock()
	if key == nil {
		return pk, ErrNoSeed
	}
	if len(path) == 0 || len(path) > internal.MaxBIP32PathLen {
		return pk, errors.Wrapf(internal.ErrBIP32FormattingFailed, "path length %d", len(path))
	}

	for _, i := range path {
		key, err = key.Derive(i)
		if err != nil {
			return pk, errors.Wrapf(err, "failed to derive child %d", i)
		}
	}

	pub, err := key.ECPubKey()
	if err != nil {
		return pk, errors.Wrap(err, "failed to get public key")
	}
	copy(pk[:], pub.SerializeCompressed())
	return pk, nil
}

// Address derives the P2PK address of the key at path.
func (k *Keystore) Address(network address.Network, path []uint32) (address.Raw, error) {
	pk, err := k.PublicKey(path)
	if err != nil {
		return address.Raw{}, err
	}
	raw, err := address.FromCompressedPubKey(network, pk)
	if err != nil {
		return address.Raw{}, errors.Wrap(internal.ErrAddressGenerationFailed, err.Error())
	}
	return raw, nil
}
