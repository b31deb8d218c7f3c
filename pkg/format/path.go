package format

import (
	"github.com/pkg/errors"
	"github.com/status-im/keycard-go/derivationpath"

	"github.com/status-im/status-ergo-go/internal"
)

var ErrBadPath = errors.New("bad derivation path")

// Path renders a BIP32 path such as m/44'/429'/0'/1/0.
func Path(path []uint32) (string, error) {
	if len(path) == 0 || len(path) > internal.MaxBIP32PathLen {
		return "", errors.Wrapf(ErrBadPath, "length %d", len(path))
	}
	return derivationpath.Encode(path), nil
}

// ParsePath is the inverse of Path. Only absolute paths are accepted.
func ParsePath(s string) ([]uint32, error) {
	start, path, err := derivationpath.Decode(s)
	if err != nil {
		return nil, errors.Wrap(ErrBadPath, err.Error())
	}
	if start != derivationpath.StartingPointMaster {
		return nil, errors.Wrapf(ErrBadPath, "%q is not absolute", s)
	}
	if len(path) == 0 || len(path) > internal.MaxBIP32PathLen {
		return nil, errors.Wrapf(ErrBadPath, "length %d", len(path))
	}
	return path, nil
}
