package utils

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

var errHexLength = errors.New("unexpected hex length")

// HexString is a byte slice carried as a hex string in JSON. A leading "0x" is
// accepted when decoding.
type HexString []byte

// MarshalJSON serializes HexString to hex
func (s HexString) MarshalJSON() ([]byte, error) {
	bytes, err := json.Marshal(Btox(s))
	return bytes, err
}

// UnmarshalJSON deserializes HexString from hex. An empty string or null
// leaves s nil.
func (s *HexString) UnmarshalJSON(data []byte) error {
	var x string
	err := json.Unmarshal(data, &x)
	if err != nil {
		return err
	}
	if x == "" {
		*s = nil
		return nil
	}
	str, err := Xtob(x)
	if err != nil {
		return err
	}

	*s = HexString(str)
	return nil
}

func (s HexString) String() string {
	return Btox(s)
}

// CopyTo fills dst with the bytes of s, which must be exactly len(dst) long.
func (s HexString) CopyTo(dst []byte) error {
	if len(s) != len(dst) {
		return errors.Wrapf(errHexLength, "want %d bytes, got %d", len(dst), len(s))
	}
	copy(dst, s)
	return nil
}

func Btox(bytes []byte) string {
	return hex.EncodeToString(bytes)
}

func Xtob(str string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(str, "0x"))
}
