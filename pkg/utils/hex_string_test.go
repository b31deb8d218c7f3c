package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexStringEmptyDecodesToNil(t *testing.T) {
	for _, in := range []string{`""`, `null`} {
		s := HexString{0x01}
		require.NoError(t, json.Unmarshal([]byte(in), &s), in)
		assert.Nil(t, s, in)
	}

	var holder struct {
		Data HexString `json:"data"`
	}
	b, err := json.Marshal(holder)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &holder))
	assert.Nil(t, holder.Data)
}

func TestHexStringRoundTrip(t *testing.T) {
	var s HexString
	require.NoError(t, json.Unmarshal([]byte(`"0xcafe"`), &s))
	assert.Equal(t, HexString{0xca, 0xfe}, s)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"cafe"`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`"zz"`), &s))
}
