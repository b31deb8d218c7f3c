package flow

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/address"
	"github.com/status-im/status-ergo-go/pkg/stx"
	"github.com/status-im/status-ergo-go/pkg/ux"
)

func TestBufferCapacityLeavesBufferUntouched(t *testing.T) {
	e := NewEngine(&recordingHost{})
	tx := &stx.Context{}
	amounts := scenarioAmounts()
	output := &stx.OutputInfo{Kind: stx.OutputMinersFee}

	var b Buffer
	var tokenCtx AccessTokenConfirm
	var txCtx TransactionConfirm
	require.NoError(t, e.AddAccessTokenScreens(&b, &tokenCtx, 1, tx))
	require.NoError(t, e.AddTransactionScreens(&b, &txCtx, amounts, nil))
	require.Equal(t, 9, b.Len())

	before := append([]ux.Step(nil), b.Steps()...)
	checks := []func() error{
		func() error { return e.AddTransactionScreens(&b, &TransactionConfirm{}, amounts, nil) },
		func() error { return e.AddOutputScreens(&b, &OutputConfirm{}, output, address.Mainnet) },
		func() error { return e.AddLegacyTransactionScreens(&b, &LegacyConfirm{}, amounts) },
		func() error { return e.AddAddressScreens(&b, &AddressConfirm{}, []uint32{1}, address.Raw{}) },
	}
	for _, check := range checks {
		err := check()
		assert.True(t, errors.Is(err, ErrTooManyScreens))
		assert.Equal(t, 9, b.Len())
	}
	assert.Len(t, b.Steps(), len(before))
	for i := range before {
		assert.Equal(t, before[i].Title, b.Steps()[i].Title)
		assert.Equal(t, before[i].Kind, b.Steps()[i].Kind)
	}

	require.NoError(t, e.AddAccessTokenScreens(&b, &tokenCtx, 0, tx))
	assert.Equal(t, 11, b.Len())
	err := e.DisplayScreens(&b, ux.NewFlow())
	assert.True(t, errors.Is(err, ErrTooManyScreens))
	assert.Equal(t, 11, b.Len())
}

func TestBufferFillsExactly(t *testing.T) {
	var b Buffer
	for i := 0; i < internal.MaxNumberOfScreens; i++ {
		require.NoError(t, b.AddScreen(ux.TextStep(ux.IconNone, "s", "")))
	}
	assert.Equal(t, 0, b.Remaining())
	assert.True(t, errors.Is(b.AddScreen(ux.TextStep(ux.IconNone, "s", "")), ErrTooManyScreens))

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Steps())
	assert.Equal(t, internal.MaxNumberOfScreens, b.Remaining())
}

func TestDisplayScreensRestoresOnBadFlow(t *testing.T) {
	host := &recordingHost{}
	e := NewEngine(host)

	var b Buffer
	err := e.DisplayScreens(&b, ux.NewFlow())
	assert.True(t, errors.Is(err, ux.ErrEmptyFlow))
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, host.events)
}
