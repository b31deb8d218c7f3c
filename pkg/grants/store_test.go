package grants

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "grants.json")
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s, err := NewStore(path)
	require.NoError(t, err)
	assert.Nil(t, s.Get(0xCAFE))

	require.NoError(t, s.Record(0xCAFE, 1, at))
	require.NoError(t, s.Record(0xCAFE, 2, at.Add(time.Minute)))
	require.NoError(t, s.Record(0x01, 3, at))

	reopened, err := NewStore(path)
	require.NoError(t, err)
	g := reopened.Get(0xCAFE)
	require.NotNil(t, g)
	assert.Equal(t, 2, g.Approvals)
	assert.Equal(t, uint8(2), g.LastSession)
	assert.True(t, at.Add(time.Minute).Equal(g.LastApproved))

	list := reopened.List()
	require.Len(t, list, 2)
	assert.Equal(t, uint32(0x01), list[0].Token)

	require.NoError(t, reopened.Delete(0x01))
	assert.Len(t, reopened.List(), 1)
}

func TestMemoryStore(t *testing.T) {
	s, err := NewStore("")
	require.NoError(t, err)
	require.NoError(t, s.Record(7, 1, time.Now()))
	assert.Equal(t, 1, s.Get(7).Approvals)
}
