package accountrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuncanbit/txe/internal/domain"
)

func TestGetOrCreate(t *testing.T) {
	repo := New()

	_, ok := repo.Get(1)
	assert.False(t, ok)

	account := repo.GetOrCreate(1)
	require.NotNil(t, account)
	assert.Equal(t, "0.0000", account.Available.String())
	assert.Equal(t, "0.0000", account.Held.String())
	assert.False(t, account.Locked)
	assert.Equal(t, 1, repo.Len())

	// The same live account comes back on subsequent calls.
	account.Available = 100000
	again := repo.GetOrCreate(1)
	assert.Equal(t, "10.0000", again.Available.String())
	assert.Equal(t, 1, repo.Len())
}

func TestSnapshot(t *testing.T) {
	repo := New()

	a := repo.GetOrCreate(3)
	a.Available = 50000
	a.Held = 20000

	b := repo.GetOrCreate(1)
	b.Locked = true

	snapshot := repo.Snapshot()
	require.Len(t, snapshot, 2)

	assert.Equal(t, domain.ClientID(1), snapshot[0].Client)
	assert.True(t, snapshot[0].Locked)

	assert.Equal(t, domain.ClientID(3), snapshot[1].Client)
	assert.Equal(t, "5.0000", snapshot[1].Available.String())
	assert.Equal(t, "2.0000", snapshot[1].Held.String())
	assert.Equal(t, "7.0000", snapshot[1].Total.String())
}
