package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	s := NewStore(ttl)
	t.Cleanup(s.Stop)
	return s
}

func TestPutAssignsIDAndCreatedAt(t *testing.T) {
	s := newTestStore(t, time.Hour)

	placed := s.Put(Order{MerchantID: "m1", CustomerID: "c1", Items: []Item{{Name: "Diya", Quantity: 3}}})
	assert.NotEmpty(t, placed.ID)
	assert.False(t, placed.CreatedAt.IsZero())

	got, ok := s.Get("m1", "c1")
	require.True(t, ok)
	assert.Equal(t, placed, got)
}

func TestPutReplacesPendingOrderForSamePair(t *testing.T) {
	s := newTestStore(t, time.Hour)

	first := s.Put(Order{MerchantID: "m1", CustomerID: "c1", Items: []Item{{Name: "Diya", Quantity: 3}}})
	second := s.Put(Order{MerchantID: "m1", CustomerID: "c1", Items: []Item{{Name: "Sweets", Quantity: 1}}})
	assert.NotEqual(t, first.ID, second.ID)

	got, ok := s.Get("m1", "c1")
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, "Sweets", got.Items[0].Name)
}

func TestRemove(t *testing.T) {
	s := newTestStore(t, time.Hour)
	placed := s.Put(Order{MerchantID: "m1", CustomerID: "c1"})

	removed, ok := s.Remove("m1", "c1")
	require.True(t, ok)
	assert.Equal(t, placed.ID, removed.ID)

	_, ok = s.Get("m1", "c1")
	assert.False(t, ok)
	_, ok = s.Remove("m1", "c1")
	assert.False(t, ok)
}

func TestExpiredOrdersAreInvisible(t *testing.T) {
	s := newTestStore(t, 30*time.Minute)

	current := time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	s.Put(Order{MerchantID: "m1", CustomerID: "c1"})

	current = current.Add(29 * time.Minute)
	_, ok := s.Get("m1", "c1")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = s.Get("m1", "c1")
	assert.False(t, ok)
	_, ok = s.Remove("m1", "c1")
	assert.False(t, ok)
	assert.Empty(t, s.ListForMerchant("m1"))
}

func TestEvictExpiredDropsOnlyStaleEntries(t *testing.T) {
	s := newTestStore(t, 30*time.Minute)

	current := time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	s.Put(Order{MerchantID: "m1", CustomerID: "stale"})
	current = current.Add(20 * time.Minute)
	s.Put(Order{MerchantID: "m1", CustomerID: "fresh"})

	current = current.Add(15 * time.Minute)
	s.evictExpired()

	assert.Len(t, s.entries, 1)
	_, ok := s.Get("m1", "fresh")
	assert.True(t, ok)
}

func TestListForMerchantFiltersByMerchant(t *testing.T) {
	s := newTestStore(t, time.Hour)

	s.Put(Order{MerchantID: "m1", CustomerID: "c1"})
	s.Put(Order{MerchantID: "m1", CustomerID: "c2"})
	s.Put(Order{MerchantID: "m2", CustomerID: "c1"})

	pending := s.ListForMerchant("m1")
	assert.Len(t, pending, 2)
	for _, order := range pending {
		assert.Equal(t, "m1", order.MerchantID)
	}
	assert.Len(t, s.ListForMerchant("m2"), 1)
	assert.Empty(t, s.ListForMerchant("m3"))
}
