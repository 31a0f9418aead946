package surfjournal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache(t *testing.T) {
	base := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)

	t.Run("EntryValidUnderTTL", func(t *testing.T) {
		now := base
		cache := newTTLCache(5*time.Minute, func() time.Time { return now })

		cache.set("k", "payload")

		now = base.Add(5*time.Minute - time.Second)
		got, ok := cache.get("k")
		assert.True(t, ok)
		assert.Equal(t, "payload", got)
	})

	t.Run("EntryExpiresExactlyAtTTL", func(t *testing.T) {
		now := base
		cache := newTTLCache(5*time.Minute, func() time.Time { return now })

		cache.set("k", "payload")

		now = base.Add(5 * time.Minute)
		_, ok := cache.get("k")
		assert.False(t, ok)
	})

	t.Run("MissingKey", func(t *testing.T) {
		cache := newTTLCache(5*time.Minute, func() time.Time { return base })

		_, ok := cache.get("absent")
		assert.False(t, ok)
	})

	t.Run("StaleEntryOverwritten", func(t *testing.T) {
		now := base
		cache := newTTLCache(time.Minute, func() time.Time { return now })

		cache.set("k", "old")
		now = now.Add(2 * time.Minute)
		cache.set("k", "new")

		got, ok := cache.get("k")
		assert.True(t, ok)
		assert.Equal(t, "new", got)
	})

	t.Run("ClearDropsEverything", func(t *testing.T) {
		cache := newTTLCache(5*time.Minute, func() time.Time { return base })

		cache.set("a", 1)
		cache.set("b", 2)
		cache.clear()

		_, okA := cache.get("a")
		_, okB := cache.get("b")
		assert.False(t, okA)
		assert.False(t, okB)
	})

	t.Run("ZeroTTLFallsBackToDefault", func(t *testing.T) {
		cache := newTTLCache(0, nil)
		assert.Equal(t, DefaultTTL, cache.ttl)
	})
}

func TestListKeyNormalization(t *testing.T) {
	categoryA, categoryB := 1, 2
	featured := true

	tests := []struct {
		name     string
		a, b     Filter
		sameKeys bool
	}{
		{
			name:     "identical filters",
			a:        Filter{Limit: 10, CategoryID: &categoryA},
			b:        Filter{Limit: 10, CategoryID: &categoryA},
			sameKeys: true,
		},
		{
			name:     "different categories",
			a:        Filter{Limit: 10, CategoryID: &categoryA},
			b:        Filter{Limit: 10, CategoryID: &categoryB},
			sameKeys: false,
		},
		{
			name:     "featured vs unset",
			a:        Filter{Limit: 10, Featured: &featured},
			b:        Filter{Limit: 10},
			sameKeys: false,
		},
		{
			name:     "search is part of the key",
			a:        Filter{Limit: 10, Search: "swell"},
			b:        Filter{Limit: 10, Search: "wind"},
			sameKeys: false,
		},
		{
			name:     "offset is part of the key",
			a:        Filter{Limit: 10, Offset: 0},
			b:        Filter{Limit: 10, Offset: 10},
			sameKeys: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sameKeys {
				assert.Equal(t, listKey(tt.a), listKey(tt.b))
			} else {
				assert.NotEqual(t, listKey(tt.a), listKey(tt.b))
			}
		})
	}
}
