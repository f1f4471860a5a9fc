package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSample_CapsAtCatalogSize(t *testing.T) {
	g := NewDataGenerator(1)

	got := g.Sample(3, 10)

	assert.Len(t, got, 3)
	seen := make(map[int]bool)
	for _, idx := range got {
		assert.False(t, seen[idx])
		seen[idx] = true
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 3)
	}
	assert.Empty(t, g.Sample(5, 0))
	assert.Empty(t, g.Sample(0, 2))
}

func TestIntBetween_Inclusive(t *testing.T) {
	g := NewDataGenerator(2)
	seen := make(map[int]bool)

	for i := 0; i < 500; i++ {
		v := g.IntBetween(1, 4)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 7, g.IntBetween(7, 7))
}

func TestUniform_Bounds(t *testing.T) {
	g := NewDataGenerator(3)

	for i := 0; i < 500; i++ {
		v := g.Uniform(0.95, 1.05)
		assert.GreaterOrEqual(t, v, 0.95)
		assert.Less(t, v, 1.05)
	}
}

func TestSortedDates(t *testing.T) {
	g := NewDataGenerator(4)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	dates := g.SortedDates(start, 7, 365, 200)

	assert.Len(t, dates, 200)
	for i, d := range dates {
		assert.False(t, d.Before(start.AddDate(0, 0, 7)))
		assert.False(t, d.After(start.AddDate(0, 0, 365)))
		if i > 0 {
			assert.False(t, d.Before(dates[i-1]))
		}
	}
}

func TestDateIn_ClampsReversedBounds(t *testing.T) {
	g := NewDataGenerator(5)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, start.AddDate(0, 0, 7), g.DateIn(start, 7, 2))
}
