package seeder

import (
	"math/rand"
	"sort"
	"time"
)

// DataGenerator is the single source of randomness for a run. Two generators
// built from the same seed produce the same draws in the same order.
type DataGenerator struct {
	rand *rand.Rand
	seed int64
}

func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

func (g *DataGenerator) Seed() int64 {
	return g.seed
}

// NormFloat64 lets the generator drive the rate simulator.
func (g *DataGenerator) NormFloat64() float64 {
	return g.rand.NormFloat64()
}

// Uniform draws from [lo, hi).
func (g *DataGenerator) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rand.Float64()
}

// IntBetween draws from [lo, hi] inclusive.
func (g *DataGenerator) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rand.Intn(hi-lo+1)
}

func (g *DataGenerator) Choice(values []int) int {
	return values[g.rand.Intn(len(values))]
}

// Sample picks k distinct indexes from [0, n) without replacement. k is
// capped at n.
func (g *DataGenerator) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	return g.rand.Perm(n)[:k]
}

// DateIn draws a day offset in [from, to] from start. to is clamped so it
// never precedes from.
func (g *DataGenerator) DateIn(start time.Time, from, to int) time.Time {
	if to < from {
		to = from
	}
	return start.AddDate(0, 0, g.IntBetween(from, to))
}

// SortedDates draws count dates with DateIn and sorts them ascending.
func (g *DataGenerator) SortedDates(start time.Time, from, to, count int) []time.Time {
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = g.DateIn(start, from, to)
	}
	sort.SliceStable(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}
