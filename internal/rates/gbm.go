// Package rates simulates daily exchange-rate paths with geometric Brownian
// motion.
package rates

import (
	"math"
	"time"

	"github.com/Lumos-Labs-HQ/hotseed/internal/catalog"
)

const (
	DefaultMu    = 0.0001
	DefaultSigma = 0.015

	// one trading day
	dt = 1.0
)

// Normal draws standard-normal variates. *rand.Rand satisfies it.
type Normal interface {
	NormFloat64() float64
}

type Point struct {
	Date time.Time
	Rate float64
}

// Series is one currency pair's path, one point per consecutive day.
type Series struct {
	Pair   catalog.Pair
	Points []Point
}

// Simulate returns days values starting at initial, where each step is
// S(t+1) = S(t) * exp((mu - sigma^2/2)*dt + sigma*sqrt(dt)*Z).
func Simulate(src Normal, initial float64, days int, mu, sigma float64) []float64 {
	if days <= 0 {
		return nil
	}

	path := make([]float64, days)
	path[0] = initial
	drift := (mu - 0.5*sigma*sigma) * dt
	vol := sigma * math.Sqrt(dt)
	for i := 1; i < days; i++ {
		z := src.NormFloat64()
		path[i] = path[i-1] * math.Exp(drift+vol*z)
	}
	return path
}

// NewSeries stamps values with consecutive dates beginning at start.
func NewSeries(pair catalog.Pair, start time.Time, values []float64) Series {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{Date: start.AddDate(0, 0, i), Rate: v}
	}
	return Series{Pair: pair, Points: points}
}

// Generate simulates one series per initial rate, in the given order.
func Generate(src Normal, initial []catalog.InitialRate, start time.Time, days int, mu, sigma float64) []Series {
	out := make([]Series, 0, len(initial))
	for _, ir := range initial {
		out = append(out, NewSeries(ir.Pair, start, Simulate(src, ir.Rate, days, mu, sigma)))
	}
	return out
}
