package concepts

import (
	"sync"
	"unicode/utf8"
)

// Default cost rates, in currency units per 1000 characters.
const (
	DefaultInputRate  = 0.000125
	DefaultOutputRate = 0.000375
)

// Rates price model input and output per 1000 characters.
type Rates struct {
	Input  float64
	Output float64
}

// DefaultRates returns the standard input and output rates.
func DefaultRates() Rates {
	return Rates{Input: DefaultInputRate, Output: DefaultOutputRate}
}

// Estimate prices one batch from the character counts of its text and of the model output.
func (r Rates) Estimate(batchText, output string) float64 {
	in := float64(utf8.RuneCountInString(batchText)) / 1000 * r.Input
	out := float64(utf8.RuneCountInString(output)) / 1000 * r.Output
	return in + out
}

// costMeter is a running total shared by concurrent batches. It only grows.
type costMeter struct {
	mu    sync.Mutex
	total float64
}

func (m *costMeter) add(cost float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cost > 0 {
		m.total += cost
	}
	return m.total
}
