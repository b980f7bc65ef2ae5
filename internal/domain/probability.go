package domain

import "math/rand"

// Probability is a chance in whole percent. Values above 100 always pass.
type Probability uint8

const (
	Never  Probability = 0
	Low    Probability = 20
	Medium Probability = 45
	High   Probability = 80
	Always Probability = 100
)

// Passes rolls the probability against the given RNG.
func (p Probability) Passes(r *rand.Rand) bool {
	if p >= 100 {
		return true
	}
	return r.Intn(100) < int(p)
}

// IsHigh reports whether the chance is in the "take it immediately" band
// used by the AI skill picker.
func (p Probability) IsHigh() bool {
	return p > 80
}
