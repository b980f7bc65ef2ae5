package domain

// Attribute is a bounded resource: value never leaves [0, max].
type Attribute struct {
	Value int32 `json:"value"`
	Max   int32 `json:"max"`
}

// NewAttribute creates an attribute filled to max.
func NewAttribute(max int32) Attribute {
	return Attribute{Value: max, Max: max}
}

// Add increases value, clamped to max.
func (a *Attribute) Add(amount int32) {
	a.Value += amount
	if a.Value > a.Max {
		a.Value = a.Max
	}
	if a.Value < 0 {
		a.Value = 0
	}
}

// Subtract decreases value, clamped to zero.
func (a *Attribute) Subtract(amount int32) {
	a.Add(-amount)
}

// SubtractUnchecked decreases value without the zero floor. Used by the
// damage pipeline where negative resistance distinguishes knockout depth.
func (a *Attribute) SubtractUnchecked(amount int32) {
	a.Value -= amount
}

// Refill sets value back to max.
func (a *Attribute) Refill() {
	a.Value = a.Max
}

// Fraction returns value/max in [0, 1]; zero-max attributes report 0.
func (a Attribute) Fraction() float64 {
	if a.Max <= 0 {
		return 0
	}
	f := float64(a.Value) / float64(a.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
