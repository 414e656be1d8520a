// Package curve provides the one dimensional tone curves consumed by curve set stages.
package curve

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrInvalidGamma = errors.New("gamma must be a positive finite number")
	ErrShortTable   = errors.New("table needs at least 2 entries")
)

// ToneCurve maps a normalised value to another normalised value.
type ToneCurve interface {
	Eval(v float32) float32
}

// Gamma is the parametric curve y = x^gamma.
type Gamma struct {
	gamma float64
}

// NewGamma creates a gamma curve.
func NewGamma(gamma float64) (*Gamma, error) {
	if gamma <= 0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return nil, errors.Wrapf(ErrInvalidGamma, "got %v", gamma)
	}

	return &Gamma{gamma: gamma}, nil
}

// Identity returns the unit gamma curve.
func Identity() *Gamma {
	return &Gamma{gamma: 1}
}

// Gamma returns the exponent of the curve.
func (c *Gamma) Gamma() float64 {
	return c.gamma
}

// Eval evaluates the curve. Negative input is passed through by the identity curve and
// mapped to zero otherwise.
func (c *Gamma) Eval(v float32) float32 {
	if c.gamma == 1 {
		return v
	}
	if v <= 0 {
		return 0
	}

	return float32(math.Pow(float64(v), c.gamma))
}

// Table is a curve sampled at evenly spaced points over 0..1.
type Table struct {
	values []float32
}

// NewTable creates a sampled curve. The values are copied.
func NewTable(values []float32) (*Table, error) {
	if len(values) < 2 {
		return nil, errors.Wrapf(ErrShortTable, "got %d", len(values))
	}
	t := &Table{values: make([]float32, len(values))}
	copy(t.values, values)

	return t, nil
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return len(t.values)
}

// Eval interpolates linearly between the two nearest samples; input is clamped to 0..1.
func (t *Table) Eval(v float32) float32 {
	if v <= 0 || math.IsNaN(float64(v)) {
		return t.values[0]
	}
	last := len(t.values) - 1
	if v >= 1 {
		return t.values[last]
	}

	pos := float64(v) * float64(last)
	idx := int(pos)
	frac := pos - float64(idx)

	return float32(float64(t.values[idx])*(1-frac) + float64(t.values[idx+1])*frac)
}

var (
	_ ToneCurve = (*Gamma)(nil)
	_ ToneCurve = (*Table)(nil)
)
