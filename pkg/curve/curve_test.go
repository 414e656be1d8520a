package curve_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-lut/pkg/curve"
)

func TestNewGammaInvalid(t *testing.T) {
	t.Parallel()

	for _, g := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := curve.NewGamma(g)
		assert.True(t, errors.Is(err, curve.ErrInvalidGamma), "gamma %v", g)
	}
}

func TestGammaEval(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		gamma float64
		in    float32
		want  float32
	}{
		"identity zero":     {gamma: 1, in: 0, want: 0},
		"identity one":      {gamma: 1, in: 1, want: 1},
		"identity negative": {gamma: 1, in: -0.25, want: -0.25},
		"square half":       {gamma: 2, in: 0.5, want: 0.25},
		"square negative":   {gamma: 2, in: -0.5, want: 0},
		"2.2 one":           {gamma: 2.2, in: 1, want: 1},
		"2.2 mid":           {gamma: 2.2, in: 0.5, want: float32(math.Pow(0.5, 2.2))},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := curve.NewGamma(tc.gamma)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, c.Eval(tc.in), 1e-6)
		})
	}
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	c := curve.Identity()
	assert.Equal(t, 1.0, c.Gamma())
	for _, v := range []float32{0, 0.1, 0.5, 0.999, 1} {
		assert.Equal(t, v, c.Eval(v))
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	_, err := curve.NewTable([]float32{1})
	require.True(t, errors.Is(err, curve.ErrShortTable))

	src := []float32{0, 0.5, 1}
	tbl, err := curve.NewTable(src)
	require.NoError(t, err)
	src[1] = 42
	assert.Equal(t, 3, tbl.Len())

	tcs := map[string]struct {
		in   float32
		want float32
	}{
		"below":   {in: -1, want: 0},
		"zero":    {in: 0, want: 0},
		"quarter": {in: 0.25, want: 0.25},
		"node":    {in: 0.5, want: 0.5},
		"upper":   {in: 0.75, want: 0.75},
		"one":     {in: 1, want: 1},
		"above":   {in: 2, want: 1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tc.want, tbl.Eval(tc.in), 1e-6)
		})
	}
}
