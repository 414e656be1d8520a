package pcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-lut/pkg/pcs"
)

func TestMaxEncodableXYZ(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.99997, pcs.MaxEncodableXYZ, 1e-5)
	assert.InDelta(t, 2*65535.0/65536.0, pcs.MaxEncodableXYZ, 1e-12)
}

func TestXYZToLab(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		xyz  pcs.XYZ
		want pcs.Lab
	}{
		"white": {xyz: pcs.D50, want: pcs.Lab{L: 100}},
		"black": {xyz: pcs.XYZ{}, want: pcs.Lab{}},
		"mid grey": {
			xyz:  pcs.XYZ{X: 0.18418 * 0.9642, Y: 0.18418, Z: 0.18418 * 0.8249},
			want: pcs.Lab{L: 50},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := pcs.XYZToLab(nil, tc.xyz)
			assert.InDelta(t, tc.want.L, got.L, 1e-2)
			assert.InDelta(t, tc.want.A, got.A, 1e-6)
			assert.InDelta(t, tc.want.B, got.B, 1e-6)
		})
	}
}

func TestLabRoundTrip(t *testing.T) {
	t.Parallel()

	white := pcs.XYZ{X: 0.9505, Y: 1, Z: 1.089}
	samples := []pcs.XYZ{
		{X: 0, Y: 0, Z: 0},
		{X: 0.001, Y: 0.002, Z: 0.003},
		{X: 0.2, Y: 0.3, Z: 0.4},
		{X: 0.9642, Y: 1, Z: 0.8249},
		{X: 1.5, Y: 1.2, Z: 1.9},
	}

	for _, w := range []*pcs.XYZ{nil, &white} {
		for _, xyz := range samples {
			got := pcs.LabToXYZ(w, pcs.XYZToLab(w, xyz))
			assert.InDelta(t, xyz.X, got.X, 1e-9)
			assert.InDelta(t, xyz.Y, got.Y, 1e-9)
			assert.InDelta(t, xyz.Z, got.Z, 1e-9)
		}
	}
}
