// Package pcs implements the conversions between the two profile connection spaces, CIE XYZ
// and CIE L*a*b*.
//
// CIE 15:2004 defines L*a*b* relative to a reference white (Xn, Yn, Zn) as
//
//	L* = 116 f(Y/Yn) - 16
//	a* = 500 [f(X/Xn) - f(Y/Yn)]
//	b* = 200 [f(Y/Yn) - f(Z/Zn)]
//
// with f(t) = t^(1/3) above (6/29)^3 and the linear segment (841/108) t + 16/116 below it.
package pcs

import "math"

// MaxEncodableXYZ is the largest XYZ component representable in the 16 bit PCS encoding:
// 0xffff read as a 1.15 fixed point number, 1 + 32767/32768.
const MaxEncodableXYZ = 1 + 32767.0/32768.0

const (
	labBreak      = (24.0 / 116.0) * (24.0 / 116.0) * (24.0 / 116.0)
	labInvBreak   = 24.0 / 116.0
	labLinearK    = 841.0 / 108.0
	labLinearBias = 16.0 / 116.0
)

// XYZ is a CIE XYZ tristimulus value, Y = 1 for the reference white.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* value.
type Lab struct {
	L, A, B float64
}

// D50 is the ICC profile connection space illuminant.
var D50 = XYZ{X: 0.9642, Y: 1.0, Z: 0.8249}

func f(t float64) float64 {
	if t <= labBreak {
		return labLinearK*t + labLinearBias
	}

	return math.Cbrt(t)
}

func fInv(t float64) float64 {
	if t <= labInvBreak {
		return (108.0 / 841.0) * (t - labLinearBias)
	}

	return t * t * t
}

// XYZToLab converts xyz to Lab relative to white. A nil white means D50.
// Negative components are handled by the linear segment of f.
func XYZToLab(white *XYZ, xyz XYZ) Lab {
	if white == nil {
		white = &D50
	}

	fx := f(xyz.X / white.X)
	fy := f(xyz.Y / white.Y)
	fz := f(xyz.Z / white.Z)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// LabToXYZ converts lab to XYZ relative to white. A nil white means D50.
func LabToXYZ(white *XYZ, lab Lab) XYZ {
	if white == nil {
		white = &D50
	}

	y := (lab.L + 16.0) / 116.0
	x := y + 0.002*lab.A
	z := y - 0.005*lab.B

	return XYZ{
		X: fInv(x) * white.X,
		Y: fInv(y) * white.Y,
		Z: fInv(z) * white.Z,
	}
}
