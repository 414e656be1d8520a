package pipeline

import (
	"math"

	"github.com/askiada/go-lut/pkg/pcs"
	"github.com/askiada/go-lut/pkg/pipeline/model"
)

// eval runs the stage: it reads inputChannels values of in and writes outputChannels values
// of out. Dispatch is on the mechanism type only, never on implements.
func (s *Stage) eval(in, out []float32) {
	switch s.typ {
	case model.MatrixType:
		m, ok := s.data.(*matrixPayload)
		if !ok {
			s.payloadMismatch()
		}
		evalMatrix(in, out, s, m)
	case model.CurveSetType:
		c, ok := s.data.(*curvesPayload)
		if !ok {
			s.payloadMismatch()
		}
		evalCurves(in, out, c)
	case model.CLutType:
		c, ok := s.data.(*clutPayload)
		if !ok {
			s.payloadMismatch()
		}
		evalCLut(in, out, s, c)
	case model.NamedColorType:
		n, ok := s.data.(*namedColorPayload)
		if !ok {
			s.payloadMismatch()
		}
		evalNamedColor(in, out, s, n)
	case model.XYZ2LabType:
		s.noPayload()
		evalXYZToLab(in, out)
	case model.Lab2XYZType:
		s.noPayload()
		evalLabToXYZ(in, out)
	case model.ClipNegativesType:
		s.noPayload()
		evalClipper(in, out, s)
	case model.IdentityType:
		s.noPayload()
		copy(out[:s.outputChannels], in[:s.inputChannels])
	default:
		fatalf(ErrPayloadMismatch, "%s: no evaluator", s)
	}
}

func (s *Stage) payloadMismatch() {
	fatalf(ErrPayloadMismatch, "%s: payload %T", s, s.data)
}

func (s *Stage) noPayload() {
	if s.data != nil {
		s.payloadMismatch()
	}
}

// evalMatrix accumulates in float64 to limit the precision loss. Input is in 0..1.0.
func evalMatrix(in, out []float32, s *Stage, m *matrixPayload) {
	cols := s.inputChannels
	for i := 0; i < s.outputChannels; i++ {
		var tmp float64
		row := m.matrix[i*cols : (i+1)*cols]
		for j, coef := range row {
			tmp += float64(in[j]) * coef
		}
		if m.offset != nil {
			tmp += m.offset[i]
		}
		out[i] = float32(tmp)
	}
}

func evalCurves(in, out []float32, c *curvesPayload) {
	for i, crv := range c.curves {
		out[i] = crv.Eval(in[i])
	}
}

func evalXYZToLab(in, out []float32) {
	// 0..1.0 to XYZ
	xyz := pcs.XYZ{
		X: float64(in[0]) * pcs.MaxEncodableXYZ,
		Y: float64(in[1]) * pcs.MaxEncodableXYZ,
		Z: float64(in[2]) * pcs.MaxEncodableXYZ,
	}

	lab := pcs.XYZToLab(nil, xyz)

	// v4 Lab to 0..1.0
	out[0] = float32(lab.L / 100)
	out[1] = float32((lab.A + 128) / 255)
	out[2] = float32((lab.B + 128) / 255)
}

func evalLabToXYZ(in, out []float32) {
	lab := pcs.Lab{
		L: float64(in[0]) * 100,
		A: float64(in[1])*255 - 128,
		B: float64(in[2])*255 - 128,
	}

	xyz := pcs.LabToXYZ(nil, lab)

	out[0] = float32(xyz.X / pcs.MaxEncodableXYZ)
	out[1] = float32(xyz.Y / pcs.MaxEncodableXYZ)
	out[2] = float32(xyz.Z / pcs.MaxEncodableXYZ)
}

func evalClipper(in, out []float32, s *Stage) {
	for i := 0; i < s.inputChannels; i++ {
		// NaN is not negative and is kept
		v := in[i]
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
}

func evalCLut(in, out []float32, s *Stage, c *clutPayload) {
	var (
		base [maxCLutInputs]int
		frac [maxCLutInputs]float64
		acc  [MaxStageChannels]float64
	)

	last := c.gridPoints - 1
	for d := 0; d < s.inputChannels; d++ {
		v := float64(in[d])
		switch {
		case v <= 0 || math.IsNaN(v):
			v = 0
		case v > 1:
			v = 1
		}
		v *= float64(last)
		i0 := int(v)
		if i0 >= last {
			i0 = last - 1
		}
		base[d] = i0
		frac[d] = v - float64(i0)
	}

	for corner := 0; corner < 1<<s.inputChannels; corner++ {
		weight := 1.0
		offset := 0
		for d := 0; d < s.inputChannels; d++ {
			idx := base[d]
			if corner&(1<<d) != 0 {
				idx++
				weight *= frac[d]
			} else {
				weight *= 1 - frac[d]
			}
			offset += idx * c.strides[d]
		}
		if weight == 0 {
			continue
		}
		for o := 0; o < s.outputChannels; o++ {
			acc[o] += weight * float64(c.table[offset+o])
		}
	}

	for o := 0; o < s.outputChannels; o++ {
		out[o] = float32(acc[o])
	}
}

func evalNamedColor(in, out []float32, s *Stage, n *namedColorPayload) {
	idx := int(quickSaturateWord(float64(in[0]) * 65535))
	color, ok := n.list.Info(idx)
	for o := 0; o < s.outputChannels; o++ {
		switch {
		case !ok:
			out[o] = 0
		case n.usePCS:
			out[o] = float32(color.PCS[o]) / 65535
		default:
			out[o] = float32(color.Colorant[o]) / 65535
		}
	}
}

// quickSaturateWord rounds d to the nearest uint16, saturating at both ends.
func quickSaturateWord(d float64) uint16 {
	d += 0.5
	switch {
	case d <= 0 || math.IsNaN(d):
		return 0
	case d >= 65535:
		return 0xffff
	}

	return uint16(math.Floor(d))
}

func from16ToFloat(in []uint16, out []float32) {
	for i, v := range in {
		out[i] = float32(v) / 65535
	}
}

func fromFloatTo16(in []float32, out []uint16) {
	for i := range out {
		out[i] = quickSaturateWord(float64(in[i]) * 65535)
	}
}
