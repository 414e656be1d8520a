package pipeline

import (
	"fmt"

	"github.com/askiada/go-lut/pkg/curve"
	"github.com/askiada/go-lut/pkg/namedcolor"
	"github.com/askiada/go-lut/pkg/pipeline/model"
)

const (
	// MaxChannels bounds the channel counts declared when allocating a pipeline.
	MaxChannels = 16
	// MaxStageChannels is the capacity of the scratch buffers, hence the largest channel
	// count of any stage.
	MaxStageChannels = 128

	maxCLutInputs = 8
)

// payload is the typed data of a stage. A nil payload means the stage has none.
type payload interface {
	clone() payload
}

type matrixPayload struct {
	// matrix is rows x cols, row major.
	matrix []float64
	// offset has one entry per row, nil when absent.
	offset []float64
}

func (m *matrixPayload) clone() payload {
	out := &matrixPayload{matrix: append([]float64(nil), m.matrix...)}
	if m.offset != nil {
		out.offset = append([]float64(nil), m.offset...)
	}

	return out
}

type curvesPayload struct {
	curves []curve.ToneCurve
}

// Tone curves are immutable, the handles are shared.
func (c *curvesPayload) clone() payload {
	return &curvesPayload{curves: append([]curve.ToneCurve(nil), c.curves...)}
}

type clutPayload struct {
	gridPoints int
	// strides[d] is the table offset between two neighbours along dimension d.
	strides [maxCLutInputs]int
	table   []float32
}

func (c *clutPayload) clone() payload {
	out := *c
	out.table = append([]float32(nil), c.table...)

	return &out
}

type namedColorPayload struct {
	list   *namedcolor.List
	usePCS bool
}

func (n *namedColorPayload) clone() payload {
	return &namedColorPayload{list: n.list.Clone(), usePCS: n.usePCS}
}

// Stage is one step of a pipeline. Its type selects the evaluation mechanism, while
// implements is the kind it is reported as.
type Stage struct {
	typ            model.StageType
	implements     model.StageType
	inputChannels  int
	outputChannels int
	data           payload
}

func newStage(typ model.StageType, inputChannels, outputChannels int, data payload) *Stage {
	if inputChannels < 1 || inputChannels > MaxStageChannels {
		fatalf(ErrInvalidStage, "%s: %d input channels, must be in 1..%d", typ, inputChannels, MaxStageChannels)
	}
	if outputChannels < 1 || outputChannels > MaxStageChannels {
		fatalf(ErrInvalidStage, "%s: %d output channels, must be in 1..%d", typ, outputChannels, MaxStageChannels)
	}

	return &Stage{
		typ:            typ,
		implements:     typ,
		inputChannels:  inputChannels,
		outputChannels: outputChannels,
		data:           data,
	}
}

// alias records the kind the stage is reported as.
func (s *Stage) alias(implements model.StageType) *Stage {
	s.implements = implements

	return s
}

// NewCurves creates a curve set stage, one curve per channel. A nil curves slice gives
// identity curves.
func NewCurves(channels int, curves []curve.ToneCurve) *Stage {
	if channels < 1 || channels > MaxStageChannels {
		fatalf(ErrInvalidStage, "curve set: %d channels, must be in 1..%d", channels, MaxStageChannels)
	}
	if curves == nil {
		curves = make([]curve.ToneCurve, channels)
		for i := range curves {
			curves[i] = curve.Identity()
		}
	} else {
		if len(curves) != channels {
			fatalf(ErrInvalidStage, "curve set: %d curves for %d channels", len(curves), channels)
		}
		for i, c := range curves {
			if c == nil {
				fatalf(ErrInvalidStage, "curve set: curve %d is nil", i)
			}
		}
		curves = append([]curve.ToneCurve(nil), curves...)
	}

	return newStage(model.CurveSetType, channels, channels, &curvesPayload{curves: curves})
}

// NewMatrix creates a stage computing out = matrix * in + offset. matrix is rows x cols in
// row major order, offset is nil or has rows entries. The stage has cols inputs and rows
// outputs and does not clamp.
func NewMatrix(rows, cols int, matrix, offset []float64) *Stage {
	if len(matrix) != rows*cols {
		fatalf(ErrInvalidStage, "matrix: %d coefficients for %dx%d", len(matrix), rows, cols)
	}
	if offset != nil && len(offset) != rows {
		fatalf(ErrInvalidStage, "matrix: %d offsets for %d rows", len(offset), rows)
	}

	data := &matrixPayload{matrix: append([]float64(nil), matrix...)}
	if offset != nil {
		data.offset = append([]float64(nil), offset...)
	}

	return newStage(model.MatrixType, cols, rows, data)
}

func diagonal3(v float64) []float64 {
	return []float64{
		v, 0, 0,
		0, v, 0,
		0, 0, v,
	}
}

// NewLabV2ToV4 rescales 16 bit Lab from the version 2 encoding (L* 100 at 0xff00) to the
// version 4 one (L* 100 at 0xffff).
func NewLabV2ToV4() *Stage {
	return NewMatrix(3, 3, diagonal3(65535.0/65280.0), nil).alias(model.LabV2toV4Type)
}

// NewLabV4ToV2 is the inverse of NewLabV2ToV4.
func NewLabV4ToV2() *Stage {
	return NewMatrix(3, 3, diagonal3(65280.0/65535.0), nil).alias(model.LabV4toV2Type)
}

// NewXYZToLab converts XYZ encoded 0..1 (1.0 is MaxEncodableXYZ) to Lab encoded 0..1
// (L*/100, (a*+128)/255, (b*+128)/255), relative to D50.
func NewXYZToLab() *Stage {
	return newStage(model.XYZ2LabType, 3, 3, nil)
}

// NewLabToXYZ is the inverse of NewXYZToLab.
func NewLabToXYZ() *Stage {
	return newStage(model.Lab2XYZType, 3, 3, nil)
}

// NewClipNegatives replaces negative values by zero on every channel.
func NewClipNegatives(channels int) *Stage {
	return newStage(model.ClipNegativesType, channels, channels, nil)
}

// NewNormalizeFromLabFloat maps Lab in its natural range to 0..1:
//
//	L*:  0..100      => L* / 100
//	ab*: -128..+127  => (ab* + 128) / 255
func NewNormalizeFromLabFloat() *Stage {
	a := []float64{
		1.0 / 100, 0, 0,
		0, 1.0 / 255, 0,
		0, 0, 1.0 / 255,
	}
	o := []float64{0, 128.0 / 255, 128.0 / 255}

	return NewMatrix(3, 3, a, o).alias(model.Lab2FloatPCSType)
}

// NewNormalizeToLabFloat is the inverse of NewNormalizeFromLabFloat.
func NewNormalizeToLabFloat() *Stage {
	a := []float64{
		100, 0, 0,
		0, 255, 0,
		0, 0, 255,
	}
	o := []float64{0, -128, -128}

	return NewMatrix(3, 3, a, o).alias(model.FloatPCS2LabType)
}

// NewNormalizeFromXYZFloat maps XYZ to the floating point PCS range.
func NewNormalizeFromXYZFloat() *Stage {
	return NewMatrix(3, 3, diagonal3(32768.0/65535.0), nil).alias(model.XYZ2FloatPCSType)
}

// NewNormalizeToXYZFloat is the inverse of NewNormalizeFromXYZFloat.
func NewNormalizeToXYZFloat() *Stage {
	return NewMatrix(3, 3, diagonal3(65535.0/32768.0), nil).alias(model.FloatPCS2XYZType)
}

// NewIdentity copies its input.
func NewIdentity(channels int) *Stage {
	return newStage(model.IdentityType, channels, channels, nil)
}

// NewIdentityCurves is a set of identity curves reported as an identity.
func NewIdentityCurves(channels int) *Stage {
	return NewCurves(channels, nil).alias(model.IdentityType)
}

// NewCLut creates a color lookup table stage over a uniform grid of gridPoints per input
// dimension. table holds outputs values per node, the first dimension varying slowest,
// values normalised to 0..1. Input is clamped to 0..1 and interpolated linearly along
// every dimension.
func NewCLut(gridPoints, inputs, outputs int, table []float32) *Stage {
	if gridPoints < 2 {
		fatalf(ErrInvalidStage, "clut: %d grid points, need at least 2", gridPoints)
	}
	if inputs < 1 || inputs > maxCLutInputs {
		fatalf(ErrInvalidStage, "clut: %d inputs, must be in 1..%d", inputs, maxCLutInputs)
	}

	data := &clutPayload{gridPoints: gridPoints}
	stride := outputs
	for d := inputs - 1; d >= 0; d-- {
		data.strides[d] = stride
		stride *= gridPoints
	}
	if len(table) != stride {
		fatalf(ErrInvalidStage, "clut: %d table entries, want %d", len(table), stride)
	}
	data.table = append([]float32(nil), table...)

	return newStage(model.CLutType, inputs, outputs, data)
}

// NewNamedColor creates a stage reading the color whose index is encoded in its single
// input (index / 65535). It outputs the PCS value of the color when usePCS is set and its
// device colorants otherwise. Indexes out of the list give zeros.
func NewNamedColor(list *namedcolor.List, usePCS bool) *Stage {
	if list == nil {
		fatalf(ErrInvalidStage, "named color: nil list")
	}
	outputs := 3
	if !usePCS {
		outputs = list.Colorants()
	}

	return newStage(model.NamedColorType, 1, outputs, &namedColorPayload{list: list.Clone(), usePCS: usePCS})
}

// Type returns the mechanism evaluating the stage.
func (s *Stage) Type() model.StageType { return s.typ }

// Implements returns the kind the stage is reported as.
func (s *Stage) Implements() model.StageType { return s.implements }

func (s *Stage) InputChannels() int  { return s.inputChannels }
func (s *Stage) OutputChannels() int { return s.outputChannels }

// Info describes the stage at position index of a chain.
func (s *Stage) Info(index int) model.StageInfo {
	return model.StageInfo{
		Index:          index,
		Type:           s.typ,
		Implements:     s.implements,
		InputChannels:  s.inputChannels,
		OutputChannels: s.outputChannels,
	}
}

// Clone returns a deep copy.
func (s *Stage) Clone() *Stage {
	out := *s
	if s.data != nil {
		out.data = s.data.clone()
	}

	return &out
}

func (s *Stage) String() string {
	return fmt.Sprintf("Stage{type: %s, impl: %s, channels: %d -> %d}",
		s.typ.Signature(), s.implements.Signature(), s.inputChannels, s.outputChannels)
}
