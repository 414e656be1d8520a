package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-lut/pkg/pipeline/model"
)

func TestStageTypeSignature(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		typ       model.StageType
		signature string
		name      string
	}{
		"matrix":   {typ: model.MatrixType, signature: "matf", name: "matrix"},
		"curves":   {typ: model.CurveSetType, signature: "cvst", name: "curve set"},
		"xyz2lab":  {typ: model.XYZ2LabType, signature: "l2x ", name: "xyz to lab"},
		"lab v2v4": {typ: model.LabV2toV4Type, signature: "2 4 ", name: "lab v2 to v4"},
		"clipper":  {typ: model.ClipNegativesType, signature: "clp ", name: "clip negatives"},
		"unknown":  {typ: model.StageType(0x666f6f20), signature: "foo ", name: "foo"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.signature, tc.typ.Signature())
			assert.Equal(t, tc.name, tc.typ.String())
		})
	}
}

func TestStageInfoString(t *testing.T) {
	t.Parallel()

	plain := model.StageInfo{Type: model.MatrixType, Implements: model.MatrixType, InputChannels: 3, OutputChannels: 3}
	assert.False(t, plain.Aliased())
	assert.Equal(t, "matrix 3 -> 3", plain.String())

	alias := model.StageInfo{Type: model.MatrixType, Implements: model.LabV2toV4Type, InputChannels: 3, OutputChannels: 3}
	assert.True(t, alias.Aliased())
	assert.Equal(t, "lab v2 to v4 [matrix] 3 -> 3", alias.String())
}
