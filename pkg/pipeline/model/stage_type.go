package model

import "strings"

// StageType identifies a stage. Values are the 4 byte signatures used by ICC multi process
// elements, extended with the custom signatures used for internal conversions.
type StageType uint32

const (
	CurveSetType StageType = 0x63767374 // 'cvst'
	MatrixType   StageType = 0x6D617466 // 'matf'
	CLutType     StageType = 0x636C7574 // 'clut'

	BAcsType StageType = 0x62414353 // 'bACS'
	EAcsType StageType = 0x65414353 // 'eACS'

	// Not in the ICC specification.
	XYZ2LabType    StageType = 0x6C327820 // 'l2x '
	Lab2XYZType    StageType = 0x78326C20 // 'x2l '
	NamedColorType StageType = 0x6E636C20 // 'ncl '
	LabV2toV4Type  StageType = 0x32203420 // '2 4 '
	LabV4toV2Type  StageType = 0x34203220 // '4 2 '

	IdentityType StageType = 0x69646E20 // 'idn '

	Lab2FloatPCSType  StageType = 0x64326C20 // 'd2l '
	FloatPCS2LabType  StageType = 0x6C326420 // 'l2d '
	XYZ2FloatPCSType  StageType = 0x64327820 // 'd2x '
	FloatPCS2XYZType  StageType = 0x78326420 // 'x2d '
	ClipNegativesType StageType = 0x636c7020 // 'clp '
)

var stageTypeNames = map[StageType]string{
	CurveSetType:      "curve set",
	MatrixType:        "matrix",
	CLutType:          "clut",
	BAcsType:          "begin acs",
	EAcsType:          "end acs",
	XYZ2LabType:       "xyz to lab",
	Lab2XYZType:       "lab to xyz",
	NamedColorType:    "named color",
	LabV2toV4Type:     "lab v2 to v4",
	LabV4toV2Type:     "lab v4 to v2",
	IdentityType:      "identity",
	Lab2FloatPCSType:  "lab to float pcs",
	FloatPCS2LabType:  "float pcs to lab",
	XYZ2FloatPCSType:  "xyz to float pcs",
	FloatPCS2XYZType:  "float pcs to xyz",
	ClipNegativesType: "clip negatives",
}

// Signature returns the 4 character signature, e.g. "matf".
func (t StageType) Signature() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// String returns a human readable name. Unknown types fall back to their signature.
func (t StageType) String() string {
	if name, ok := stageTypeNames[t]; ok {
		return name
	}

	return strings.TrimSpace(t.Signature())
}
