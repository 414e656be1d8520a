package namedcolor_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-lut/pkg/namedcolor"
)

func newList(t *testing.T) *namedcolor.List {
	t.Helper()

	l, err := namedcolor.New(2, "PANTONE ", " C")
	require.NoError(t, err)
	require.NoError(t, l.Append("Red 032", [3]uint16{0x8000, 0xe000, 0xb000}, []uint16{0xffff, 0x1000}))
	require.NoError(t, l.Append("Blue 072", [3]uint16{0x3000, 0x9000, 0x1000}, []uint16{0x2000}))

	return l
}

func TestNewTooManyColorants(t *testing.T) {
	t.Parallel()

	_, err := namedcolor.New(namedcolor.MaxColorants+1, "", "")
	assert.True(t, errors.Is(err, namedcolor.ErrTooManyColorants))
}

func TestAppend(t *testing.T) {
	t.Parallel()

	l := newList(t)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 2, l.Colorants())
	assert.Equal(t, "PANTONE ", l.Prefix())
	assert.Equal(t, " C", l.Suffix())

	blue, ok := l.Info(1)
	require.True(t, ok)
	assert.Equal(t, []uint16{0x2000, 0}, blue.Colorant)

	err := l.Append("Green", [3]uint16{}, []uint16{1, 2, 3})
	assert.True(t, errors.Is(err, namedcolor.ErrColorantCount))
	assert.ErrorIs(t, l.Append("", [3]uint16{}, nil), namedcolor.ErrEmptyName)

	_, ok = l.Info(2)
	assert.False(t, ok)
	_, ok = l.Info(-1)
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	t.Parallel()

	l := newList(t)

	tcs := map[string]struct {
		name  string
		index int
		found bool
	}{
		"exact":        {name: "Red 032", index: 0, found: true},
		"case":         {name: "blue 072", index: 1, found: true},
		"with affixes": {name: "PANTONE Blue 072 C", index: 1, found: true},
		"missing":      {name: "Green", index: -1, found: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			idx, ok := l.Find(tc.name)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.index, idx)
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	l := newList(t)
	c := l.Clone()
	require.NoError(t, l.Append("Green", [3]uint16{}, nil))

	assert.Equal(t, 2, c.Len())
	red, _ := c.Info(0)
	orig, _ := l.Info(0)
	assert.Equal(t, orig, red)
	red.Colorant[0] = 0
	orig, _ = l.Info(0)
	assert.Equal(t, uint16(0xffff), orig.Colorant[0])
}
