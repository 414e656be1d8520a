// Package namedcolor holds named color tables, e.g. spot colors of a printing system, each
// entry carrying a PCS value and its device colorants.
package namedcolor

import (
	"strings"

	"github.com/pkg/errors"
)

// MaxColorants bounds the number of device colorants per entry.
const MaxColorants = 16

var (
	ErrTooManyColorants = errors.New("too many colorants")
	ErrColorantCount    = errors.New("colorant count mismatch")
	ErrEmptyName        = errors.New("color name must be set")
)

// Color is one entry of a list. PCS and colorant values are 16 bit encoded.
type Color struct {
	Name     string
	PCS      [3]uint16
	Colorant []uint16
}

// List is an ordered named color table.
type List struct {
	prefix, suffix string
	colorants      int
	colors         []Color
}

// New creates an empty list whose entries carry the given number of colorants.
func New(colorants int, prefix, suffix string) (*List, error) {
	if colorants < 0 || colorants > MaxColorants {
		return nil, errors.Wrapf(ErrTooManyColorants, "got %d, max %d", colorants, MaxColorants)
	}

	return &List{colorants: colorants, prefix: prefix, suffix: suffix}, nil
}

// Append adds a color. Missing colorants are zero; extra ones are rejected.
func (l *List) Append(name string, pcs [3]uint16, colorant []uint16) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(colorant) > l.colorants {
		return errors.Wrapf(ErrColorantCount, "%s: got %d, list has %d", name, len(colorant), l.colorants)
	}

	c := Color{Name: name, PCS: pcs, Colorant: make([]uint16, l.colorants)}
	copy(c.Colorant, colorant)
	l.colors = append(l.colors, c)

	return nil
}

// Len returns the number of colors.
func (l *List) Len() int {
	return len(l.colors)
}

// Colorants returns the number of device colorants per entry.
func (l *List) Colorants() int {
	return l.colorants
}

// Prefix and Suffix are the affixes shared by every name of the list.
func (l *List) Prefix() string { return l.prefix }
func (l *List) Suffix() string { return l.suffix }

// Info returns the entry at index i.
func (l *List) Info(i int) (Color, bool) {
	if i < 0 || i >= len(l.colors) {
		return Color{}, false
	}

	return l.colors[i], true
}

// Find returns the index of the entry called name. The match ignores case and accepts the
// name with or without the list affixes.
func (l *List) Find(name string) (int, bool) {
	name = strings.TrimSuffix(strings.TrimPrefix(name, l.prefix), l.suffix)
	for i, c := range l.colors {
		if strings.EqualFold(c.Name, name) {
			return i, true
		}
	}

	return -1, false
}

// Clone returns a deep copy.
func (l *List) Clone() *List {
	out := &List{prefix: l.prefix, suffix: l.suffix, colorants: l.colorants, colors: make([]Color, len(l.colors))}
	for i, c := range l.colors {
		out.colors[i] = Color{Name: c.Name, PCS: c.PCS, Colorant: append([]uint16(nil), c.Colorant...)}
	}

	return out
}
