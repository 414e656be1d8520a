package pipeline_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePanicsWith runs fn and checks it panics with an error wrapping sentinel.
func requirePanicsWith(t *testing.T, sentinel error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, sentinel), "got %v, want %v", err, sentinel)
	}()

	fn()
}

// grid returns n evenly spaced values over 0..1, both ends included.
func grid(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) / float32(n-1)
	}

	return out
}
