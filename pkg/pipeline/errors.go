package pipeline

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Fatal errors. They are never returned: the pipeline panics with an error wrapping one of
// them because they can only be caused by misuse of the construction API.
var (
	ErrTooManyChannels = errors.New("too many channels")
	ErrChannelMismatch = errors.New("adjacent stages channel mismatch")
	ErrInvalidStage    = errors.New("invalid stage")
	ErrPayloadMismatch = errors.New("stage payload does not match its type")
)

// Batch errors.
var (
	ErrBatchLayout      = errors.New("buffer does not hold whole samples")
	ErrNoInputChannels  = errors.New("pipeline has no input channels")
	ErrBatchConcurrency = errors.New("concurrency must be greater than 0")
)

func fatal(err error) {
	Logger().Error("pipeline: fatal", slog.String("error", err.Error()))
	panic(err)
}

func fatalf(sentinel error, format string, args ...interface{}) {
	fatal(errors.Wrapf(sentinel, format, args...))
}
