package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-lut/pkg/pipeline/measure"
)

// ctxCheckInterval is how many samples a goroutine evaluates between context checks.
const ctxCheckInterval = 256

type batch struct {
	concurrent int
	measure    measure.Measure
}

// EvalU16Batch evaluates the packed samples of src, InputChannels values each, into dst,
// OutputChannels values each.
func (p *Pipeline) EvalU16Batch(ctx context.Context, src, dst []uint16, opts ...BatchOption) error {
	samples, err := p.batchSamples(len(src), len(dst))
	if err != nil {
		return err
	}

	in, out := p.inputChannels, p.outputChannels

	return p.runBatch(ctx, samples, opts, func(i int) {
		p.EvalU16(src[i*in:(i+1)*in], dst[i*out:(i+1)*out])
	})
}

// EvalFloatBatch is EvalU16Batch for float samples.
func (p *Pipeline) EvalFloatBatch(ctx context.Context, src, dst []float32, opts ...BatchOption) error {
	samples, err := p.batchSamples(len(src), len(dst))
	if err != nil {
		return err
	}

	in, out := p.inputChannels, p.outputChannels

	return p.runBatch(ctx, samples, opts, func(i int) {
		p.EvalFloat(src[i*in:(i+1)*in], dst[i*out:(i+1)*out])
	})
}

func (p *Pipeline) batchSamples(srcLen, dstLen int) (int, error) {
	if p.inputChannels == 0 {
		return 0, errors.Wrap(ErrNoInputChannels, p.name)
	}
	if srcLen%p.inputChannels != 0 {
		return 0, errors.Wrapf(ErrBatchLayout, "%s: source of %d values, %d channels", p.name, srcLen, p.inputChannels)
	}

	samples := srcLen / p.inputChannels
	if dstLen < samples*p.outputChannels {
		return 0, errors.Wrapf(ErrBatchLayout, "%s: destination of %d values, want %d", p.name, dstLen, samples*p.outputChannels)
	}

	return samples, nil
}

// runBatch splits samples into contiguous chunks, one per goroutine.
func (p *Pipeline) runBatch(ctx context.Context, samples int, opts []BatchOption, evalFn func(i int)) error {
	b := &batch{concurrent: 1}
	for _, opt := range opts {
		opt(b)
	}
	if b.concurrent <= 0 {
		return errors.Wrapf(ErrBatchConcurrency, "got %d", b.concurrent)
	}

	var mt measure.Metric
	if b.measure != nil {
		mt = b.measure.AddMetric(p.name, b.concurrent)
	}

	start := time.Now()
	chunks := min(b.concurrent, samples)
	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(b.concurrent)

	if chunks > 0 {
		chunkSize := (samples + chunks - 1) / chunks
		for goIdx := 0; goIdx < chunks; goIdx++ {
			lo := goIdx * chunkSize
			hi := min(lo+chunkSize, samples)
			if lo >= hi {
				break
			}
			localGoIdx := goIdx
			errGrp.Go(func() error {
				startFn := time.Now()
				for i := lo; i < hi; i++ {
					if (i-lo)%ctxCheckInterval == 0 {
						if err := dCtx.Err(); err != nil {
							return errors.Wrapf(err, "go routine %d:", localGoIdx)
						}
					}
					evalFn(i)
				}
				if mt != nil {
					mt.AddDuration(time.Since(startFn))
				}

				return nil
			})
		}
	}

	err := errGrp.Wait()
	if mt != nil {
		mt.SetTotalDuration(time.Since(start))
	}
	if err != nil {
		return errors.Wrapf(err, "%s: batch", p.name)
	}

	Logger().Info("pipeline: batch evaluated",
		slog.String("name", p.name),
		slog.Int("samples", samples),
		slog.Int("concurrent", b.concurrent),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}
