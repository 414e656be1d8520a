package pipeline

import "github.com/askiada/go-lut/pkg/pipeline/measure"

type PipelineOption func(p *Pipeline)

// PipelineName names the pipeline in logs, measures and drawings.
func PipelineName(name string) PipelineOption {
	return func(p *Pipeline) {
		p.name = name
	}
}

type BatchOption func(b *batch)

// BatchConcurrency sets how many goroutines evaluate a batch. Defaults to 1.
func BatchConcurrency(concurrent int) BatchOption {
	return func(b *batch) {
		b.concurrent = concurrent
	}
}

// BatchMeasure records chunk and total durations in m under the pipeline name.
func BatchMeasure(m measure.Measure) BatchOption {
	return func(b *batch) {
		b.measure = m
	}
}
