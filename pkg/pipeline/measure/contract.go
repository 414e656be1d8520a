package measure

import "time"

// Measure holds one metric per measured pipeline.
type Measure interface {
	AddMetric(name string, concurrent int) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates the durations of the chunks of batch evaluations.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	Count() int64
	Concurrent() int
	SetTotalDuration(totalDuration time.Duration)
	GetTotalDuration() time.Duration
}
