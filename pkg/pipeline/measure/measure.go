// Package measure records how long batch evaluations of pipelines take.
package measure

import (
	"sync"
)

type DefaultMeasure struct {
	mu    sync.Mutex
	Steps map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Steps: make(map[string]Metric),
	}
}

// AddMetric returns the metric called name, creating it if needed.
func (m *DefaultMeasure) AddMetric(name string, concurrent int) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.Steps[name]; ok {
		return mt
	}

	mt := &DefaultMetric{
		mu:         &sync.Mutex{},
		concurrent: concurrent,
	}
	m.Steps[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Steps[name]
}

// AllMetrics returns a copy of the metrics by name.
func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make(map[string]Metric, len(m.Steps))
	for name, mt := range m.Steps {
		all[name] = mt
	}

	return all
}

var _ Measure = (*DefaultMeasure)(nil)
