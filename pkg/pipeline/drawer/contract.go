// Package drawer renders pipelines as Graphviz graphs. It only consumes the StageInfo
// introspection records, so aliased stages are drawn under the kind they implement.
package drawer

import (
	"io"

	"github.com/askiada/go-lut/pkg/pipeline/measure"
	"github.com/askiada/go-lut/pkg/pipeline/model"
)

// Drawer is an interface that defines the methods for drawing pipelines.
type Drawer interface {
	// AddPipeline adds the chain of stages of a pipeline.
	AddPipeline(name string, stages []model.StageInfo) error
	// AddMeasure labels every drawn pipeline with its batch timings.
	AddMeasure(measure measure.Measure) error
	// Render writes the graph to wrt.
	Render(wrt io.Writer) error
	// Draw creates a file with the graph.
	Draw() error
}
