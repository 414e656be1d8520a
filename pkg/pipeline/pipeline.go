package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/askiada/go-lut/pkg/pipeline/model"
)

const defaultName = "pipeline"

// Pipeline is an ordered chain of stages.
type Pipeline struct {
	name           string
	stages         []*Stage
	inputChannels  int
	outputChannels int
}

// New allocates an empty pipeline. Zero channels is a valid placeholder; counts are
// replaced by the ones of the chain ends once stages are added. It panics if a count is
// negative or not lower than MaxChannels.
func New(inputChannels, outputChannels int, opts ...PipelineOption) *Pipeline {
	if inputChannels < 0 || inputChannels >= MaxChannels || outputChannels < 0 || outputChannels >= MaxChannels {
		fatalf(ErrTooManyChannels, "pipeline: %d -> %d, max %d", inputChannels, outputChannels, MaxChannels-1)
	}

	pipe := &Pipeline{
		name:           defaultName,
		inputChannels:  inputChannels,
		outputChannels: outputChannels,
	}
	for _, opt := range opts {
		opt(pipe)
	}

	Logger().Debug("pipeline: allocated",
		slog.String("name", pipe.name),
		slog.Int("input_channels", inputChannels),
		slog.Int("output_channels", outputChannels))

	return pipe
}

// bless recomputes the channel counts from the chain ends.
func (p *Pipeline) bless() {
	if len(p.stages) == 0 {
		return
	}
	p.inputChannels = p.stages[0].inputChannels
	p.outputChannels = p.stages[len(p.stages)-1].outputChannels
}

func (p *Pipeline) logMutation(op string, s *Stage) {
	Logger().Debug("pipeline: "+op,
		slog.String("name", p.name),
		slog.String("stage", s.implements.String()),
		slog.Int("stages", len(p.stages)),
		slog.Int("input_channels", p.inputChannels),
		slog.Int("output_channels", p.outputChannels))
}

func checkLink(upstream, downstream *Stage) {
	if upstream.outputChannels != downstream.inputChannels {
		fatalf(ErrChannelMismatch, "%s outputs %d channels, %s expects %d",
			upstream.implements, upstream.outputChannels, downstream.implements, downstream.inputChannels)
	}
}

// Prepend inserts stage at the head of the chain. The pipeline owns the stage afterwards.
func (p *Pipeline) Prepend(stage *Stage) {
	if stage == nil {
		fatalf(ErrInvalidStage, "%s: prepend nil stage", p.name)
	}
	if len(p.stages) > 0 {
		checkLink(stage, p.stages[0])
	}

	p.stages = append([]*Stage{stage}, p.stages...)
	p.bless()
	p.logMutation("prepend", stage)
}

// Append inserts stage at the tail of the chain. The pipeline owns the stage afterwards.
func (p *Pipeline) Append(stage *Stage) {
	if stage == nil {
		fatalf(ErrInvalidStage, "%s: append nil stage", p.name)
	}
	if len(p.stages) > 0 {
		checkLink(p.stages[len(p.stages)-1], stage)
	}

	p.stages = append(p.stages, stage)
	p.bless()
	p.logMutation("append", stage)
}

// Concat appends a copy of every stage of other. If both pipelines are empty, p inherits
// the channel counts of other.
func (p *Pipeline) Concat(other *Pipeline) {
	if other == nil {
		fatalf(ErrInvalidStage, "%s: concat nil pipeline", p.name)
	}
	if len(p.stages) == 0 && len(other.stages) == 0 {
		p.inputChannels = other.inputChannels
		p.outputChannels = other.outputChannels
	}
	if len(p.stages) > 0 && len(other.stages) > 0 {
		checkLink(p.stages[len(p.stages)-1], other.stages[0])
	}

	for _, stage := range other.stages {
		p.stages = append(p.stages, stage.Clone())
	}
	p.bless()

	Logger().Debug("pipeline: concat",
		slog.String("name", p.name),
		slog.String("other", other.name),
		slog.Int("stages", len(p.stages)))
}

// Clone returns a deep copy.
func (p *Pipeline) Clone() *Pipeline {
	out := &Pipeline{
		name:           p.name,
		inputChannels:  p.inputChannels,
		outputChannels: p.outputChannels,
		stages:         make([]*Stage, len(p.stages)),
	}
	for i, stage := range p.stages {
		out.stages[i] = stage.Clone()
	}

	return out
}

func (p *Pipeline) Name() string        { return p.name }
func (p *Pipeline) InputChannels() int  { return p.inputChannels }
func (p *Pipeline) OutputChannels() int { return p.outputChannels }

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Stages describes the chain in execution order.
func (p *Pipeline) Stages() []model.StageInfo {
	infos := make([]model.StageInfo, len(p.stages))
	for i, stage := range p.stages {
		infos[i] = stage.Info(i)
	}

	return infos
}

// run feeds storage[0] through the chain and returns the index of the buffer holding the
// result. Stage k reads the buffer written by stage k-1 and writes the other one.
func (p *Pipeline) run(storage *[2][MaxStageChannels]float32) int {
	phase := 0
	for _, stage := range p.stages {
		next := phase ^ 1
		stage.eval(storage[phase][:], storage[next][:])
		phase = next
	}

	return phase
}

// EvalU16 evaluates one sample in the 16 bit domain: input values are decoded from
// 0..65535 to 0..1.0 and the result is rounded and saturated back. OutputChannels values
// are written, fewer if out is shorter.
func (p *Pipeline) EvalU16(in, out []uint16) {
	var storage [2][MaxStageChannels]float32

	if len(in) > MaxStageChannels {
		in = in[:MaxStageChannels]
	}
	from16ToFloat(in, storage[0][:])

	phase := p.run(&storage)

	n := min(p.outputChannels, len(out))
	fromFloatTo16(storage[phase][:n], out[:n])
}

// EvalFloat evaluates one sample. Input beyond MaxStageChannels values is ignored.
// OutputChannels values are written, fewer if out is shorter.
func (p *Pipeline) EvalFloat(in, out []float32) {
	var storage [2][MaxStageChannels]float32

	copy(storage[0][:], in)

	phase := p.run(&storage)

	n := min(p.outputChannels, len(out))
	copy(out[:n], storage[phase][:n])
}

func (p *Pipeline) String() string {
	parts := make([]string, len(p.stages))
	for i, stage := range p.stages {
		parts[i] = stage.String()
	}

	return fmt.Sprintf("Pipeline{name: %s, stages: [%s], channels: %d -> %d}",
		p.name, strings.Join(parts, ", "), p.inputChannels, p.outputChannels)
}
