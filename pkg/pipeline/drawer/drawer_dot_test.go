package drawer_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-lut/pkg/pipeline"
	"github.com/askiada/go-lut/pkg/pipeline/drawer"
	"github.com/askiada/go-lut/pkg/pipeline/measure"
)

func labPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()

	pipe := pipeline.New(3, 3, pipeline.PipelineName("xyz2lab"))
	pipe.Append(pipeline.NewClipNegatives(3))
	pipe.Append(pipeline.NewXYZToLab())
	pipe.Append(pipeline.NewLabV4ToV2())

	return pipe
}

func TestRender(t *testing.T) {
	t.Parallel()

	pipe := labPipeline(t)
	d := drawer.NewDOTDrawer("unused.dot")
	require.NoError(t, d.AddPipeline(pipe.Name(), pipe.Stages()))

	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "strict digraph")
	assert.Contains(t, out, `rankdir="LR"`)
	assert.Contains(t, out, `"xyz2lab: start" -> "xyz2lab: 0 clip negatives"`)
	assert.Contains(t, out, `"xyz2lab: 0 clip negatives" -> "xyz2lab: 1 xyz to lab"`)
	assert.Contains(t, out, `"xyz2lab: 2 lab v4 to v2 [matrix]" -> "xyz2lab: end"`)
	assert.Contains(t, out, `label="3 ch"`)
	assert.Contains(t, strings.ToLower(out), `fillcolor="#add8e6"`)
}

func TestAddPipelineTwice(t *testing.T) {
	t.Parallel()

	pipe := labPipeline(t)
	d := drawer.NewDOTDrawer("unused.dot")
	require.NoError(t, d.AddPipeline(pipe.Name(), pipe.Stages()))

	err := d.AddPipeline(pipe.Name(), pipe.Stages())
	assert.True(t, errors.Is(err, drawer.ErrPipelineExists))
}

func TestAddMeasureAndDraw(t *testing.T) {
	t.Parallel()

	pipe := labPipeline(t)
	msr := measure.NewDefaultMeasure()

	src := make([]float32, 3*64)
	dst := make([]float32, 3*64)
	err := pipe.EvalFloatBatch(context.Background(), src, dst,
		pipeline.BatchConcurrency(4), pipeline.BatchMeasure(msr))
	require.NoError(t, err)

	fileName := filepath.Join(t.TempDir(), "pipeline.dot")
	d := drawer.NewDOTDrawer(fileName)
	require.NoError(t, d.AddPipeline(pipe.Name(), pipe.Stages()))
	require.NoError(t, d.AddMeasure(msr))
	require.NoError(t, d.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), `<xyz2lab: end <BR /> <FONT POINT-SIZE="12">chunks: 4`)
}

func TestEmptyPipeline(t *testing.T) {
	t.Parallel()

	pipe := pipeline.New(4, 4, pipeline.PipelineName("empty"))
	d := drawer.NewDOTDrawer("unused.dot")
	require.NoError(t, d.AddPipeline(pipe.Name(), pipe.Stages()))

	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))
	assert.Contains(t, buf.String(), `"empty: start" -> "empty: end"`)
	assert.Contains(t, buf.String(), `label="0 ch"`)
}
