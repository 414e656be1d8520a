package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-lut/pkg/pipeline/measure"
	"github.com/askiada/go-lut/pkg/pipeline/model"
)

var ErrPipelineExists = errors.New("pipeline already drawn")

// DOTDrawer is a drawer that creates a DOT file with the pipeline graphs.
type DOTDrawer struct {
	graph     graph.Graph[string, string]
	pipelines map[string]struct{}
	fileName  string
}

// NewDOTDrawer creates a new DOT drawer writing to fileName.
func NewDOTDrawer(fileName string) *DOTDrawer {
	return &DOTDrawer{
		fileName:  fileName,
		graph:     graph.New(graph.StringHash, graph.Directed()),
		pipelines: make(map[string]struct{}),
	}
}

func startVertex(name string) string { return name + ": start" }
func endVertex(name string) string   { return name + ": end" }

func stageVertex(name string, info model.StageInfo) string {
	if info.Aliased() {
		return fmt.Sprintf("%s: %d %s [%s]", name, info.Index, info.Implements, info.Type)
	}

	return fmt.Sprintf("%s: %d %s", name, info.Index, info.Type)
}

// stageRGB gives every evaluation mechanism its own fill colour.
var stageRGB = map[model.StageType][3]uint8{
	model.MatrixType:        {173, 216, 230},
	model.CurveSetType:      {144, 238, 144},
	model.CLutType:          {255, 218, 185},
	model.NamedColorType:    {221, 160, 221},
	model.XYZ2LabType:       {255, 250, 205},
	model.Lab2XYZType:       {255, 250, 205},
	model.ClipNegativesType: {240, 128, 128},
	model.IdentityType:      {220, 220, 220},
}

func fillColor(typ model.StageType) (string, error) {
	rgb, ok := stageRGB[typ]
	if !ok {
		rgb = [3]uint8{255, 255, 255}
	}

	c, err := colors.RGB(rgb[0], rgb[1], rgb[2]) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return c.ToHEX().String(), nil
}

// AddPipeline adds a start vertex, one vertex per stage and an end vertex. Edges are
// labelled with the number of channels flowing through them.
func (d *DOTDrawer) AddPipeline(name string, stages []model.StageInfo) error {
	if _, ok := d.pipelines[name]; ok {
		return errors.Wrap(ErrPipelineExists, name)
	}

	prev := startVertex(name)
	err := d.graph.AddVertex(prev, graph.VertexAttribute("shape", "oval"))
	if err != nil {
		return errors.Wrap(err, "unable to add start vertex")
	}

	for _, info := range stages {
		fill, err := fillColor(info.Type)
		if err != nil {
			return err
		}

		vertex := stageVertex(name, info)
		err = d.graph.AddVertex(vertex,
			graph.VertexAttribute("shape", "box"),
			graph.VertexAttribute("style", "filled"),
			graph.VertexAttribute("fillcolor", fill),
		)
		if err != nil {
			return errors.Wrapf(err, "unable to add vertex %s", vertex)
		}

		err = d.addLink(prev, vertex, info.InputChannels)
		if err != nil {
			return err
		}
		prev = vertex
	}

	end := endVertex(name)
	err = d.graph.AddVertex(end, graph.VertexAttribute("shape", "oval"))
	if err != nil {
		return errors.Wrap(err, "unable to add end vertex")
	}

	channels := 0
	if len(stages) > 0 {
		channels = stages[len(stages)-1].OutputChannels
	}
	err = d.addLink(prev, end, channels)
	if err != nil {
		return err
	}

	d.pipelines[name] = struct{}{}

	return nil
}

func (d *DOTDrawer) addLink(parentName, childrenName string, channels int) error {
	err := d.graph.AddEdge(parentName, childrenName, graph.EdgeAttribute("label", fmt.Sprintf("%d ch", channels)))
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childrenName)
	}

	return nil
}

// AddMeasure adds the average chunk duration and the total batch duration to the end
// vertex of every drawn pipeline that has a metric.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	names := make([]string, 0, len(d.pipelines))
	for name := range d.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mt := msr.GetMetric(name)
		if mt == nil {
			continue
		}

		_, properties, err := d.graph.VertexWithProperties(endVertex(name))
		if err != nil {
			return errors.Wrap(err, "unable to get end vertex properties")
		}

		xlabel := fmt.Sprintf("chunks: %d", mt.Count())
		if avg := mt.AVGDuration(); avg != 0 {
			xlabel += ", avg: " + avg.String()
		}
		if total := mt.GetTotalDuration(); total > 0 {
			xlabel += ", total: " + total.String()
		}
		properties.Attributes["xlabel"] = xlabel
	}

	return nil
}

// Render writes the DOT description of the graph.
func (d *DOTDrawer) Render(wrt io.Writer) error {
	return dot(d.graph, wrt, GraphAttribute("rankdir", "LR"))
}

// Draw creates the DOT file.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	err = d.Render(file)
	if err != nil {
		return errors.Wrapf(err, "unable to write dot file %s", d.fileName)
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the [dot] function.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

// generateDOT emits statements sorted by vertex so the output is stable.
func generateDOT[K comparable, T any](gra graph.Graph[K, T], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]K, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}
	sort.Slice(vertices, func(i, j int) bool {
		return fmt.Sprint(vertices[i]) < fmt.Sprint(vertices[j])
	})

	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))

		for k, v := range sourceProperties.Attributes {
			if k == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, v)

				continue
			}
			sourceAttributes[k] = v
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency, edge := range adjacencyMap[vertex] {
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
