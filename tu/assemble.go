package tu

import (
	"fmt"

	"github.com/rhartert/sparsesets"
)

// RawArrays holds the content of a dataset's files before it is split into
// graphs. A nil array means that the corresponding file does not exist.
type RawArrays struct {
	Edges          *Array[int]
	GraphIndicator *Array[int]
	NodeLabels     *Array[int]
	EdgeLabels     *Array[int]
	NodeAttributes *Array[float32]
	GraphLabels    *Array[int]
}

// Assemble splits the dataset-wide arrays into one Graph per graph id. Node
// and graph ids are converted from 1-based to 0-based, edges are renumbered to
// be local to their graph, and labels are shifted so that the smallest label
// of the dataset is 0.
//
// Assemble returns ErrNoGraphIndicator if raw has no graph indicator and a
// *FormatError if the arrays are inconsistent with each other.
func Assemble(name string, raw RawArrays) (*Dataset, error) {
	if raw.GraphIndicator == nil {
		return nil, fmt.Errorf("dataset %s: %w", name, ErrNoGraphIndicator)
	}

	a := &assembler{name: name, raw: raw}
	if err := a.splitNodes(); err != nil {
		return nil, err
	}
	if err := a.splitEdges(); err != nil {
		return nil, err
	}
	if err := a.addNodeLabels(); err != nil {
		return nil, err
	}
	if err := a.addNodeAttributes(); err != nil {
		return nil, err
	}
	if err := a.addEdgeLabels(); err != nil {
		return nil, err
	}
	if err := a.addGraphLabels(); err != nil {
		return nil, err
	}

	return a.ds, nil
}

// assembler holds the intermediate state of Assemble. Each graph of ds is
// only ever written through its own index so that the records can be frozen
// as is once all the arrays have been consumed.
type assembler struct {
	name string
	raw  RawArrays
	ds   *Dataset

	nodeGraph []int // graph of each global node
	edgeGraph []int // graph of each global edge
	start     []int // global index of the first node of each graph
}

func (a *assembler) formatError(f Field, format string, args ...any) error {
	return &FormatError{
		File: f.FileName(a.name),
		Msg:  fmt.Sprintf(format, args...),
	}
}

// checkShape verifies that arr has the expected number of rows and, if it is
// not empty, the expected width.
func checkShape[T any](a *assembler, f Field, arr *Array[T], rows int, width int) error {
	if arr.Rows != rows {
		return a.formatError(f, "expected %d rows, got %d", rows, arr.Rows)
	}
	if arr.Rows > 0 && width > 0 && arr.Width != width {
		return a.formatError(f, "expected %d values per line, got %d", width, arr.Width)
	}
	return nil
}

func (a *assembler) splitNodes() error {
	ind := a.raw.GraphIndicator
	nNodes := ind.Rows
	if nNodes > 0 && ind.Width != 1 {
		return a.formatError(FieldGraphIndicator, "expected 1 value per line, got %d", ind.Width)
	}

	nGraphs := 0
	a.nodeGraph = make([]int, nNodes)
	for n := 0; n < nNodes; n++ {
		// Graph ids are bounded by the number of nodes.
		id := ind.At(n)
		if id < 1 || nNodes < id {
			return a.formatError(FieldGraphIndicator, "node %d: graph id %d out of range [1, %d]", n+1, id, nNodes)
		}
		g := id - 1
		a.nodeGraph[n] = g
		if g >= nGraphs {
			nGraphs = g + 1
		}
	}

	// The first occurrence of a graph id in the indicator is the global index
	// of that graph's first node.
	a.start = make([]int, nGraphs)
	seen := sparsesets.New(nGraphs)
	counts := make([]int, nGraphs)
	for n, g := range a.nodeGraph {
		if !seen.Contains(g) {
			seen.Insert(g)
			a.start[g] = n
		} else if a.nodeGraph[n-1] != g {
			return a.formatError(FieldGraphIndicator, "node %d: nodes of graph %d are not contiguous", n+1, g+1)
		}
		counts[g]++
	}

	a.ds = &Dataset{
		Name:   a.name,
		Graphs: make([]Graph, nGraphs),
	}
	for g := range a.ds.Graphs {
		a.ds.Graphs[g].NumNodes = counts[g]
	}
	return nil
}

func (a *assembler) splitEdges() error {
	edges := a.raw.Edges
	if edges == nil {
		for g := range a.ds.Graphs {
			a.ds.Graphs[g].EdgeIndex = EdgeIndex{[]int{}, []int{}}
		}
		return nil
	}
	if edges.Rows > 0 && edges.Width != 2 {
		return a.formatError(FieldEdges, "expected 2 values per line, got %d", edges.Width)
	}

	nNodes := len(a.nodeGraph)
	counts := make([]int, len(a.ds.Graphs))
	a.edgeGraph = make([]int, edges.Rows)
	for e := 0; e < edges.Rows; e++ {
		row := edges.Row(e)
		u, v := row[0]-1, row[1]-1
		if u < 0 || nNodes <= u || v < 0 || nNodes <= v {
			return a.formatError(FieldEdges, "edge %d: node (%d, %d) out of range [1, %d]", e+1, u+1, v+1, nNodes)
		}
		g := a.nodeGraph[u]
		if gv := a.nodeGraph[v]; gv != g {
			return a.formatError(FieldEdges, "edge %d: nodes %d and %d belong to different graphs (%d and %d)", e+1, u+1, v+1, g+1, gv+1)
		}
		a.edgeGraph[e] = g
		counts[g]++
	}

	for g := range a.ds.Graphs {
		a.ds.Graphs[g].EdgeIndex = EdgeIndex{
			make([]int, 0, counts[g]),
			make([]int, 0, counts[g]),
		}
	}

	// Nodes of a graph are contiguous in the indicator, hence local indices
	// fall in [0, NumNodes).
	for e, g := range a.edgeGraph {
		row := edges.Row(e)
		graph := &a.ds.Graphs[g]
		u := row[0] - 1 - a.start[g]
		v := row[1] - 1 - a.start[g]
		graph.EdgeIndex[0] = append(graph.EdgeIndex[0], u)
		graph.EdgeIndex[1] = append(graph.EdgeIndex[1], v)
	}
	return nil
}

func (a *assembler) addNodeLabels() error {
	labels := a.raw.NodeLabels
	if labels == nil {
		return nil
	}
	if err := checkShape(a, FieldNodeLabels, labels, len(a.nodeGraph), 1); err != nil {
		return err
	}

	for g := range a.ds.Graphs {
		a.ds.Graphs[g].NodeLabels = make([]int, 0, a.ds.Graphs[g].NumNodes)
	}
	offset := minValue(labels.Data)
	for n, g := range a.nodeGraph {
		graph := &a.ds.Graphs[g]
		graph.NodeLabels = append(graph.NodeLabels, labels.At(n)-offset)
	}

	a.ds.Features |= NodeLabels
	return nil
}

func (a *assembler) addNodeAttributes() error {
	attrs := a.raw.NodeAttributes
	if attrs == nil {
		return nil
	}
	if err := checkShape(a, FieldNodeAttributes, attrs, len(a.nodeGraph), 0); err != nil {
		return err
	}

	dim := attrs.Width
	for g := range a.ds.Graphs {
		n := a.ds.Graphs[g].NumNodes
		a.ds.Graphs[g].NodeAttributes = &Array[float32]{
			Width: dim,
			Data:  make([]float32, 0, n*dim),
		}
	}
	for n, g := range a.nodeGraph {
		na := a.ds.Graphs[g].NodeAttributes
		na.Data = append(na.Data, attrs.Row(n)...)
		na.Rows++
	}

	a.ds.Features |= NodeAttributes
	a.ds.NodeAttributeDim = dim
	return nil
}

func (a *assembler) addEdgeLabels() error {
	labels := a.raw.EdgeLabels
	if labels == nil {
		return nil
	}
	if err := checkShape(a, FieldEdgeLabels, labels, len(a.edgeGraph), 1); err != nil {
		return err
	}

	for g := range a.ds.Graphs {
		a.ds.Graphs[g].EdgeLabels = make([]int, 0, a.ds.Graphs[g].NumEdges())
	}
	offset := minValue(labels.Data)
	for e, g := range a.edgeGraph {
		graph := &a.ds.Graphs[g]
		graph.EdgeLabels = append(graph.EdgeLabels, labels.At(e)-offset)
	}

	a.ds.Features |= EdgeLabels
	return nil
}

func (a *assembler) addGraphLabels() error {
	labels := a.raw.GraphLabels
	if labels == nil {
		return nil
	}
	if err := checkShape(a, FieldGraphLabels, labels, len(a.ds.Graphs), 1); err != nil {
		return err
	}

	offset := minValue(labels.Data)
	for g := range a.ds.Graphs {
		a.ds.Graphs[g].GraphLabel = labels.At(g) - offset
	}

	a.ds.Features |= GraphLabels
	return nil
}

// minValue returns the smallest value of s, or 0 if s is empty.
func minValue(s []int) int {
	if len(s) == 0 {
		return 0
	}
	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
