// Package summary computes descriptive statistics of TU datasets.
package summary

import (
	"github.com/rhartert/sparsesets"
	"github.com/rhartert/tu-datasets/tu"
	"github.com/rhartert/yagh"
)

// GraphSize is the size of a single graph of a dataset.
type GraphSize struct {
	Graph int `yaml:"graph"`
	Nodes int `yaml:"nodes"`
	Edges int `yaml:"edges"`
}

// Summary holds statistics about a dataset. Label counts are 0 when the
// corresponding feature is absent.
type Summary struct {
	Name     string   `yaml:"name"`
	Features []string `yaml:"features"`

	Graphs int `yaml:"graphs"`
	Nodes  int `yaml:"nodes"`
	Edges  int `yaml:"edges"`

	MinNodes     int     `yaml:"min_nodes"`
	MaxNodes     int     `yaml:"max_nodes"`
	AvgNodes     float64 `yaml:"avg_nodes"`
	MinEdges     int     `yaml:"min_edges"`
	MaxEdges     int     `yaml:"max_edges"`
	AvgEdges     float64 `yaml:"avg_edges"`
	MaxOutDegree int     `yaml:"max_out_degree"`
	Isolated     int     `yaml:"isolated_nodes"`

	NodeLabels       int `yaml:"node_labels"`
	EdgeLabels       int `yaml:"edge_labels"`
	GraphClasses     int `yaml:"graph_classes"`
	NodeAttributeDim int `yaml:"node_attribute_dim"`

	// Largest holds the largest graphs by number of nodes, largest first.
	Largest []GraphSize `yaml:"largest"`
}

// Summarize computes the summary of ds. At most topK graphs are listed in
// Summary.Largest.
func Summarize(ds *tu.Dataset, topK int) Summary {
	s := Summary{
		Name:             ds.Name,
		Features:         ds.Features.Names(),
		Graphs:           len(ds.Graphs),
		NodeAttributeDim: ds.NodeAttributeDim,
	}

	for i := range ds.Graphs {
		g := &ds.Graphs[i]
		n, e := g.NumNodes, g.NumEdges()
		s.Nodes += n
		s.Edges += e
		if i == 0 || n < s.MinNodes {
			s.MinNodes = n
		}
		if i == 0 || e < s.MinEdges {
			s.MinEdges = e
		}
		if n > s.MaxNodes {
			s.MaxNodes = n
		}
		if e > s.MaxEdges {
			s.MaxEdges = e
		}

		topo := g.Topology()
		if d := topo.MaxOutDegree(); d > s.MaxOutDegree {
			s.MaxOutDegree = d
		}
		s.Isolated += topo.IsolatedNodes()
	}
	if s.Graphs > 0 {
		s.AvgNodes = float64(s.Nodes) / float64(s.Graphs)
		s.AvgEdges = float64(s.Edges) / float64(s.Graphs)
	}

	if ds.Features.Has(tu.NodeLabels) {
		s.NodeLabels = countLabels(ds, func(g *tu.Graph) []int { return g.NodeLabels })
	}
	if ds.Features.Has(tu.EdgeLabels) {
		s.EdgeLabels = countLabels(ds, func(g *tu.Graph) []int { return g.EdgeLabels })
	}
	if ds.Features.Has(tu.GraphLabels) {
		s.GraphClasses = countLabels(ds, func(g *tu.Graph) []int { return []int{g.GraphLabel} })
	}

	s.Largest = Largest(ds, topK)
	return s
}

// countLabels returns the number of distinct labels returned by labels over
// all the graphs of ds. Labels are assumed to be normalized (i.e. >= 0).
func countLabels(ds *tu.Dataset, labels func(*tu.Graph) []int) int {
	maxLabel := -1
	for i := range ds.Graphs {
		for _, l := range labels(&ds.Graphs[i]) {
			if l > maxLabel {
				maxLabel = l
			}
		}
	}
	if maxLabel < 0 {
		return 0
	}

	set := sparsesets.New(maxLabel + 1)
	for i := range ds.Graphs {
		for _, l := range labels(&ds.Graphs[i]) {
			if !set.Contains(l) {
				set.Insert(l)
			}
		}
	}
	return len(set.Content())
}

// Largest returns the k graphs of ds with the most nodes, largest first. Graphs
// of equal size are ordered by increasing id.
func Largest(ds *tu.Dataset, k int) []GraphSize {
	nGraphs := len(ds.Graphs)
	if k > nGraphs {
		k = nGraphs
	}
	if k <= 0 {
		return []GraphSize{}
	}

	// The heap pops the smallest cost first. Encoding the id in the cost
	// makes the order total, hence independent of the heap's tie-breaking.
	h := yagh.New[int](nGraphs)
	for i := range ds.Graphs {
		h.Put(i, -ds.Graphs[i].NumNodes*nGraphs+i)
	}

	largest := make([]GraphSize, 0, k)
	for len(largest) < k && h.Size() > 0 {
		entry := h.Pop()
		g := &ds.Graphs[entry.Elem]
		largest = append(largest, GraphSize{
			Graph: entry.Elem,
			Nodes: g.NumNodes,
			Edges: g.NumEdges(),
		})
	}
	return largest
}
