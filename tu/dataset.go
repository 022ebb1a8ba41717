// Package tu loads graph classification datasets stored in the TU Dortmund
// benchmark format and splits them into one record per graph.
//
// A dataset named NAME is a directory of comma-separated text files:
//
//	NAME_A.txt                edge list (one "u, v" pair per line, 1-based)
//	NAME_graph_indicator.txt  graph id of each node (1-based)
//	NAME_node_labels.txt      label of each node (optional)
//	NAME_edge_labels.txt      label of each edge (optional)
//	NAME_node_attributes.txt  attribute vector of each node (optional)
//	NAME_graph_labels.txt     label of each graph (optional)
//
// Nodes and edges of all graphs are concatenated in these files; the graph
// indicator tells which graph each node belongs to.
package tu

import "strings"

// Features is the set of optional fields present in a dataset. Presence is a
// property of the whole dataset: a field is set on every graph or on none.
type Features uint8

const (
	NodeLabels Features = 1 << iota
	NodeAttributes
	EdgeLabels
	GraphLabels
)

var featureNames = []struct {
	f    Features
	name string
}{
	{NodeLabels, "node_labels"},
	{NodeAttributes, "node_attributes"},
	{EdgeLabels, "edge_labels"},
	{GraphLabels, "graph_labels"},
}

// Has returns true if all the features in other are present in f.
func (f Features) Has(other Features) bool {
	return f&other == other
}

// Names returns the names of the present features in a fixed order.
func (f Features) Names() []string {
	names := []string{}
	for _, fn := range featureNames {
		if f.Has(fn.f) {
			names = append(names, fn.name)
		}
	}
	return names
}

// String returns the present features separated by "|", e.g.
// "node_labels|graph_labels".
func (f Features) String() string {
	return strings.Join(f.Names(), "|")
}

// EdgeIndex is a 2xE matrix of local node indices. EdgeIndex[0] holds the
// source of each edge and EdgeIndex[1] its target.
type EdgeIndex [2][]int

// Len returns the number of edges.
func (ei EdgeIndex) Len() int {
	return len(ei[0])
}

// Graph is the data of a single graph of a dataset. Node indices are local to
// the graph and start at 0. Optional fields are only meaningful when the
// corresponding feature is set on the dataset: NodeLabels, NodeAttributes and
// EdgeLabels are nil otherwise, and GraphLabel is 0.
type Graph struct {
	NumNodes  int
	EdgeIndex EdgeIndex

	NodeLabels     []int
	NodeAttributes *Array[float32]
	EdgeLabels     []int
	GraphLabel     int
}

// NumEdges returns the number of edges of the graph.
func (g *Graph) NumEdges() int {
	return g.EdgeIndex.Len()
}

// Dataset is a collection of graphs loaded from TU files. Graphs[i] is the
// graph with id i+1 in the files.
type Dataset struct {
	Name     string
	Features Features

	// NodeAttributeDim is the width of node attribute vectors, or 0 if the
	// dataset has no node attributes.
	NodeAttributeDim int

	Graphs []Graph
}

// NumNodes returns the total number of nodes over all graphs.
func (ds *Dataset) NumNodes() int {
	n := 0
	for i := range ds.Graphs {
		n += ds.Graphs[i].NumNodes
	}
	return n
}

// NumEdges returns the total number of edges over all graphs.
func (ds *Dataset) NumEdges() int {
	n := 0
	for i := range ds.Graphs {
		n += ds.Graphs[i].NumEdges()
	}
	return n
}
