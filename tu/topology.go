package tu

// Edge represents a directed edge between two local nodes of a graph.
type Edge struct {
	From int
	To   int
}

// Topology is an adjacency view of a single graph.
type Topology struct {
	// Nexts[u] holds the indices in Edges of the edges leaving node u, in the
	// order in which they appear in the graph's edge index.
	Nexts [][]int
	Edges []Edge
}

// Topology builds the adjacency view of the graph. Edges are kept directed:
// TU files list both directions of an undirected edge explicitly.
func (g *Graph) Topology() *Topology {
	nEdges := g.NumEdges()
	t := &Topology{
		Nexts: make([][]int, g.NumNodes),
		Edges: make([]Edge, nEdges),
	}
	for i := 0; i < nEdges; i++ {
		e := Edge{From: g.EdgeIndex[0][i], To: g.EdgeIndex[1][i]}
		t.Edges[i] = e
		t.Nexts[e.From] = append(t.Nexts[e.From], i)
	}
	return t
}

// OutDegree returns the number of edges leaving node u.
func (t *Topology) OutDegree(u int) int {
	return len(t.Nexts[u])
}

// MaxOutDegree returns the largest out-degree of the graph, or 0 if the graph
// has no nodes.
func (t *Topology) MaxOutDegree() int {
	best := 0
	for u := range t.Nexts {
		if d := t.OutDegree(u); d > best {
			best = d
		}
	}
	return best
}

// IsolatedNodes returns the number of nodes that are the endpoint of no edge.
func (t *Topology) IsolatedNodes() int {
	touched := make([]bool, len(t.Nexts))
	for _, e := range t.Edges {
		touched[e.From] = true
		touched[e.To] = true
	}
	n := 0
	for _, ok := range touched {
		if !ok {
			n++
		}
	}
	return n
}
