package graph

import (
	"sort"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
)

// Relation labels the kind of an edge in the company graph
type Relation string

const (
	// RelationSales is a seller -> buyer transaction, weighted by amount
	RelationSales Relation = "Sales"
	// RelationESG is a company self-loop, weighted by overall ESG score
	RelationESG Relation = "ESG"
	// RelationFinancial is a company self-loop, weighted by net income
	RelationFinancial Relation = "Financial"
)

// Relations lists every relation kind in build order
var Relations = []Relation{RelationSales, RelationESG, RelationFinancial}

// Edge is one directed, labeled, weighted edge
type Edge struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Relation Relation `json:"relation"`
	Weight   float64  `json:"weight"`
}

// IsSelfLoop reports whether the edge starts and ends at the same company
func (e Edge) IsSelfLoop() bool {
	return e.Source == e.Target
}

// Stats summarizes the size of a graph
type Stats struct {
	Nodes      int              `json:"nodes"`
	Edges      int              `json:"edges"`
	ByRelation map[Relation]int `json:"by_relation"`
}

// WeightedLine is a gonum line carrying a relation kind and a weight.
// Line ids are assigned in insertion order.
type WeightedLine struct {
	F, T     gonum.Node
	UID      int64
	Relation Relation
	W        float64
}

func (l WeightedLine) From() gonum.Node { return l.F }
func (l WeightedLine) To() gonum.Node   { return l.T }
func (l WeightedLine) ID() int64        { return l.UID }
func (l WeightedLine) Weight() float64  { return l.W }

// ReversedLine returns the line with its endpoints swapped
func (l WeightedLine) ReversedLine() gonum.Line {
	l.F, l.T = l.T, l.F
	return l
}

// Graph is a directed multigraph over company names, backed by a gonum
// multi.DirectedGraph. Parallel edges between the same ordered pair, self-loops
// included, are kept as distinct lines.
type Graph struct {
	g        *multi.DirectedGraph
	ids      map[string]int64
	names    map[int64]string
	nextLine int64
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		g:     multi.NewDirectedGraph(),
		ids:   make(map[string]int64),
		names: make(map[int64]string),
	}
}

// AddNode adds a company if it is not already present
func (g *Graph) AddNode(name string) {
	if _, ok := g.ids[name]; ok {
		return
	}
	n := g.g.NewNode()
	g.g.AddNode(n)
	g.ids[name] = n.ID()
	g.names[n.ID()] = name
}

// AddEdge appends an edge, adding either endpoint as a node if needed
func (g *Graph) AddEdge(source, target string, relation Relation, weight float64) {
	g.AddNode(source)
	g.AddNode(target)
	g.g.SetLine(WeightedLine{
		F:        g.g.Node(g.ids[source]),
		T:        g.g.Node(g.ids[target]),
		UID:      g.nextLine,
		Relation: relation,
		W:        weight,
	})
	g.nextLine++
}

// HasNode reports whether name is a node of the graph
func (g *Graph) HasNode(name string) bool {
	_, ok := g.ids[name]
	return ok
}

// Nodes returns every node name sorted
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.names))
	for _, n := range gonum.NodesOf(g.g.Nodes()) {
		nodes = append(nodes, g.names[n.ID()])
	}
	sort.Strings(nodes)
	return nodes
}

// Edges returns every edge in insertion order
func (g *Graph) Edges() []Edge {
	var lines []WeightedLine
	for _, from := range gonum.NodesOf(g.g.Nodes()) {
		lines = append(lines, g.linesFrom(from.ID())...)
	}
	return g.toEdges(lines)
}

// EdgesFrom returns the outgoing edges of a node in insertion order
func (g *Graph) EdgesFrom(name string) []Edge {
	id, ok := g.ids[name]
	if !ok {
		return []Edge{}
	}
	return g.toEdges(g.linesFrom(id))
}

// EdgesBetween returns every edge from source to target, across all relations
func (g *Graph) EdgesBetween(source, target string) []Edge {
	sid, ok := g.ids[source]
	if !ok {
		return []Edge{}
	}
	tid, ok := g.ids[target]
	if !ok {
		return []Edge{}
	}
	return g.toEdges(weightedLines(g.g.Lines(sid, tid)))
}

// Neighbors returns the distinct successors of a node, excluding the node
// itself, in order of first edge. Relation kind and weight are ignored.
func (g *Graph) Neighbors(name string) []string {
	seen := make(map[string]struct{})
	neighbors := make([]string, 0)
	for _, e := range g.EdgesFrom(name) {
		if e.IsSelfLoop() {
			continue
		}
		if _, ok := seen[e.Target]; ok {
			continue
		}
		seen[e.Target] = struct{}{}
		neighbors = append(neighbors, e.Target)
	}
	return neighbors
}

// Stats returns node and edge counts
func (g *Graph) Stats() Stats {
	edges := g.Edges()
	stats := Stats{
		Nodes:      g.g.Nodes().Len(),
		Edges:      len(edges),
		ByRelation: make(map[Relation]int, len(Relations)),
	}
	for _, rel := range Relations {
		stats.ByRelation[rel] = 0
	}
	for _, e := range edges {
		stats.ByRelation[e.Relation]++
	}
	return stats
}

// linesFrom returns every line leaving id
func (g *Graph) linesFrom(id int64) []WeightedLine {
	var lines []WeightedLine
	for _, to := range gonum.NodesOf(g.g.From(id)) {
		lines = append(lines, weightedLines(g.g.Lines(id, to.ID()))...)
	}
	return lines
}

// toEdges sorts lines by id, restoring insertion order, and names their endpoints
func (g *Graph) toEdges(lines []WeightedLine) []Edge {
	sort.Slice(lines, func(i, j int) bool { return lines[i].UID < lines[j].UID })
	edges := make([]Edge, 0, len(lines))
	for _, l := range lines {
		edges = append(edges, Edge{
			Source:   g.names[l.F.ID()],
			Target:   g.names[l.T.ID()],
			Relation: l.Relation,
			Weight:   l.W,
		})
	}
	return edges
}

func weightedLines(it gonum.Lines) []WeightedLine {
	var lines []WeightedLine
	for _, l := range gonum.LinesOf(it) {
		if wl, ok := l.(WeightedLine); ok {
			lines = append(lines, wl)
		}
	}
	return lines
}
