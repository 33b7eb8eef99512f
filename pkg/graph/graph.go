package graph

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Graph is an undirected, weighted, in-memory graph with a symmetric
// adjacency index. It is built once from an edge list and treated as
// read-only for the remainder of an analysis run, which makes it safe to
// share across concurrently running measure computations.
type Graph struct {
	nodes     map[string]*Node
	adjacency map[string]map[string]float64
	edgeCount int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]float64),
	}
}

// Build constructs a graph from a deduplicated edge list. It fails fast on
// the first invalid record; duplicate pairs after the first insertion are
// no-ops (first-seen weight wins).
func Build(records []EdgeRecord) (*Graph, error) {
	g := New()
	for i, rec := range records {
		weight := rec.Weight
		if weight == 0 {
			weight = 1.0
		}
		if err := g.AddWeightedEdge(rec.Source, rec.Target, weight); err != nil {
			return nil, fmt.Errorf("edge record %d: %w", i, err)
		}
	}
	return g, nil
}

// validID rejects empty or whitespace-only identifiers.
func validID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// AddNode inserts an isolated node. Adding an existing node is a no-op.
// Isolated nodes participate in every output table with zero-valued
// measures.
func (g *Graph) AddNode(id string) error {
	if !validID(id) {
		return fmt.Errorf("%w: malformed node identifier %q", ErrInvalidEdge, id)
	}
	g.ensureNode(id)
	return nil
}

// SetNodeAttr attaches a typed attribute to an existing node. The attribute
// map is bounded by MaxAttributes.
func (g *Graph) SetNodeAttr(id, key string, value Value) error {
	node, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: unknown node %q", ErrInvalidEdge, id)
	}
	if node.Attrs == nil {
		node.Attrs = make(map[string]Value, 4)
	}
	if _, exists := node.Attrs[key]; !exists && len(node.Attrs) >= MaxAttributes {
		return ErrTooManyAttributes
	}
	node.Attrs[key] = value
	return nil
}

func (g *Graph) ensureNode(id string) *Node {
	if node, ok := g.nodes[id]; ok {
		return node
	}
	node := &Node{ID: id}
	g.nodes[id] = node
	g.adjacency[id] = make(map[string]float64)
	return node
}

// AddEdge inserts an undirected edge with the default weight of 1.0.
func (g *Graph) AddEdge(u, v string) error {
	return g.AddWeightedEdge(u, v, 1.0)
}

// AddWeightedEdge inserts an undirected edge between u and v. Self-loops,
// malformed endpoints, and non-positive weights are rejected with
// ErrInvalidEdge. Inserting the same pair again is idempotent: the first
// weight wins and the duplicate is silently ignored.
func (g *Graph) AddWeightedEdge(u, v string, weight float64) error {
	if !validID(u) {
		return fmt.Errorf("%w: malformed endpoint %q", ErrInvalidEdge, u)
	}
	if !validID(v) {
		return fmt.Errorf("%w: malformed endpoint %q", ErrInvalidEdge, v)
	}
	if u == v {
		return fmt.Errorf("%w: self-loop on %q", ErrInvalidEdge, u)
	}
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: non-positive weight %v on (%q, %q)", ErrInvalidEdge, weight, u, v)
	}

	g.ensureNode(u)
	g.ensureNode(v)

	if _, exists := g.adjacency[u][v]; exists {
		return nil
	}

	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight
	g.edgeCount++
	return nil
}

// Neighbors returns the adjacency map of u (neighbor id -> edge weight).
// The returned map is the internal index and must not be mutated. Lookup is
// O(1); iteration is O(degree(u)).
func (g *Graph) Neighbors(u string) map[string]float64 {
	return g.adjacency[u]
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether an undirected edge between u and v exists.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adjacency[u][v]
	return ok
}

// Weight returns the weight of the edge between u and v.
func (g *Graph) Weight(u, v string) (float64, bool) {
	w, ok := g.adjacency[u][v]
	return w, ok
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// Degree returns the number of neighbors of u. Unknown nodes have degree 0.
func (g *Graph) Degree(u string) int {
	return len(g.adjacency[u])
}

// WeightedDegree returns the sum of edge weights incident to u.
func (g *Graph) WeightedDegree(u string) float64 {
	total := 0.0
	for _, w := range g.adjacency[u] {
		total += w
	}
	return total
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// NodeIDs returns all node identifiers in ascending order. Sorted iteration
// keeps every derived table deterministic across runs.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
