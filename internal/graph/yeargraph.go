package graph

import "sort"

// NodeIndex addresses a node in the YearGraph arena
type NodeIndex int

// YearNode is one calendar year in the chain
type YearNode struct {
	Index NodeIndex `json:"index"`
	Year  int       `json:"year"`
}

// TransitionEdge points from one year node to the next. Weight is the number
// of additions recorded in the target year, or 0 for a bridge.
type TransitionEdge struct {
	Source NodeIndex `json:"source"`
	Target NodeIndex `json:"target"`
	Weight int       `json:"weight"`
}

// YearGraph is a directed chain of years stored as a node arena with
// per-node outgoing edge lists and a year -> index lookup
type YearGraph struct {
	nodes     []YearNode
	edges     []TransitionEdge
	out       [][]int // node index -> indices into edges
	yearIndex map[int]NodeIndex
}

// NewYearGraph returns an empty graph
func NewYearGraph() *YearGraph {
	return &YearGraph{
		yearIndex: make(map[int]NodeIndex),
	}
}

// FromCounts builds a graph from a year -> count mapping: sorted insertion
// followed by the bridging pass
func FromCounts(counts map[int]int) *YearGraph {
	g := NewYearGraph()
	g.AddSortedYears(counts)
	g.ConnectAllYears()
	return g
}

// AddYear ensures a node for year exists and, when year-1 already has a node,
// sets the weight of the year-1 -> year edge to count (last write wins).
func (g *YearGraph) AddYear(year, count int) {
	node, ok := g.yearIndex[year]
	if !ok {
		node = g.addNode(year)
	}
	if prev, ok := g.yearIndex[year-1]; ok {
		g.updateEdge(prev, node, count)
	}
}

// AddSortedYears adds every year of counts in ascending order so each edge is
// created as soon as its predecessor exists
func (g *YearGraph) AddSortedYears(counts map[int]int) {
	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		g.AddYear(year, counts[year])
	}
}

// ConnectAllYears walks the present years in ascending order and adds a
// 0-weight edge between each adjacent pair that is not linked yet. Gap years
// stay without a node.
func (g *YearGraph) ConnectAllYears() {
	years := g.sortedYears()
	for i := 1; i < len(years); i++ {
		prev := g.yearIndex[years[i-1]]
		cur := g.yearIndex[years[i]]
		if _, ok := g.FindEdge(prev, cur); !ok {
			g.addEdge(prev, cur, 0)
		}
	}
}

// NodeCount returns the number of year nodes
func (g *YearGraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of transition edges
func (g *YearGraph) EdgeCount() int { return len(g.edges) }

// Nodes returns the nodes in insertion order
func (g *YearGraph) Nodes() []YearNode {
	nodes := make([]YearNode, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Edges returns the edges in insertion order
func (g *YearGraph) Edges() []TransitionEdge {
	edges := make([]TransitionEdge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// OutEdges returns the outgoing edges of a node
func (g *YearGraph) OutEdges(n NodeIndex) []TransitionEdge {
	if !g.valid(n) {
		return nil
	}
	result := make([]TransitionEdge, 0, len(g.out[n]))
	for _, ei := range g.out[n] {
		result = append(result, g.edges[ei])
	}
	return result
}

// OutWeight sums the weights of a node's outgoing edges
func (g *YearGraph) OutWeight(n NodeIndex) int {
	if !g.valid(n) {
		return 0
	}
	total := 0
	for _, ei := range g.out[n] {
		total += g.edges[ei].Weight
	}
	return total
}

// Lookup returns the node index for year
func (g *YearGraph) Lookup(year int) (NodeIndex, bool) {
	n, ok := g.yearIndex[year]
	return n, ok
}

// Year returns the year stored at n
func (g *YearGraph) Year(n NodeIndex) int {
	return g.nodes[n].Year
}

// FindEdge returns the edge from -> to, if any
func (g *YearGraph) FindEdge(from, to NodeIndex) (TransitionEdge, bool) {
	if !g.valid(from) {
		return TransitionEdge{}, false
	}
	for _, ei := range g.out[from] {
		if g.edges[ei].Target == to {
			return g.edges[ei], true
		}
	}
	return TransitionEdge{}, false
}

func (g *YearGraph) valid(n NodeIndex) bool {
	return n >= 0 && int(n) < len(g.nodes)
}

func (g *YearGraph) addNode(year int) NodeIndex {
	n := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, YearNode{Index: n, Year: year})
	g.out = append(g.out, nil)
	g.yearIndex[year] = n
	return n
}

func (g *YearGraph) addEdge(from, to NodeIndex, weight int) {
	g.edges = append(g.edges, TransitionEdge{Source: from, Target: to, Weight: weight})
	g.out[from] = append(g.out[from], len(g.edges)-1)
}

// updateEdge overwrites the weight of an existing from -> to edge or inserts one
func (g *YearGraph) updateEdge(from, to NodeIndex, weight int) {
	for _, ei := range g.out[from] {
		if g.edges[ei].Target == to {
			g.edges[ei].Weight = weight
			return
		}
	}
	g.addEdge(from, to, weight)
}

func (g *YearGraph) sortedYears() []int {
	years := make([]int, 0, len(g.yearIndex))
	for year := range g.yearIndex {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
