package graph

// UnionFind implements union-find over node indices with path compression and union by rank
type UnionFind struct {
	parent []NodeIndex
	rank   []int
	size   []int
}

// NewUnionFind creates a UnionFind where each of the n nodes is its own component
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]NodeIndex, n),
		rank:   make([]int, n),
		size:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = NodeIndex(i)
		uf.size[i] = 1
	}
	return uf
}

// Find returns the root of the component containing n, with path compression
func (uf *UnionFind) Find(n NodeIndex) NodeIndex {
	if int(n) >= len(uf.parent) || n < 0 {
		return n
	}
	if parent := uf.parent[n]; parent != n {
		root := uf.Find(parent)
		uf.parent[n] = root
		return root
	}
	return n
}

// Union merges the components containing a and b. Returns true if they were separate.
func (uf *UnionFind) Union(a, b NodeIndex) bool {
	rootA := uf.Find(a)
	rootB := uf.Find(b)
	if rootA == rootB {
		return false
	}

	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
		uf.size[rootB] += uf.size[rootA]
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
		uf.size[rootA] += uf.size[rootB]
	default:
		uf.parent[rootB] = rootA
		uf.size[rootA] += uf.size[rootB]
		uf.rank[rootA]++
	}
	return true
}

// Count returns the number of distinct components
func (uf *UnionFind) Count() int {
	count := 0
	for i := range uf.parent {
		if uf.Find(NodeIndex(i)) == NodeIndex(i) {
			count++
		}
	}
	return count
}

// ChainComponents returns how many disconnected pieces the year chain has,
// ignoring edge direction. A fully bridged graph reports 1, an empty one 0.
func ChainComponents(g *YearGraph) int {
	uf := NewUnionFind(g.NodeCount())
	for _, e := range g.edges {
		uf.Union(e.Source, e.Target)
	}
	return uf.Count()
}
