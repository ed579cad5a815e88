package seating

// Graph is the compiled neighbor graph of a layout under one policy. Seats
// are numbered in row-major order; nodes[i] holds how many edges seat i owns
// and edges stores those neighbor seat indices contiguously per node.
// A Graph is immutable once built.
type Graph struct {
	nodes []uint8
	edges []uint32
}

// CompileAdjacent links every seat to the seats in its 8 touching cells.
func CompileAdjacent(l *Layout) *Graph {
	inode, n := compressSeats(l)
	var offsets [8]int
	for k, d := range directions {
		offsets[k] = d[1]*l.Width + d[0]
	}

	g := &Graph{nodes: make([]uint8, 0, n), edges: make([]uint32, 0, 8*n)}
	for p, i := range inode {
		if i < 0 {
			continue
		}
		n0 := len(g.edges)
		for _, off := range offsets {
			if q := inode[p+off]; q >= 0 {
				g.edges = append(g.edges, uint32(q))
			}
		}
		g.nodes = append(g.nodes, uint8(len(g.edges)-n0))
	}
	g.edges = clip(g.edges)
	return g
}

// CompileVisible links every seat to the first seat found along each of the
// 8 directions, skipping floor, before the grid edge.
func CompileVisible(l *Layout) *Graph {
	inode, n := compressSeats(l)
	g := &Graph{nodes: make([]uint8, 0, n), edges: make([]uint32, 0, 8*n)}

	searchLine := func(x, y, dx, dy int) (int32, bool) {
		for {
			x += dx
			y += dy
			if !l.InBounds(x, y) {
				return 0, false
			}
			if j := inode[l.Index(x, y)]; j >= 0 {
				return j, true
			}
		}
	}

	for p, i := range inode {
		if i < 0 {
			continue
		}
		x, y := l.Coordinate(p)
		n0 := len(g.edges)
		for _, d := range directions {
			if j, ok := searchLine(x, y, d[0], d[1]); ok {
				g.edges = append(g.edges, uint32(j))
			}
		}
		g.nodes = append(g.nodes, uint8(len(g.edges)-n0))
	}
	g.edges = clip(g.edges)
	return g
}

// Compile builds the graph for the given policy.
func Compile(l *Layout, p Policy) *Graph {
	if p == Visible {
		return CompileVisible(l)
	}
	return CompileAdjacent(l)
}

// compressSeats maps each cell to its compact seat index, or -1 for floor,
// and returns the seat count.
func compressSeats(l *Layout) ([]int32, int) {
	inode := make([]int32, len(l.Seats))
	var n int32
	for p, s := range l.Seats {
		if !s {
			inode[p] = -1
			continue
		}
		inode[p] = n
		n++
	}
	return inode, int(n)
}

func clip(edges []uint32) []uint32 {
	out := make([]uint32, len(edges))
	copy(out, edges)
	return out
}

// Nodes returns the number of seats in the graph.
func (g *Graph) Nodes() int { return len(g.nodes) }

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Degree returns the number of relevant neighbors of seat i.
func (g *Graph) Degree(i int) int { return int(g.nodes[i]) }

// Neighbors returns the neighbor seat indices of seat i. The slice aliases
// the graph and must not be modified.
func (g *Graph) Neighbors(i int) []uint32 {
	j := 0
	for k := 0; k < i; k++ {
		j += int(g.nodes[k])
	}
	return g.edges[j : j+int(g.nodes[i]) : j+int(g.nodes[i])]
}

// Each calls fn for every seat with its neighbor list, in seat order.
func (g *Graph) Each(fn func(i int, nbrs []uint32)) {
	j := 0
	for i, n := range g.nodes {
		j1 := j + int(n)
		fn(i, g.edges[j:j1:j1])
		j = j1
	}
}

// RunUntilStable drives the graph from all seats occupied to its fixed point
// and returns the stable seat-indexed occupancy.
func (g *Graph) RunUntilStable(threshold uint8) []uint8 {
	e := &GraphEngine{graph: g, rule: Rule{Threshold: threshold}}
	return Stabilize(e).Occupancy
}

// GraphEngine steps occupancy over a precompiled Graph. Its occupancy vectors
// are seat-indexed.
type GraphEngine struct {
	graph *Graph
	rule  Rule
}

// NewGraphEngine compiles l under r.Policy once and returns an engine over it.
func NewGraphEngine(l *Layout, r Rule) *GraphEngine {
	return &GraphEngine{graph: Compile(l, r.Policy), rule: r}
}

// Graph returns the compiled neighbor graph.
func (e *GraphEngine) Graph() *Graph { return e.graph }

// Rule returns the rule the engine applies.
func (e *GraphEngine) Rule() Rule { return e.rule }

// Len returns the number of seats.
func (e *GraphEngine) Len() int { return len(e.graph.nodes) }

// Initial returns a seat-indexed vector with every seat occupied.
func (e *GraphEngine) Initial() []uint8 {
	state := make([]uint8, len(e.graph.nodes))
	for i := range state {
		state[i] = 1
	}
	return state
}

// Step writes the generation following prev into next. Each occupied seat
// casts one vote into next for every neighbor; the tally is then replaced by
// the rule's outcome in place.
func (e *GraphEngine) Step(prev, next []uint8) {
	nodes, edges := e.graph.nodes, e.graph.edges
	n := len(nodes)
	prev, next = prev[:n], next[:n]

	for i := range next {
		next[i] = 0
	}

	j := 0
	for i := 0; i < n; i++ {
		j1 := j + int(nodes[i])
		if prev[i] != 0 {
			for _, q := range edges[j:j1] {
				next[q]++
			}
		}
		j = j1
	}

	for i := 0; i < n; i++ {
		next[i] = e.rule.next(prev[i], next[i])
	}
}
