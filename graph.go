package aoc

// Graph is a weighted graph. Edges added with AddEdge are undirected;
// AddDirectedEdge adds a single direction.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

// ReachableNodes returns every node reachable from a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	if g.Nodes == nil {
		g.Nodes = make(map[K]bool)
	}
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddDirectedEdge(a, b, dist)
	g.AddDirectedEdge(b, a, dist)
}

func (g *Graph[K]) AddDirectedEdge(from, to K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[from] == nil {
		g.Edges[from] = make(map[K]int)
	}
	g.Edges[from][to] = dist
	g.Nodes[from] = true
	g.Nodes[to] = true
}

// Degree returns the number of edges leaving a.
func (g *Graph[K]) Degree(a K) int {
	return len(g.Edges[a])
}

// Reverse returns a copy of g with every edge pointing the other way.
func (g *Graph[K]) Reverse() *Graph[K] {
	var out Graph[K]
	for k := range g.Nodes {
		out.AddNode(k)
	}
	for from, e := range g.Edges {
		for to, d := range e {
			out.AddDirectedEdge(to, from, d)
		}
	}
	return &out
}
