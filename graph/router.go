package graph

import (
	"container/heap"

	"github.com/bluele/gcache"
)

// DefaultCacheSize is the number of shortest-path trees a Router keeps.
const DefaultCacheSize = 128

const noEdge EdgeID = -1

// RouteInfo is a shortest path: its total weight and the edges along it in
// travel order.
type RouteInfo struct {
	Weight float64
	Edges  []EdgeID
}

// Router answers shortest-path queries over an immutable graph.
type Router struct {
	graph *DirectedWeightedGraph
	trees gcache.Cache // VertexID -> *shortestPathTree
}

type Option func(*routerOptions)

type routerOptions struct {
	cacheSize int
}

// WithCacheSize sets how many per-source trees are cached. Values below one
// are ignored.
func WithCacheSize(n int) Option {
	return func(o *routerOptions) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// NewRouter creates a router for g.
func NewRouter(g *DirectedWeightedGraph, opts ...Option) *Router {
	o := routerOptions{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Router{graph: g}
	r.trees = gcache.New(o.cacheSize).
		LRU().
		LoaderFunc(func(key interface{}) (interface{}, error) {
			return r.buildTree(key.(VertexID)), nil
		}).
		Build()
	return r
}

func (r *Router) Graph() *DirectedWeightedGraph { return r.graph }

// BuildRoute returns the cheapest path from one vertex to another, or false
// when to is not reachable from from. It panics when a vertex is out of range.
func (r *Router) BuildRoute(from, to VertexID) (RouteInfo, bool) {
	r.graph.checkVertex(from)
	r.graph.checkVertex(to)

	tree := r.tree(from)
	if !tree.reached[to] {
		return RouteInfo{}, false
	}

	var edges []EdgeID
	for v := to; tree.prevEdge[v] != noEdge; v = r.graph.edges[tree.prevEdge[v]].From {
		edges = append(edges, tree.prevEdge[v])
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return RouteInfo{Weight: tree.weight[to], Edges: edges}, true
}

func (r *Router) tree(source VertexID) *shortestPathTree {
	v, err := r.trees.Get(source)
	if err != nil {
		return r.buildTree(source)
	}
	return v.(*shortestPathTree)
}

// shortestPathTree holds Dijkstra results for one source. It is read-only
// once built.
type shortestPathTree struct {
	weight   []float64
	prevEdge []EdgeID
	reached  []bool
}

func (r *Router) buildTree(source VertexID) *shortestPathTree {
	n := r.graph.VertexCount()
	t := &shortestPathTree{
		weight:   make([]float64, n),
		prevEdge: make([]EdgeID, n),
		reached:  make([]bool, n),
	}
	for i := range t.prevEdge {
		t.prevEdge[i] = noEdge
	}
	t.reached[source] = true

	settled := make([]bool, n)
	pq := &priorityQueue{}
	heap.Push(pq, &pqItem{vertex: source, priority: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.vertex
		if settled[current] {
			continue
		}
		settled[current] = true

		for _, id := range r.graph.incidence[current] {
			e := r.graph.edges[id]
			if settled[e.To] {
				continue
			}
			tentative := t.weight[current] + e.Weight
			if !t.reached[e.To] || tentative < t.weight[e.To] {
				t.reached[e.To] = true
				t.weight[e.To] = tentative
				t.prevEdge[e.To] = id
				heap.Push(pq, &pqItem{vertex: e.To, priority: tentative})
			}
		}
	}
	return t
}

type pqItem struct {
	vertex   VertexID
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].vertex < pq[j].vertex
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
