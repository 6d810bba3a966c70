package routing

import (
	"math"

	"github.com/ttpr0/go-navigation/graph"
	. "github.com/ttpr0/go-navigation/util"
)

// Distance of nodes not reached by a search, larger than any path length.
const INF int64 = math.MaxInt64

//*******************************************
// search context
//*******************************************

type flag_sp struct {
	dist int64
	prev int32
}

// Distances and predecessors of one shortest path search. Every search owns
// its context, the graph itself is never written to.
type SearchContext struct {
	start int32
	flags Array[flag_sp]
}

func NewSearchContext(g graph.IGraph, start int32) *SearchContext {
	flags := NewArray[flag_sp](g.NodeCount())
	for i := 0; i < len(flags); i++ {
		flags[i].dist = INF
		flags[i].prev = -1
	}
	return &SearchContext{
		start: start,
		flags: flags,
	}
}

func (self *SearchContext) Start() int32 {
	return self.start
}
func (self *SearchContext) GetDistance(node int32) int64 {
	return self.flags[node].dist
}
func (self *SearchContext) GetPredecessor(node int32) int32 {
	return self.flags[node].prev
}
func (self *SearchContext) IsReachable(node int32) bool {
	return self.flags[node].dist != INF
}

//*******************************************
// dijkstra
//*******************************************

type pq_item struct {
	node int32
	dist int64
}

// Computes shortest distances from start to every node of g.
//
// Stale queue entries are skipped on dequeue instead of being removed when a
// node's distance improves. Among equally short paths the one relaxed first
// is kept.
func CalcDijkstra(g graph.IGraph, start int32) *SearchContext {
	ctx := NewSearchContext(g, start)
	heap := NewPriorityQueue[pq_item, int64](100)
	explorer := g.GetGraphExplorer()

	ctx.flags[start].dist = 0
	heap.Enqueue(pq_item{start, 0}, 0)

	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.node
		curr_flag := ctx.flags[curr_id]
		if curr_flag.dist < curr_item.dist {
			continue
		}
		explorer.ForAdjacentEdges(curr_id, func(ref graph.EdgeRef) {
			other_id := ref.OtherID
			other_flag := ctx.flags[other_id]
			new_length := curr_flag.dist + int64(explorer.GetEdgeWeight(ref))
			if new_length < other_flag.dist {
				other_flag.dist = new_length
				other_flag.prev = curr_id
				ctx.flags[other_id] = other_flag
				heap.Enqueue(pq_item{other_id, new_length}, new_length)
			}
		})
	}
	return ctx
}
