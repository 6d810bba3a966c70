package routing

import (
	"sync"

	"github.com/ttpr0/go-navigation/graph"
	. "github.com/ttpr0/go-navigation/util"
)

// Computes the distances from every source to every target with one search
// per source, spread over a number of workers.
//
// Unreachable targets and sources or targets given as -1 get distance -1.
func CalcDistanceMatrix(g graph.IGraph, sources Array[int32], targets Array[int32], workers int) Matrix[int64] {
	matrix := NewMatrix[int64](sources.Length(), targets.Length())
	source_chan := make(chan Tuple[int, int32], sources.Length())
	for i, s := range sources {
		source_chan <- MakeTuple(i, s)
	}
	close(source_chan)

	workers = max(1, min(workers, sources.Length()))
	wg := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for temp := range source_chan {
				s := temp.A
				s_node := temp.B
				if s_node == -1 {
					for t := 0; t < targets.Length(); t++ {
						matrix.Set(s, t, -1)
					}
					continue
				}
				ctx := CalcDijkstra(g, s_node)
				for t, t_node := range targets {
					if t_node == -1 || !ctx.IsReachable(t_node) {
						matrix.Set(s, t, -1)
					} else {
						matrix.Set(s, t, ctx.GetDistance(t_node))
					}
				}
			}
		}()
	}
	wg.Wait()
	return matrix
}
