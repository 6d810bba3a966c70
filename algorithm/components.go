package algorithm

import (
	"github.com/ttpr0/go-navigation/graph"
	. "github.com/ttpr0/go-navigation/util"
)

// Labels every node with the id of its connected component. Ids are assigned
// in order of the lowest node index of each component.
func ConnectedComponents(g graph.IGraph) Array[int32] {
	groups := NewArray[int32](g.NodeCount())
	for i := range groups {
		groups[i] = -1
	}
	explorer := g.GetGraphExplorer()

	stack := NewList[int32](100)
	group := int32(0)
	for i := 0; i < g.NodeCount(); i++ {
		if groups[i] != -1 {
			continue
		}
		groups[i] = group
		stack.Add(int32(i))
		for stack.Length() > 0 {
			curr_id := stack[stack.Length()-1]
			stack = stack[:stack.Length()-1]
			explorer.ForAdjacentEdges(curr_id, func(ref graph.EdgeRef) {
				if groups[ref.OtherID] != -1 {
					return
				}
				groups[ref.OtherID] = group
				stack.Add(ref.OtherID)
			})
		}
		group += 1
	}
	return groups
}

type ComponentStats struct {
	Components    int `json:"components"`
	Largest       int `json:"largest"`
	IsolatedNodes int `json:"isolated_nodes"`
}

// Summarizes the component labels of a graph.
func GetComponentStats(g graph.IGraph, groups Array[int32]) ComponentStats {
	sizes := NewDict[int32, int](10)
	stats := ComponentStats{}
	for i, group := range groups {
		sizes[group] += 1
		if g.GetNodeDegree(int32(i)) == 0 {
			stats.IsolatedNodes += 1
		}
	}
	stats.Components = sizes.Length()
	for _, size := range sizes {
		if size > stats.Largest {
			stats.Largest = size
		}
	}
	return stats
}
