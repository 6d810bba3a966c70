package graph

import (
	"github.com/ttpr0/go-navigation/structs"
	. "github.com/ttpr0/go-navigation/util"
)

//*******************************************
// graph interfaces
//******************************************

type IGraph interface {
	GetGraphExplorer() IGraphExplorer
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	GetNode(node int32) structs.Node
	GetEdge(edge int32) structs.Edge
	GetNodeIndex(id string) (int32, bool)
	GetNodeDegree(node int32) int
}

// Explorers only read the graph and can be used from several goroutines.
type IGraphExplorer interface {
	// Iterates through the adjacency of a node calling the callback for every edge.
	//
	// Edges are undirected, every edge is listed at both of its endpoints.
	ForAdjacentEdges(node int32, callback func(EdgeRef))
	GetEdgeWeight(edge EdgeRef) int32
	GetOtherNode(edge EdgeRef, node int32) int32
}

//*******************************************
// base-graph
//******************************************

var _ IGraph = &Graph{}

// Immutable road graph. Nodes and edges live in flat arrays, edges refer to
// their endpoints by node index and every node keeps the indices of its edges.
type Graph struct {
	nodes      Array[structs.Node]
	edges      Array[structs.Edge]
	topology   Array[List[int32]]
	node_index Dict[string, int32]
	stats      LoadStats
}

func (self *Graph) GetGraphExplorer() IGraphExplorer {
	return &BaseGraphExplorer{
		graph: self,
	}
}
func (self *Graph) NodeCount() int {
	return len(self.nodes)
}
func (self *Graph) EdgeCount() int {
	return len(self.edges)
}
func (self *Graph) IsNode(node int32) bool {
	return node >= 0 && node < int32(len(self.nodes))
}
func (self *Graph) GetNode(node int32) structs.Node {
	return self.nodes[node]
}
func (self *Graph) GetEdge(edge int32) structs.Edge {
	return self.edges[edge]
}
func (self *Graph) GetNodeIndex(id string) (int32, bool) {
	node, ok := self.node_index[id]
	return node, ok
}
func (self *Graph) GetNodeDegree(node int32) int {
	return self.topology[node].Length()
}
func (self *Graph) IsEmpty() bool {
	return len(self.nodes) == 0
}
func (self *Graph) Stats() LoadStats {
	return self.stats
}

//*******************************************
// base-graph explorer
//******************************************

type BaseGraphExplorer struct {
	graph *Graph
}

func (self *BaseGraphExplorer) ForAdjacentEdges(node int32, callback func(EdgeRef)) {
	for _, edge_id := range self.graph.topology[node] {
		callback(EdgeRef{
			EdgeID:  edge_id,
			OtherID: self.GetOtherNode(EdgeRef{EdgeID: edge_id}, node),
		})
	}
}
func (self *BaseGraphExplorer) GetEdgeWeight(edge EdgeRef) int32 {
	return self.graph.edges[edge.EdgeID].Weight
}
func (self *BaseGraphExplorer) GetOtherNode(edge EdgeRef, node int32) int32 {
	e := self.graph.GetEdge(edge.EdgeID)
	if node == e.NodeA {
		return e.NodeB
	}
	if node == e.NodeB {
		return e.NodeA
	}
	return -1
}
