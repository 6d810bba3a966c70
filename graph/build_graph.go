package graph

import (
	"github.com/ttpr0/go-navigation/structs"
	. "github.com/ttpr0/go-navigation/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// graph builder
//*******************************************

// Collects nodes and edges before the graph is frozen by Build.
//
// A node id occurring more than once is kept at its first occurrence,
// later occurrences are skipped and counted as duplicates.
type GraphBuilder struct {
	nodes      List[structs.Node]
	edges      List[structs.Edge]
	topology   List[List[int32]]
	node_index Dict[string, int32]
	stats      LoadStats
}

func NewGraphBuilder(init_cap int) *GraphBuilder {
	return &GraphBuilder{
		nodes:      NewList[structs.Node](init_cap),
		edges:      NewList[structs.Edge](init_cap),
		topology:   NewList[List[int32]](init_cap),
		node_index: NewDict[string, int32](init_cap),
	}
}

// Adds a node with empty adjacency. Returns false if the id is already known.
func (self *GraphBuilder) AddNode(id string) bool {
	if self.node_index.ContainsKey(id) {
		self.stats.DuplicateNodes += 1
		slog.Debug("skipping duplicate node " + id)
		return false
	}
	self.node_index.Set(id, int32(self.nodes.Length()))
	self.nodes.Add(structs.Node{ID: id})
	self.topology.Add(NewList[int32](2))
	self.stats.Nodes += 1
	return true
}

// Adds an undirected edge to the adjacency of both endpoints.
//
// Edges with an unknown endpoint or a negative weight are dropped and
// counted, false is returned for them.
func (self *GraphBuilder) AddEdge(node_a, node_b string, weight int32) bool {
	a, ok_a := self.node_index[node_a]
	b, ok_b := self.node_index[node_b]
	if !ok_a || !ok_b {
		self.stats.DroppedEdges += 1
		return false
	}
	if weight < 0 {
		self.stats.NegativeEdges += 1
		slog.Warn("rejecting road with negative weight", "from", node_a, "to", node_b, "weight", weight)
		return false
	}
	edge_id := int32(self.edges.Length())
	self.edges.Add(structs.Edge{
		NodeA:  a,
		NodeB:  b,
		Weight: weight,
	})
	self.topology[a].Add(edge_id)
	if a != b {
		self.topology[b].Add(edge_id)
	}
	self.stats.Edges += 1
	return true
}

func (self *GraphBuilder) NodeCount() int {
	return self.nodes.Length()
}

func (self *GraphBuilder) Stats() LoadStats {
	return self.stats
}

// Freezes the collected nodes and edges into an immutable graph.
// The builder must not be used afterwards.
func (self *GraphBuilder) Build() *Graph {
	return &Graph{
		nodes:      Array[structs.Node](self.nodes),
		edges:      Array[structs.Edge](self.edges),
		topology:   Array[List[int32]](self.topology),
		node_index: self.node_index,
		stats:      self.stats,
	}
}

// Graph without any node, returned when a data source is unavailable.
func EmptyGraph() *Graph {
	return NewGraphBuilder(0).Build()
}
