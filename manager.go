package main

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/ttpr0/go-navigation/algorithm"
	"github.com/ttpr0/go-navigation/graph"
	"github.com/ttpr0/go-navigation/landmarks"
	"github.com/ttpr0/go-navigation/nearest"
	"github.com/ttpr0/go-navigation/routing"
	. "github.com/ttpr0/go-navigation/util"
	"golang.org/x/exp/slog"
)

var ErrEmptyGraph = errors.New("road graph is empty")

// Loads the graph and landmarks named in the config. An empty graph is
// fatal, a missing landmarks file only leaves the index empty.
func NewNavigationManager(config Config) (*NavigationManager, error) {
	g, err := graph.BuildGraph(config.Data.Locations, config.Data.Roads)
	if err != nil {
		return nil, err
	}
	if g.IsEmpty() {
		return nil, ErrEmptyGraph
	}
	index, err := landmarks.LoadFile(config.Data.Landmarks)
	if err != nil {
		slog.Warn("landmarks not loaded: " + err.Error())
	}
	manager := NewNavigationManagerFrom(g, index)
	manager.config = config
	return manager, nil
}

func NewNavigationManagerFrom(g *graph.Graph, index *landmarks.LandmarkIndex) *NavigationManager {
	groups := algorithm.ConnectedComponents(g)
	components := algorithm.GetComponentStats(g, groups)
	slog.Info(fmt.Sprintf("road graph has %v components, largest with %v nodes", components.Components, components.Largest))
	GraphNodes.Set(float64(g.NodeCount()))
	GraphEdges.Set(float64(g.EdgeCount()))

	return &NavigationManager{
		config:     DefaultConfig(),
		graph:      g,
		landmarks:  index,
		locator:    nearest.NewServiceLocator(g, index),
		components: components,
	}
}

// Owns the read-only graph and landmark index. All methods can be called
// concurrently.
type NavigationManager struct {
	config     Config
	graph      *graph.Graph
	landmarks  *landmarks.LandmarkIndex
	locator    *nearest.ServiceLocator
	components algorithm.ComponentStats
}

func (self *NavigationManager) GetGraph() *graph.Graph {
	return self.graph
}

func (self *NavigationManager) GetLandmarks() *landmarks.LandmarkIndex {
	return self.landmarks
}

func (self *NavigationManager) GetComponents() algorithm.ComponentStats {
	return self.components
}

// Resolves a user supplied landmark name to a node id.
func (self *NavigationManager) ResolveName(name string) (string, bool) {
	return self.landmarks.Resolve(name)
}

func (self *NavigationManager) ShortestRoute(source string, dest string) (routing.PathResult, error) {
	t := time.Now()
	result, err := routing.ShortestRoute(self.graph, source, dest)
	QueryDuration.WithLabelValues("route").Observe(time.Since(t).Seconds())
	if err != nil {
		QueriesTotal.WithLabelValues("route", "error").Inc()
		return result, err
	}
	QueriesTotal.WithLabelValues("route", result.Status.String()).Inc()
	return result, nil
}

func (self *NavigationManager) NearestFacility(start string, mode nearest.MatchMode, keyword string) nearest.NearestResult {
	t := time.Now()
	result := self.locator.FindNearest(start, mode, keyword)
	QueryDuration.WithLabelValues("nearest").Observe(time.Since(t).Seconds())
	QueriesTotal.WithLabelValues("nearest", result.Status.String()).Inc()
	return result
}

func (self *NavigationManager) GetConfig() Config {
	return self.config
}

// Computes a distance matrix between landmark names. Names that cannot be
// resolved to a graph node get -1 in every cell of their row or column.
func (self *NavigationManager) DistanceMatrix(sources []string, destinations []string) Matrix[int64] {
	t := time.Now()
	source_nodes := self._MapNamesToNodes(sources)
	target_nodes := self._MapNamesToNodes(destinations)
	matrix := routing.CalcDistanceMatrix(self.graph, source_nodes, target_nodes, runtime.NumCPU())
	QueryDuration.WithLabelValues("matrix").Observe(time.Since(t).Seconds())
	QueriesTotal.WithLabelValues("matrix", _MatrixStatus(matrix)).Inc()
	return matrix
}

// "found" if every source reaches at least one destination, "unreachable"
// if none does and "partial" otherwise.
func _MatrixStatus(matrix Matrix[int64]) string {
	unreachable := 0
	for s := 0; s < matrix.Rows(); s++ {
		reachable := false
		for t := 0; t < matrix.Cols(); t++ {
			if matrix.Get(s, t) != -1 {
				reachable = true
				break
			}
		}
		if !reachable {
			unreachable += 1
		}
	}
	switch {
	case unreachable == 0:
		return "found"
	case unreachable == matrix.Rows():
		return "unreachable"
	default:
		return "partial"
	}
}

func (self *NavigationManager) _MapNamesToNodes(names []string) Array[int32] {
	nodes := NewArray[int32](len(names))
	for i, name := range names {
		nodes[i] = -1
		id, ok := self.landmarks.Resolve(name)
		if !ok {
			continue
		}
		node, ok := self.graph.GetNodeIndex(id)
		if ok {
			nodes[i] = node
		}
	}
	return nodes
}
