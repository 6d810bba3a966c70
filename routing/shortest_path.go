package routing

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ttpr0/go-navigation/graph"
	. "github.com/ttpr0/go-navigation/util"
)

var ErrUnknownNode = errors.New("routing: unknown node")

//*******************************************
// route status
//*******************************************

type RouteStatus byte

const (
	ROUTE_FOUND          RouteStatus = 0
	SOURCE_ISOLATED      RouteStatus = 1
	DESTINATION_ISOLATED RouteStatus = 2
	DISCONNECTED         RouteStatus = 3
)

func (self RouteStatus) String() string {
	switch self {
	case ROUTE_FOUND:
		return "found"
	case SOURCE_ISOLATED:
		return "source-isolated"
	case DESTINATION_ISOLATED:
		return "destination-isolated"
	case DISCONNECTED:
		return "disconnected"
	default:
		panic("unknown route status")
	}
}
func (self RouteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}

//*******************************************
// path result
//*******************************************

type PathResult struct {
	Status      RouteStatus  `json:"status"`
	Distance    int64        `json:"distance"`
	Nodes       List[string] `json:"nodes"`
	Source      string       `json:"source"`
	Destination string       `json:"destination"`
}

func (self PathResult) IsReachable() bool {
	return self.Status == ROUTE_FOUND
}

// Walks the predecessors of dest back to the start of the search.
//
// If dest was not reached the result carries INF, no nodes and a status
// telling whether the source or destination has no roads at all or both
// belong to different components.
func GetShortestPath(g graph.IGraph, ctx *SearchContext, dest int32) PathResult {
	start := ctx.Start()
	result := PathResult{
		Source:      g.GetNode(start).ID,
		Destination: g.GetNode(dest).ID,
	}
	if !ctx.IsReachable(dest) {
		result.Distance = INF
		result.Nodes = NewList[string](0)
		if g.GetNodeDegree(start) == 0 {
			result.Status = SOURCE_ISOLATED
		} else if g.GetNodeDegree(dest) == 0 {
			result.Status = DESTINATION_ISOLATED
		} else {
			result.Status = DISCONNECTED
		}
		return result
	}

	path := NewList[string](10)
	curr_id := dest
	for curr_id != -1 {
		path.Add(g.GetNode(curr_id).ID)
		if curr_id == start {
			break
		}
		curr_id = ctx.GetPredecessor(curr_id)
	}
	path.Reverse()

	result.Status = ROUTE_FOUND
	result.Distance = ctx.GetDistance(dest)
	result.Nodes = path
	return result
}

// Computes the shortest route between two node ids.
func ShortestRoute(g graph.IGraph, source string, dest string) (PathResult, error) {
	source_id, ok := g.GetNodeIndex(source)
	if !ok {
		return PathResult{}, fmt.Errorf("%w: %s", ErrUnknownNode, source)
	}
	dest_id, ok := g.GetNodeIndex(dest)
	if !ok {
		return PathResult{}, fmt.Errorf("%w: %s", ErrUnknownNode, dest)
	}
	ctx := CalcDijkstra(g, source_id)
	return GetShortestPath(g, ctx, dest_id), nil
}
