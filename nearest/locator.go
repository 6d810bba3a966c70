package nearest

import (
	"encoding/json"

	"github.com/ttpr0/go-navigation/graph"
	"github.com/ttpr0/go-navigation/landmarks"
	"github.com/ttpr0/go-navigation/routing"
)

//*******************************************
// nearest status
//*******************************************

type NearestStatus byte

const (
	FOUND          NearestStatus = 0
	UNKNOWN_START  NearestStatus = 1
	START_ISOLATED NearestStatus = 2
	NO_MATCH       NearestStatus = 3
)

func (self NearestStatus) String() string {
	switch self {
	case FOUND:
		return "found"
	case UNKNOWN_START:
		return "unknown-start"
	case START_ISOLATED:
		return "start-isolated"
	case NO_MATCH:
		return "no-match"
	default:
		panic("unknown nearest status")
	}
}
func (self NearestStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}

type NearestResult struct {
	Status NearestStatus      `json:"status"`
	Name   string             `json:"name,omitempty"`
	Path   routing.PathResult `json:"path"`
}

//*******************************************
// service locator
//*******************************************

type SearchFunc func(g graph.IGraph, start int32) *routing.SearchContext

// Finds the closest landmark matching a keyword. Safe for concurrent use.
type ServiceLocator struct {
	graph     graph.IGraph
	landmarks *landmarks.LandmarkIndex
	search    SearchFunc
}

func NewServiceLocator(g graph.IGraph, index *landmarks.LandmarkIndex) *ServiceLocator {
	return &ServiceLocator{
		graph:     g,
		landmarks: index,
		search:    routing.CalcDijkstra,
	}
}

// Searches the landmark closest to the start node whose normalized name
// matches the keyword in the given mode.
//
// A start node without roads fails with START_ISOLATED before any search.
// Landmarks are scanned in display name order, on equal distance the first
// one wins.
func (self *ServiceLocator) FindNearest(start string, mode MatchMode, keyword string) NearestResult {
	start_id, ok := self.graph.GetNodeIndex(start)
	if !ok {
		return NearestResult{Status: UNKNOWN_START}
	}
	if self.graph.GetNodeDegree(start_id) == 0 {
		return NearestResult{Status: START_ISOLATED}
	}

	ctx := self.search(self.graph, start_id)

	keyword = landmarks.Normalize(keyword)
	closest_id := int32(-1)
	closest_name := ""
	min_dist := routing.INF
	for entry := range self.landmarks.Entries() {
		if !mode.Matches(entry.NormalizedName, keyword) {
			continue
		}
		target, ok := self.graph.GetNodeIndex(entry.NodeID)
		if !ok {
			continue
		}
		dist := ctx.GetDistance(target)
		if dist < min_dist {
			min_dist = dist
			closest_id = target
			closest_name = entry.DisplayName
		}
	}
	if closest_id == -1 {
		return NearestResult{Status: NO_MATCH}
	}
	return NearestResult{
		Status: FOUND,
		Name:   closest_name,
		Path:   routing.GetShortestPath(self.graph, ctx, closest_id),
	}
}

// Searches the closest landmark of a named facility kind.
func (self *ServiceLocator) FindFacility(start string, facility Facility) NearestResult {
	return self.FindNearest(start, facility.Mode, facility.Keyword)
}
