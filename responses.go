package main

import (
	"github.com/ttpr0/go-navigation/algorithm"
	"github.com/ttpr0/go-navigation/graph"
	"github.com/ttpr0/go-navigation/landmarks"
	"github.com/ttpr0/go-navigation/routing"
	. "github.com/ttpr0/go-navigation/util"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

//**********************************************************
// route response
//**********************************************************

type RouteResponse struct {
	From     string              `json:"from"`
	To       string              `json:"to"`
	Status   routing.RouteStatus `json:"status"`
	Distance int64               `json:"distance"`
	Nodes    List[string]        `json:"nodes"`
	Stops    List[string]        `json:"stops"`
}

// Builds the stop list of a path. Landmark nodes show their display name,
// other nodes are only listed by id when detailed is set.
func NewRouteResponse(from, to string, result routing.PathResult, index *landmarks.LandmarkIndex, detailed bool) RouteResponse {
	resp := RouteResponse{
		From:   from,
		To:     to,
		Status: result.Status,
		Nodes:  NewList[string](result.Nodes.Length()),
		Stops:  NewList[string](result.Nodes.Length()),
	}
	if !result.IsReachable() {
		resp.Distance = -1
		return resp
	}
	resp.Distance = result.Distance
	for _, id := range result.Nodes {
		resp.Nodes.Add(id)
		name, ok := index.DisplayNameFor(id)
		if ok {
			resp.Stops.Add(name)
		} else if detailed {
			resp.Stops.Add(id)
		}
	}
	return resp
}

//**********************************************************
// nearest response
//**********************************************************

type NearestResponse struct {
	From     string         `json:"from"`
	Status   string         `json:"status"`
	Name     string         `json:"name,omitempty"`
	Route    *RouteResponse `json:"route,omitempty"`
	Facility string         `json:"facility,omitempty"`
}

//**********************************************************
// landmark responses
//**********************************************************

type LandmarksResponse struct {
	Total  int          `json:"total"`
	Offset int          `json:"offset"`
	Names  List[string] `json:"names"`
}

type ResolveResponse struct {
	Name   string `json:"name"`
	NodeID string `json:"node_id"`
}

type StatsResponse struct {
	Nodes      int                      `json:"nodes"`
	Edges      int                      `json:"edges"`
	Landmarks  int                      `json:"landmarks"`
	Load       graph.LoadStats          `json:"load"`
	Components algorithm.ComponentStats `json:"components"`
}
