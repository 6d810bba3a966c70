package main

import (
	"errors"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ttpr0/go-navigation/nearest"
	"github.com/ttpr0/go-navigation/routing"
	. "github.com/ttpr0/go-navigation/util"
)

// Registers all query endpoints of the manager on the router.
func MapRoutes(app *mux.Router, manager *NavigationManager) {
	MapGet(app, "/v0/route", func(req RouteRequest) Result {
		return HandleRouteRequest(manager, req)
	})
	MapGet(app, "/v0/nearest", func(req NearestRequest) Result {
		return HandleNearestRequest(manager, req)
	})
	MapGet(app, "/v0/landmarks", func(req LandmarksRequest) Result {
		return HandleLandmarksRequest(manager, req)
	})
	MapGet(app, "/v0/resolve", func(req ResolveRequest) Result {
		return HandleResolveRequest(manager, req)
	})
	MapPost(app, "/v0/matrix", func(req MatrixRequest) Result {
		return HandleMatrixRequest(manager, req)
	})
	MapGet(app, "/v0/stats", func(none) Result {
		return HandleStatsRequest(manager)
	})
	app.Handle("/metrics", promhttp.Handler())
}

//**********************************************************
// routing handlers
//**********************************************************

func HandleRouteRequest(manager *NavigationManager, req RouteRequest) Result {
	if req.From == "" || req.To == "" {
		return BadRequest("from and to are required")
	}
	source, ok := manager.ResolveName(req.From)
	if !ok {
		return BadRequest("unknown location " + req.From)
	}
	dest, ok := manager.ResolveName(req.To)
	if !ok {
		return BadRequest("unknown location " + req.To)
	}
	result, err := manager.ShortestRoute(source, dest)
	if errors.Is(err, routing.ErrUnknownNode) {
		return NotFound(err.Error())
	}
	if err != nil {
		return BadRequest(err.Error())
	}
	index := manager.GetLandmarks()
	from, _ := index.DisplayNameFor(source)
	to, _ := index.DisplayNameFor(dest)
	return OK(NewRouteResponse(from, to, result, index, req.Detailed))
}

func HandleNearestRequest(manager *NavigationManager, req NearestRequest) Result {
	if req.From == "" {
		return BadRequest("from is required")
	}
	start, ok := manager.ResolveName(req.From)
	if !ok {
		return BadRequest("unknown location " + req.From)
	}
	var facility nearest.Facility
	if req.Facility != "" {
		facility, ok = nearest.FacilityFor(req.Facility)
		if !ok {
			return BadRequest("unknown facility " + req.Facility)
		}
	} else {
		if req.Keyword == "" {
			return BadRequest("either facility or keyword is required")
		}
		mode := nearest.SUBSTRING
		if req.Mode != "" {
			m, err := nearest.MatchModeFromString(req.Mode)
			if err != nil {
				return BadRequest(err.Error())
			}
			mode = m
		}
		facility = nearest.Facility{Mode: mode, Keyword: req.Keyword}
	}

	result := manager.NearestFacility(start, facility.Mode, facility.Keyword)
	index := manager.GetLandmarks()
	from, _ := index.DisplayNameFor(start)
	resp := NearestResponse{
		From:     from,
		Status:   result.Status.String(),
		Name:     result.Name,
		Facility: req.Facility,
	}
	if result.Status == nearest.FOUND {
		route := NewRouteResponse(from, result.Name, result.Path, index, req.Detailed)
		resp.Route = &route
	}
	return OK(resp)
}

//**********************************************************
// landmark handlers
//**********************************************************

func HandleLandmarksRequest(manager *NavigationManager, req LandmarksRequest) Result {
	if req.Offset < 0 || req.Limit < 0 {
		return BadRequest("offset and limit must not be negative")
	}
	limit := req.Limit
	if limit == 0 {
		limit = manager.GetConfig().Server.PageSize
	}
	index := manager.GetLandmarks()
	if req.Pattern == "" {
		return OK(LandmarksResponse{
			Total:  index.Length(),
			Offset: req.Offset,
			Names:  index.Page(req.Offset, limit),
		})
	}
	matches, err := index.Match(req.Pattern)
	if err != nil {
		return BadRequest(err.Error())
	}
	page := NewList[string](0)
	if req.Offset < matches.Length() {
		end := req.Offset + min(limit, matches.Length()-req.Offset)
		page = NewList[string](end - req.Offset)
		for _, name := range matches[req.Offset:end] {
			page.Add(name)
		}
	}
	return OK(LandmarksResponse{
		Total:  matches.Length(),
		Offset: req.Offset,
		Names:  page,
	})
}

func HandleResolveRequest(manager *NavigationManager, req ResolveRequest) Result {
	id, ok := manager.ResolveName(req.Name)
	if !ok {
		return NotFound("unknown location " + req.Name)
	}
	name, _ := manager.GetLandmarks().DisplayNameFor(id)
	return OK(ResolveResponse{
		Name:   name,
		NodeID: id,
	})
}

func HandleStatsRequest(manager *NavigationManager) Result {
	g := manager.GetGraph()
	return OK(StatsResponse{
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		Landmarks:  manager.GetLandmarks().Length(),
		Load:       g.Stats(),
		Components: manager.GetComponents(),
	})
}
