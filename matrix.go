package main

import (
	"fmt"

	. "github.com/ttpr0/go-navigation/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// matrix request and response
//**********************************************************

type MatrixRequest struct {
	Sources      []string `json:"sources"`
	Destinations []string `json:"destinations"`
}

type MatrixResponse struct {
	Sources      []string      `json:"sources"`
	Destinations []string      `json:"destinations"`
	Distances    Matrix[int64] `json:"distances"`
}

//**********************************************************
// matrix handler
//**********************************************************

func HandleMatrixRequest(manager *NavigationManager, req MatrixRequest) Result {
	if len(req.Sources) == 0 || len(req.Destinations) == 0 {
		return BadRequest("sources and destinations are required")
	}
	max_cells := manager.GetConfig().Server.MaxMatrix
	if len(req.Sources)*len(req.Destinations) > max_cells {
		return BadRequest(fmt.Sprintf("matrix exceeds %v cells", max_cells))
	}
	slog.Debug(fmt.Sprintf("computing %vx%v matrix", len(req.Sources), len(req.Destinations)))
	matrix := manager.DistanceMatrix(req.Sources, req.Destinations)
	return OK(MatrixResponse{
		Sources:      req.Sources,
		Destinations: req.Destinations,
		Distances:    matrix,
	})
}
