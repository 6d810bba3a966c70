package main

//**********************************************************
// query requests
//**********************************************************

type RouteRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	// show unnamed junctions by their node id
	Detailed bool `json:"detailed"`
}

type NearestRequest struct {
	From string `json:"from"`
	// named preset, takes precedence over keyword and mode
	Facility string `json:"facility"`
	Keyword  string `json:"keyword"`
	Mode     string `json:"mode"`
	Detailed bool   `json:"detailed"`
}

//**********************************************************
// landmark requests
//**********************************************************

type LandmarksRequest struct {
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
	Pattern string `json:"pattern"`
}

type ResolveRequest struct {
	Name string `json:"name"`
}
