package graph

//*******************************************
// edgeref struct
//*******************************************

// Reference to an edge as seen from one of its endpoints.
type EdgeRef struct {
	EdgeID  int32
	OtherID int32
}

//*******************************************
// load statistics
//*******************************************

type LoadStats struct {
	Nodes          int `json:"nodes"`
	DuplicateNodes int `json:"duplicate_nodes"`
	Edges          int `json:"edges"`
	DroppedEdges   int `json:"dropped_edges"`
	NegativeEdges  int `json:"negative_edges"`
}
