package structs

//*******************************************
// graph structs
//*******************************************

// Undirected road segment between two node indices, weight in meters.
type Edge struct {
	NodeA  int32
	NodeB  int32
	Weight int32
}

// Location of the road network, identified by its id from the locations source.
type Node struct {
	ID string
}
