package parser

import (
	"github.com/paulmach/orb"
	. "github.com/ttpr0/go-navigation/util"
)

//*******************************************
// parser structs
//*******************************************

type TempNode struct {
	Point orb.Point
	Count int32
}

type TempLandmark struct {
	Name  string
	Nodes List[int64]
	Point orb.Point
}

//*******************************************
// dataset structs
//*******************************************

// Road network and landmarks extracted from an OSM file. Nodes are
// addressed by their position in Nodes, which is also their id in the
// written text files.
type Dataset struct {
	Nodes     List[orb.Point]
	Roads     List[DatasetRoad]
	Landmarks List[DatasetLandmark]
}

type DatasetRoad struct {
	NodeA  int32
	NodeB  int32
	Length int32
}

type DatasetLandmark struct {
	Name string
	Node int32
}
