package parser

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	. "github.com/ttpr0/go-navigation/util"
	"golang.org/x/exp/slog"
)

// Extracts the road network and the landmarks of an OSM pbf file.
func ParseDataset(pbf_file string, decoder IOSMDecoder) (*Dataset, error) {
	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	open := func(pass ScanPass) (osm.Scanner, error) {
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewinding %s: %w", pbf_file, err)
		}
		scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
		scanner.SkipRelations = true
		if pass == NODE_PASS {
			scanner.SkipWays = true
		} else {
			scanner.SkipNodes = true
		}
		return scanner, nil
	}
	return ScanDataset(open, decoder)
}

type ScanPass byte

const (
	WAY_PASS   ScanPass = 0
	NODE_PASS  ScanPass = 1
	SPLIT_PASS ScanPass = 2
)

// Builds a dataset from three scans over the same OSM data.
//
// Ways are read first to find the nodes used by roads, nodes second for
// coordinates and point landmarks, ways again to split roads into edges at
// every node shared by more than one way. Scanners may deliver any object
// type, the handlers only look at the ones of their pass.
func ScanDataset(open func(pass ScanPass) (osm.Scanner, error), decoder IOSMDecoder) (*Dataset, error) {
	osm_nodes := NewDict[int64, TempNode](10000)
	index_mapping := NewDict[int64, int32](10000)
	landmark_refs := NewDict[int64, orb.Point](100)
	landmarks := NewList[TempLandmark](100)
	nodes := NewList[orb.Point](10000)
	roads := NewList[DatasetRoad](10000)

	scanner, err := open(WAY_PASS)
	if err != nil {
		return nil, err
	}
	err = _InitWayHandler(scanner, decoder, &osm_nodes, &landmarks, &landmark_refs)
	scanner.Close()
	if err != nil {
		return nil, fmt.Errorf("scanning ways: %w", err)
	}
	scanner, err = open(NODE_PASS)
	if err != nil {
		return nil, err
	}
	err = _NodeHandler(scanner, decoder, &osm_nodes, &nodes, &index_mapping, &landmarks, &landmark_refs)
	scanner.Close()
	if err != nil {
		return nil, fmt.Errorf("scanning nodes: %w", err)
	}
	scanner, err = open(SPLIT_PASS)
	if err != nil {
		return nil, err
	}
	err = _WayHandler(scanner, decoder, &roads, &osm_nodes, &index_mapping)
	scanner.Close()
	if err != nil {
		return nil, fmt.Errorf("splitting ways: %w", err)
	}
	slog.Info(fmt.Sprintf("parsed %v nodes, %v roads, %v landmark candidates", nodes.Length(), roads.Length(), landmarks.Length()))

	return _BuildDataset(nodes, roads, landmarks, landmark_refs), nil
}

// Merges parallel roads, places way landmarks at their centroid and snaps
// every landmark to its closest node. Landmark names are unique, the first
// feature with a name keeps it.
func _BuildDataset(nodes List[orb.Point], roads List[DatasetRoad], landmarks List[TempLandmark], landmark_refs Dict[int64, orb.Point]) *Dataset {
	ds := &Dataset{
		Nodes:     nodes,
		Roads:     NewList[DatasetRoad](roads.Length()),
		Landmarks: NewList[DatasetLandmark](landmarks.Length()),
	}

	road_index := NewDict[[2]int32, int](roads.Length())
	for _, road := range roads {
		key := [2]int32{min(road.NodeA, road.NodeB), max(road.NodeA, road.NodeB)}
		if road_index.ContainsKey(key) {
			i := road_index[key]
			if road.Length < ds.Roads[i].Length {
				ds.Roads[i].Length = road.Length
			}
			continue
		}
		road_index[key] = ds.Roads.Length()
		ds.Roads.Add(road)
	}

	names := NewDict[string, bool](landmarks.Length())
	for _, landmark := range landmarks {
		name := CleanName(landmark.Name)
		if name == "" || names.ContainsKey(name) {
			continue
		}
		point := landmark.Point
		if landmark.Nodes.Length() > 0 {
			points := NewList[orb.Point](landmark.Nodes.Length())
			for _, ref := range landmark.Nodes {
				if landmark_refs.ContainsKey(ref) {
					points.Add(landmark_refs[ref])
				}
			}
			if points.Length() == 0 {
				continue
			}
			point = _Centroid(points)
		}
		node := _ClosestNode(ds.Nodes, point)
		if node == -1 {
			continue
		}
		names[name] = true
		ds.Landmarks.Add(DatasetLandmark{Name: name, Node: node})
	}
	return ds
}

//*******************************************
// osm handler methods
//*******************************************

func _InitWayHandler(scanner osm.Scanner, decoder IOSMDecoder, osm_nodes *Dict[int64, TempNode], landmarks *List[TempLandmark], landmark_refs *Dict[int64, orb.Point]) error {
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if decoder.IsLandmark(tags) {
				refs := NewList[int64](len(object.Nodes))
				for _, id := range object.Nodes.NodeIDs() {
					ref := id.FeatureID().Ref()
					refs.Add(ref)
					landmark_refs.Set(ref, orb.Point{})
				}
				landmarks.Add(TempLandmark{Name: tags.Get("name"), Nodes: refs})
			}
			if !decoder.IsValidHighway(tags) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			if l < 2 {
				continue
			}
			for i := 0; i < l; i++ {
				ndref := nodes[i].FeatureID().Ref()
				node := (*osm_nodes)[ndref]
				node.Count += 1
				(*osm_nodes)[ndref] = node
			}
			// way endpoints always become graph nodes
			node_a := (*osm_nodes)[nodes[0].FeatureID().Ref()]
			node_b := (*osm_nodes)[nodes[l-1].FeatureID().Ref()]
			node_a.Count += 1
			node_b.Count += 1
			(*osm_nodes)[nodes[0].FeatureID().Ref()] = node_a
			(*osm_nodes)[nodes[l-1].FeatureID().Ref()] = node_b
		default:
			continue
		}
	}
	return scanner.Err()
}

func _NodeHandler(scanner osm.Scanner, decoder IOSMDecoder, osm_nodes *Dict[int64, TempNode], nodes *List[orb.Point], index_mapping *Dict[int64, int32], landmarks *List[TempLandmark], landmark_refs *Dict[int64, orb.Point]) error {
	c := 0
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := object.FeatureID().Ref()
			point := orb.Point{object.Lon, object.Lat}
			if landmark_refs.ContainsKey(id) {
				landmark_refs.Set(id, point)
			}
			tags := Dict[string, string](object.TagMap())
			if decoder.IsLandmark(tags) {
				landmarks.Add(TempLandmark{Name: tags.Get("name"), Point: point})
			}
			if !osm_nodes.ContainsKey(id) {
				continue
			}
			c += 1
			if c%100000 == 0 {
				slog.Debug(fmt.Sprintf("%v road nodes", c))
			}
			on := osm_nodes.Get(id)
			if on.Count > 1 {
				index_mapping.Set(id, int32(nodes.Length()))
				nodes.Add(point)
			}
			on.Point = point
			osm_nodes.Set(id, on)
		default:
			continue
		}
	}
	return scanner.Err()
}

func _WayHandler(scanner osm.Scanner, decoder IOSMDecoder, roads *List[DatasetRoad], osm_nodes *Dict[int64, TempNode], index_mapping *Dict[int64, int32]) error {
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			if l < 2 {
				continue
			}
			start := nodes[0].FeatureID().Ref()
			points := NewList[orb.Point](l)
			points.Add(osm_nodes.Get(start).Point)
			for i := 1; i < l; i++ {
				curr := nodes[i].FeatureID().Ref()
				on := osm_nodes.Get(curr)
				points.Add(on.Point)
				if on.Count > 1 && curr != start {
					if !index_mapping.ContainsKey(start) || !index_mapping.ContainsKey(curr) {
						// node missing from the extract
						start = curr
						points = NewList[orb.Point](l - i)
						points.Add(on.Point)
						continue
					}
					roads.Add(DatasetRoad{
						NodeA:  index_mapping.Get(start),
						NodeB:  index_mapping.Get(curr),
						Length: int32(math.Round(_LineLength(points))),
					})
					start = curr
					points = NewList[orb.Point](l - i)
					points.Add(on.Point)
				}
			}
		default:
			continue
		}
	}
	return scanner.Err()
}
