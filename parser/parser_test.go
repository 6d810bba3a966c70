package parser

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-navigation/graph"
	"github.com/ttpr0/go-navigation/landmarks"
	. "github.com/ttpr0/go-navigation/util"
)

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Aga_Khan_University_Hospital", CleanName("Aga Khan University Hospital"))
	assert.Equal(t, "Dr_Ziauddin_Hospital", CleanName("Dr. Ziauddin Hospital"))
	assert.Equal(t, "Peoples_Bus_Stop_North", CleanName("People's Bus-Stop/North"))
	assert.Equal(t, "Civil_Hospital", CleanName("Civil\u00a0Hospital"))
	assert.Equal(t, "Empress_Market", CleanName(" Empress\t\tMarket\n"))
	assert.Equal(t, "Saddar_Bus_Stop", CleanName("Saddar\u2003Bus  Stop"))
}

func TestCleanNamesStayOneToken(t *testing.T) {
	dir := t.TempDir()
	files := DatasetFiles{
		Locations: filepath.Join(dir, "locations.txt"),
		Roads:     filepath.Join(dir, "roads.txt"),
		Landmarks: filepath.Join(dir, "landmarks.txt"),
	}
	ds := &Dataset{
		Nodes: List[orb.Point]{{0, 0}, {0, 0}, {0, 0}},
		Roads: List[DatasetRoad]{{0, 1, 40}, {1, 2, 60}},
		Landmarks: List[DatasetLandmark]{
			{CleanName("Civil\u00a0Hospital"), 0},
			{CleanName("Empress\tMarket"), 1},
			{"Home", 2},
		},
	}
	require.NoError(t, WriteDataset(ds, files, "test.pbf"))

	index, err := landmarks.LoadFile(files.Landmarks)
	require.NoError(t, err)
	assert.Equal(t, 3, index.Length())
	for name, id := range map[string]string{"Civil_Hospital": "0", "Empress_Market": "1", "Home": "2"} {
		node, ok := index.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, id, node)
	}
}

func TestDrivingDecoder(t *testing.T) {
	decoder := &DrivingDecoder{}

	assert.True(t, decoder.IsValidHighway(Dict[string, string]{"highway": "primary"}))
	assert.False(t, decoder.IsValidHighway(Dict[string, string]{"highway": "footway"}))
	assert.False(t, decoder.IsValidHighway(Dict[string, string]{"amenity": "hospital"}))

	assert.True(t, decoder.IsLandmark(Dict[string, string]{"amenity": "hospital", "name": "Civil Hospital"}))
	assert.True(t, decoder.IsLandmark(Dict[string, string]{"amenity": "fuel", "name": "PSO Petrol Pump"}))
	assert.False(t, decoder.IsLandmark(Dict[string, string]{"amenity": "hospital"}))
	assert.False(t, decoder.IsLandmark(Dict[string, string]{"amenity": "bench", "name": "Bench"}))
}

func TestLineLength(t *testing.T) {
	a := orb.Point{67.0, 24.85}
	b := orb.Point{67.01, 24.85}
	c := orb.Point{67.01, 24.86}

	points := List[orb.Point]{a, b, c}
	want := geo.Distance(a, b) + geo.Distance(b, c)
	assert.InDelta(t, want, _LineLength(points), 1e-6)
	assert.Equal(t, 0.0, _LineLength(List[orb.Point]{a}))
}

func TestBuildDataset(t *testing.T) {
	nodes := List[orb.Point]{{67.00, 24.85}, {67.01, 24.85}, {67.02, 24.85}}
	roads := List[DatasetRoad]{
		{NodeA: 0, NodeB: 1, Length: 1100},
		{NodeA: 1, NodeB: 0, Length: 1010},
		{NodeA: 1, NodeB: 2, Length: 1012},
	}
	refs := Dict[int64, orb.Point]{
		10: {67.019, 24.851},
		11: {67.021, 24.849},
	}
	temp := List[TempLandmark]{
		{Name: "Civil Hospital", Point: orb.Point{67.001, 24.851}},
		{Name: "Civil Hospital", Point: orb.Point{67.02, 24.85}},
		{Name: "Empress Market", Nodes: List[int64]{10, 11}},
		{Name: "Nowhere", Nodes: List[int64]{99}},
	}

	ds := _BuildDataset(nodes, roads, temp, refs)

	require.Equal(t, 2, ds.Roads.Length())
	assert.Equal(t, int32(1010), ds.Roads[0].Length)
	require.Equal(t, 2, ds.Landmarks.Length())
	assert.Equal(t, DatasetLandmark{Name: "Civil_Hospital", Node: 0}, ds.Landmarks[0])
	assert.Equal(t, DatasetLandmark{Name: "Empress_Market", Node: 2}, ds.Landmarks[1])
}

func TestWriteDatasetIsLoadable(t *testing.T) {
	dir := t.TempDir()
	files := DatasetFiles{
		Locations: filepath.Join(dir, "locations.txt"),
		Roads:     filepath.Join(dir, "roads.txt"),
		Landmarks: filepath.Join(dir, "landmarks.txt"),
	}
	ds := &Dataset{
		Nodes:     List[orb.Point]{{0, 0}, {0, 0}, {0, 0}},
		Roads:     List[DatasetRoad]{{0, 1, 40}, {1, 2, 60}},
		Landmarks: List[DatasetLandmark]{{"Civil_Hospital", 2}, {"Home", 0}},
	}
	require.NoError(t, WriteDataset(ds, files, "test.pbf"))

	g, err := graph.BuildGraph(files.Locations, files.Roads)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	index, err := landmarks.LoadFile(files.Landmarks)
	require.NoError(t, err)
	id, ok := index.Resolve("civil hospital")
	require.True(t, ok)
	assert.Equal(t, "2", id)

	meta, err := ReadJSONFromFile[DatasetMeta](filepath.Join(dir, "meta.json"))
	require.NoError(t, err)
	assert.Equal(t, DatasetMeta{Source: "test.pbf", Nodes: 3, Roads: 2, Landmarks: 2}, meta)
}

const testOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="24.850" lon="67.000"/>
  <node id="2" lat="24.850" lon="67.010"/>
  <node id="3" lat="24.850" lon="67.020"/>
  <node id="4" lat="24.860" lon="67.010"/>
  <node id="5" lat="24.851" lon="67.005"/>
  <node id="6" lat="24.8501" lon="67.0201">
    <tag k="amenity" v="hospital"/>
    <tag k="name" v="Civil Hospital"/>
  </node>
  <node id="7" lat="24.8505" lon="66.9995"/>
  <node id="8" lat="24.8495" lon="67.0005"/>
  <node id="9" lat="24.870" lon="67.050"/>
  <node id="10" lat="24.871" lon="67.051"/>
  <way id="100">
    <nd ref="1"/>
    <nd ref="5"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="primary"/>
  </way>
  <way id="101">
    <nd ref="2"/>
    <nd ref="4"/>
    <tag k="highway" v="residential"/>
  </way>
  <way id="102">
    <nd ref="9"/>
    <nd ref="10"/>
    <tag k="highway" v="footway"/>
  </way>
  <way id="103">
    <nd ref="7"/>
    <nd ref="8"/>
    <tag k="tourism" v="attraction"/>
    <tag k="name" v="Frere Hall"/>
  </way>
</osm>
`

func openTestOSM(passes *List[ScanPass]) func(pass ScanPass) (osm.Scanner, error) {
	return func(pass ScanPass) (osm.Scanner, error) {
		passes.Add(pass)
		return osmxml.New(context.Background(), strings.NewReader(testOSM)), nil
	}
}

func TestScanDataset(t *testing.T) {
	passes := NewList[ScanPass](3)
	ds, err := ScanDataset(openTestOSM(&passes), &DrivingDecoder{})
	require.NoError(t, err)
	assert.Equal(t, List[ScanPass]{WAY_PASS, NODE_PASS, SPLIT_PASS}, passes)

	p1 := orb.Point{67.000, 24.850}
	p2 := orb.Point{67.010, 24.850}
	p3 := orb.Point{67.020, 24.850}
	p4 := orb.Point{67.010, 24.860}
	p5 := orb.Point{67.005, 24.851}

	// node 5 lies inside a single way and the footway is no road
	require.Equal(t, List[orb.Point]{p1, p2, p3, p4}, ds.Nodes)

	// way 100 is split at node 2 which it shares with way 101
	require.Equal(t, 3, ds.Roads.Length())
	assert.Equal(t, DatasetRoad{0, 1, int32(math.Round(geo.Distance(p1, p5) + geo.Distance(p5, p2)))}, ds.Roads[0])
	assert.Equal(t, DatasetRoad{1, 2, int32(math.Round(geo.Distance(p2, p3)))}, ds.Roads[1])
	assert.Equal(t, DatasetRoad{1, 3, int32(math.Round(geo.Distance(p2, p4)))}, ds.Roads[2])

	// way landmarks are collected in the first pass, node landmarks in the second
	require.Equal(t, 2, ds.Landmarks.Length())
	assert.Equal(t, DatasetLandmark{Name: "Frere_Hall", Node: 0}, ds.Landmarks[0])
	assert.Equal(t, DatasetLandmark{Name: "Civil_Hospital", Node: 2}, ds.Landmarks[1])
}

func TestScanDatasetOpenError(t *testing.T) {
	fail := errors.New("seek failed")
	calls := 0
	open := func(pass ScanPass) (osm.Scanner, error) {
		calls += 1
		if pass == NODE_PASS {
			return nil, fail
		}
		return osmxml.New(context.Background(), strings.NewReader(testOSM)), nil
	}

	_, err := ScanDataset(open, &DrivingDecoder{})
	assert.ErrorIs(t, err, fail)
	assert.Equal(t, 2, calls)
}

func TestParseDatasetMissingFile(t *testing.T) {
	_, err := ParseDataset(filepath.Join(t.TempDir(), "missing.pbf"), &DrivingDecoder{})
	assert.True(t, os.IsNotExist(err) || strings.Contains(err.Error(), "no such file"))
}
