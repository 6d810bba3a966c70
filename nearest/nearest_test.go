package nearest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-navigation/graph"
	"github.com/ttpr0/go-navigation/landmarks"
	"github.com/ttpr0/go-navigation/routing"
)

// 1 --4-- 2 --2-- 3 --7-- 4      6 --1-- 7
// |                               (8 isolated)
// +---9-- 5
const (
	testLocations = "1 2 3 4 5 6 7 8"
	testRoads     = "1 2 4 2 3 2 3 4 7 1 5 9 6 7 1"
	testLandmarks = `
Home 1
Bus_Stop_North 3
Business_Park 2
Civil_Hospital 4
Aga_Khan_Hospital 5
Petrol_Pump_5 4
Main_Petrol_Station 5
Petrol_Museum 2
Island_Hospital 7
Lonely_House 8
Ghost_Hospital 99
Other_Home 6
Zia_Hospital 4
`
)

func newTestLocator(t *testing.T) *ServiceLocator {
	t.Helper()
	g, err := graph.LoadGraph(strings.NewReader(testLocations), strings.NewReader(testRoads))
	require.NoError(t, err)
	index, err := landmarks.Load(strings.NewReader(testLandmarks))
	require.NoError(t, err)
	return NewServiceLocator(g, index)
}

func TestMatchModes(t *testing.T) {
	assert.True(t, WHOLE_WORD.Matches("bus_stop_1", "bus"))
	assert.False(t, WHOLE_WORD.Matches("business_park", "bus"))
	assert.True(t, WHOLE_WORD.Matches("main_bus", "bus"))
	assert.True(t, SUBSTRING.Matches("business_park", "bus"))

	assert.True(t, COMPOUND_OR.Matches(landmarks.Normalize("Petrol_Pump_5"), ""))
	assert.True(t, COMPOUND_OR.Matches(landmarks.Normalize("Main_Petrol_Station"), ""))
	assert.False(t, COMPOUND_OR.Matches(landmarks.Normalize("Petrol_Museum"), "petrol"))
}

func TestMatchModeFromString(t *testing.T) {
	for _, mode := range []MatchMode{SUBSTRING, WHOLE_WORD, COMPOUND_OR} {
		parsed, err := MatchModeFromString(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	_, err := MatchModeFromString("fuzzy")
	assert.Error(t, err)
}

func TestFindNearestHospital(t *testing.T) {
	locator := newTestLocator(t)

	result := locator.FindNearest("1", SUBSTRING, "hospital")
	require.Equal(t, FOUND, result.Status)
	assert.Equal(t, "Aga_Khan_Hospital", result.Name)
	assert.Equal(t, int64(9), result.Path.Distance)
	assert.Equal(t, []string{"1", "5"}, []string(result.Path.Nodes))
}

func TestFindNearestWholeWord(t *testing.T) {
	locator := newTestLocator(t)

	result := locator.FindNearest("1", WHOLE_WORD, "bus")
	require.Equal(t, FOUND, result.Status)
	assert.Equal(t, "Bus_Stop_North", result.Name)
	assert.Equal(t, int64(6), result.Path.Distance)
	assert.Equal(t, []string{"1", "2", "3"}, []string(result.Path.Nodes))
}

func TestFindNearestCompound(t *testing.T) {
	locator := newTestLocator(t)

	result := locator.FindFacility("1", facilities["fuel"])
	require.Equal(t, FOUND, result.Status)
	assert.Equal(t, "Main_Petrol_Station", result.Name)
	assert.Equal(t, int64(9), result.Path.Distance)

	result = locator.FindNearest("3", COMPOUND_OR, "")
	require.Equal(t, FOUND, result.Status)
	assert.Equal(t, "Petrol_Pump_5", result.Name)
	assert.Equal(t, int64(7), result.Path.Distance)
}

func TestFindNearestTieKeepsFirstName(t *testing.T) {
	locator := newTestLocator(t)

	// Civil_Hospital and Zia_Hospital share node 4
	result := locator.FindNearest("3", SUBSTRING, "hospital")
	require.Equal(t, FOUND, result.Status)
	assert.Equal(t, int64(7), result.Path.Distance)
	assert.Equal(t, "Civil_Hospital", result.Name)
}

func TestFindNearestNormalizesKeyword(t *testing.T) {
	locator := newTestLocator(t)

	result := locator.FindNearest("1", SUBSTRING, "Bus Stop")
	require.Equal(t, FOUND, result.Status)
	assert.Equal(t, "Bus_Stop_North", result.Name)
}

func TestFindNearestUnreachable(t *testing.T) {
	locator := newTestLocator(t)

	// Island_Hospital sits on another component, Ghost_Hospital on no node at all
	result := locator.FindNearest("6", SUBSTRING, "hospital")
	require.Equal(t, FOUND, result.Status)
	assert.Equal(t, "Island_Hospital", result.Name)

	result = locator.FindNearest("6", WHOLE_WORD, "bus")
	assert.Equal(t, NO_MATCH, result.Status)

	result = locator.FindNearest("1", SUBSTRING, "cinema")
	assert.Equal(t, NO_MATCH, result.Status)
}

func TestFindNearestIsolatedStart(t *testing.T) {
	locator := newTestLocator(t)
	searches := 0
	locator.search = func(g graph.IGraph, start int32) *routing.SearchContext {
		searches += 1
		return routing.CalcDijkstra(g, start)
	}

	result := locator.FindNearest("8", SUBSTRING, "hospital")
	assert.Equal(t, START_ISOLATED, result.Status)
	assert.Equal(t, 0, searches)

	locator.FindNearest("1", SUBSTRING, "hospital")
	assert.Equal(t, 1, searches)
}

func TestFindNearestUnknownStart(t *testing.T) {
	locator := newTestLocator(t)

	result := locator.FindNearest("404", SUBSTRING, "hospital")
	assert.Equal(t, UNKNOWN_START, result.Status)
}

func TestFacilityFor(t *testing.T) {
	f, ok := FacilityFor("Bus")
	require.True(t, ok)
	assert.Equal(t, WHOLE_WORD, f.Mode)

	_, ok = FacilityFor("cinema")
	assert.False(t, ok)
}
