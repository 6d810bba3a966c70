package graph

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestGraph(t *testing.T, locations, roads string) *Graph {
	t.Helper()
	g, err := LoadGraph(strings.NewReader(locations), strings.NewReader(roads))
	require.NoError(t, err)
	return g
}

func TestEdgesAreSymmetric(t *testing.T) {
	g := loadTestGraph(t, "A B C", "A B 5\nB C 3")

	a, _ := g.GetNodeIndex("A")
	b, _ := g.GetNodeIndex("B")
	explorer := g.GetGraphExplorer()

	var from_a, from_b []int32
	explorer.ForAdjacentEdges(a, func(ref EdgeRef) {
		from_a = append(from_a, ref.EdgeID)
		assert.Equal(t, b, ref.OtherID)
		assert.Equal(t, int32(5), explorer.GetEdgeWeight(ref))
	})
	explorer.ForAdjacentEdges(b, func(ref EdgeRef) {
		from_b = append(from_b, ref.EdgeID)
	})
	assert.Equal(t, []int32{0}, from_a)
	assert.Contains(t, from_b, int32(0))
	assert.Equal(t, 2, g.GetNodeDegree(b))
}

func TestUnknownEndpointIsDropped(t *testing.T) {
	builder := NewGraphBuilder(4)
	_, err := builder.LoadNodes(strings.NewReader("A B"))
	require.NoError(t, err)

	count, err := builder.LoadEdges(strings.NewReader("A B 5 A X 7 Y B 1"))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	g := builder.Build()
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.Stats().DroppedEdges)
}

func TestDuplicateNodesKeepFirst(t *testing.T) {
	g := loadTestGraph(t, "A B A C A", "A B 1 A C 2")

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.Stats().DuplicateNodes)
	a, ok := g.GetNodeIndex("A")
	require.True(t, ok)
	assert.Equal(t, int32(0), a)
	assert.Equal(t, 2, g.GetNodeDegree(a))
}

func TestNegativeWeightIsRejected(t *testing.T) {
	g := loadTestGraph(t, "A B C", "A B -4 B C 2")

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.Stats().NegativeEdges)
	a, _ := g.GetNodeIndex("A")
	assert.Equal(t, 0, g.GetNodeDegree(a))
}

func TestMalformedWeight(t *testing.T) {
	builder := NewGraphBuilder(4)
	builder.LoadNodes(strings.NewReader("A B C"))

	count, err := builder.LoadEdges(strings.NewReader("A B 5 B C far"))
	assert.True(t, errors.Is(err, ErrMalformedInput))
	assert.Equal(t, 1, count)
}

func TestIncompleteTriple(t *testing.T) {
	builder := NewGraphBuilder(4)
	builder.LoadNodes(strings.NewReader("A B"))

	_, err := builder.LoadEdges(strings.NewReader("A B 5 A B"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestOversizedToken(t *testing.T) {
	long := strings.Repeat("x", 1024*1024+1)

	builder := NewGraphBuilder(4)
	_, err := builder.LoadNodes(strings.NewReader("A B " + long))
	assert.ErrorIs(t, err, ErrMalformedInput)

	builder = NewGraphBuilder(4)
	builder.LoadNodes(strings.NewReader("A B"))
	_, err = builder.LoadEdges(strings.NewReader("A B 5 A " + long + " 3"))
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = builder.LoadEdges(strings.NewReader(long))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestReadFailure(t *testing.T) {
	builder := NewGraphBuilder(4)
	_, err := builder.LoadNodes(iotest.ErrReader(errors.New("disk gone")))
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestSelfLoop(t *testing.T) {
	g := loadTestGraph(t, "A", "A A 3")

	a, _ := g.GetNodeIndex("A")
	assert.Equal(t, 1, g.GetNodeDegree(a))
	explorer := g.GetGraphExplorer()
	explorer.ForAdjacentEdges(a, func(ref EdgeRef) {
		assert.Equal(t, a, ref.OtherID)
	})
}

func TestBuildGraphMissingFile(t *testing.T) {
	dir := t.TempDir()
	g, err := BuildGraph(filepath.Join(dir, "locations.txt"), filepath.Join(dir, "roads.txt"))

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	require.NotNil(t, g)
	assert.True(t, g.IsEmpty())
}

func TestBuildGraphFromFiles(t *testing.T) {
	dir := t.TempDir()
	locations := filepath.Join(dir, "locations.txt")
	roads := filepath.Join(dir, "roads.txt")
	require.NoError(t, os.WriteFile(locations, []byte("0\n1\n2\n"), 0o644))
	require.NoError(t, os.WriteFile(roads, []byte("0 1 120\n1 2 80\n"), 0o644))

	g, err := BuildGraph(locations, roads)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, "2", g.GetNode(2).ID)
}
