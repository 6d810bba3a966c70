package algorithm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-navigation/graph"
)

func TestConnectedComponents(t *testing.T) {
	g, err := graph.LoadGraph(strings.NewReader("A B C D E"), strings.NewReader("A B 1 C D 2 D B 3"))
	require.NoError(t, err)

	groups := ConnectedComponents(g)
	assert.Equal(t, []int32{0, 0, 0, 0, 1}, []int32(groups))

	stats := GetComponentStats(g, groups)
	assert.Equal(t, 2, stats.Components)
	assert.Equal(t, 4, stats.Largest)
	assert.Equal(t, 1, stats.IsolatedNodes)
}

func TestConnectedComponentsEmpty(t *testing.T) {
	groups := ConnectedComponents(graph.EmptyGraph())
	assert.Empty(t, groups)
	assert.Equal(t, ComponentStats{}, GetComponentStats(graph.EmptyGraph(), groups))
}
