package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	. "github.com/ttpr0/go-navigation/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// graph io
//*******************************************

// Reads whitespace separated node ids. Returns the number of nodes added.
func (self *GraphBuilder) LoadNodes(r io.Reader) (int, error) {
	reader := NewTokenReader(r)
	count := 0
	for {
		id, ok := reader.Next()
		if !ok {
			break
		}
		if self.AddNode(id) {
			count += 1
		}
	}
	if err := reader.Err(); err != nil {
		return count, _WrapReadError(err)
	}
	return count, nil
}

// Reads whitespace separated triples "<node_a> <node_b> <weight>".
// Returns the number of edges added; dropped edges are not counted.
//
// Reading stops at the first weight that is not an integer and at a
// trailing incomplete triple, both are reported as ErrMalformedInput.
func (self *GraphBuilder) LoadEdges(r io.Reader) (int, error) {
	reader := NewTokenReader(r)
	count := 0
	triple := make([]string, 3)
	for {
		n := reader.ReadN(triple)
		if n == 0 {
			break
		}
		if n < 3 {
			if err := reader.Err(); err != nil {
				return count, _WrapReadError(err)
			}
			return count, fmt.Errorf("%w: incomplete road after %d tokens", ErrMalformedInput, reader.Count())
		}
		weight, err := strconv.ParseInt(triple[2], 10, 32)
		if err != nil {
			return count, fmt.Errorf("%w: weight %q of road %s-%s", ErrMalformedInput, triple[2], triple[0], triple[1])
		}
		if self.AddEdge(triple[0], triple[1], int32(weight)) {
			count += 1
		}
	}
	if err := reader.Err(); err != nil {
		return count, _WrapReadError(err)
	}
	return count, nil
}

// A token over the reader's size limit is malformed input, any other
// read failure means the source is unavailable.
func _WrapReadError(err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: token too long", ErrMalformedInput)
	}
	return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
}

// Builds a graph from a locations and a roads source.
func LoadGraph(locations io.Reader, roads io.Reader) (*Graph, error) {
	builder := NewGraphBuilder(1000)
	if _, err := builder.LoadNodes(locations); err != nil {
		return EmptyGraph(), err
	}
	if _, err := builder.LoadEdges(roads); err != nil {
		return builder.Build(), err
	}
	return builder.Build(), nil
}

// Builds a graph from the locations and roads files.
//
// If a file cannot be opened the returned graph is empty and the error wraps
// ErrSourceUnavailable; callers must not serve queries from an empty graph.
func BuildGraph(locations_file string, roads_file string) (*Graph, error) {
	slog.Info("reading locations from " + locations_file)
	locations, err := os.Open(locations_file)
	if err != nil {
		return EmptyGraph(), fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer locations.Close()

	slog.Info("reading roads from " + roads_file)
	roads, err := os.Open(roads_file)
	if err != nil {
		return EmptyGraph(), fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer roads.Close()

	g, err := LoadGraph(locations, roads)
	if err != nil {
		return g, err
	}
	stats := g.Stats()
	slog.Info(fmt.Sprintf("graph loaded: %v nodes, %v edges", stats.Nodes, stats.Edges))
	if stats.DuplicateNodes > 0 {
		slog.Warn(fmt.Sprintf("skipped %v duplicate node ids", stats.DuplicateNodes))
	}
	if stats.DroppedEdges > 0 {
		slog.Warn(fmt.Sprintf("dropped %v roads with unknown endpoints", stats.DroppedEdges))
	}
	return g, nil
}
