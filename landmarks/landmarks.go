// Package landmarks binds human readable location names to graph node ids.
package landmarks

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	. "github.com/ttpr0/go-navigation/util"
	"golang.org/x/exp/slog"
)

var (
	ErrSourceUnavailable = errors.New("landmarks: data source unavailable")
	ErrMalformedInput    = errors.New("landmarks: malformed input")
)

//*******************************************
// landmark index
//*******************************************

type Landmark struct {
	DisplayName    string `json:"name"`
	NormalizedName string `json:"normalized"`
	NodeID         string `json:"node"`
}

// Lookup tables for landmarks, immutable once loaded.
//
// A display name or normalized name given twice keeps the node id loaded
// last, the same holds for several landmarks on one node id.
type LandmarkIndex struct {
	by_name       Dict[string, string]
	by_node       Dict[string, string]
	by_normalized Dict[string, string]
	names         List[string]
}

func newLandmarkIndex(init_cap int) *LandmarkIndex {
	return &LandmarkIndex{
		by_name:       NewDict[string, string](init_cap),
		by_node:       NewDict[string, string](init_cap),
		by_normalized: NewDict[string, string](init_cap),
		names:         NewList[string](init_cap),
	}
}

// Index without any landmark, returned when the source is unavailable.
func EmptyIndex() *LandmarkIndex {
	return newLandmarkIndex(0)
}

func (self *LandmarkIndex) add(name, node_id string) {
	if !self.by_name.ContainsKey(name) {
		self.names.Add(name)
	}
	self.by_name.Set(name, node_id)
	self.by_node.Set(node_id, name)
	self.by_normalized.Set(Normalize(name), node_id)
}

// Returns the node id the user input normalizes to. Matching is exact.
func (self *LandmarkIndex) Resolve(input string) (string, bool) {
	node_id, ok := self.by_normalized[Normalize(input)]
	return node_id, ok
}

// Returns the landmark name bound to a node id.
func (self *LandmarkIndex) DisplayNameFor(node_id string) (string, bool) {
	name, ok := self.by_node[node_id]
	return name, ok
}

// Returns the node id of a landmark by its display name as loaded.
func (self *LandmarkIndex) Lookup(name string) (string, bool) {
	node_id, ok := self.by_name[name]
	return node_id, ok
}

func (self *LandmarkIndex) Length() int {
	return self.names.Length()
}

// Iterates the display names in sorted order. The sequence can be ranged
// over any number of times.
func (self *LandmarkIndex) Names() func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for _, name := range self.names {
			if !yield(name) {
				return
			}
		}
	}
}

// Iterates all landmarks in display name order.
func (self *LandmarkIndex) Entries() func(yield func(Landmark) bool) {
	return func(yield func(Landmark) bool) {
		for _, name := range self.names {
			entry := Landmark{
				DisplayName:    name,
				NormalizedName: Normalize(name),
				NodeID:         self.by_name[name],
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// Returns at most limit display names starting at offset.
func (self *LandmarkIndex) Page(offset, limit int) List[string] {
	if offset < 0 {
		offset = 0
	}
	n := self.names.Length()
	if offset >= n || limit <= 0 {
		return NewList[string](0)
	}
	end := offset + min(limit, n-offset)
	page := NewList[string](end - offset)
	for _, name := range self.names[offset:end] {
		page.Add(name)
	}
	return page
}

// Returns the display names whose normalized form matches a glob pattern,
// the pattern is normalized as well.
func (self *LandmarkIndex) Match(pattern string) (List[string], error) {
	g, err := glob.Compile(Normalize(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid landmark pattern %q: %w", pattern, err)
	}
	matches := NewList[string](10)
	for name := range self.Names() {
		if g.Match(Normalize(name)) {
			matches.Add(name)
		}
	}
	return matches, nil
}

//*******************************************
// normalization
//*******************************************

// Lowercases s and replaces ASCII spaces with underscores.
func Normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}

//*******************************************
// landmark io
//*******************************************

// Reads whitespace separated pairs "<display_name> <node_id>".
func Load(r io.Reader) (*LandmarkIndex, error) {
	index := newLandmarkIndex(100)
	reader := NewTokenReader(r)
	pair := make([]string, 2)
	for {
		n := reader.ReadN(pair)
		if n == 0 {
			break
		}
		if n < 2 {
			index.sort()
			if err := reader.Err(); err != nil {
				return index, _WrapReadError(err)
			}
			return index, fmt.Errorf("%w: landmark %q without node id", ErrMalformedInput, pair[0])
		}
		index.add(pair[0], pair[1])
	}
	index.sort()
	if err := reader.Err(); err != nil {
		return index, _WrapReadError(err)
	}
	return index, nil
}

func _WrapReadError(err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: name too long", ErrMalformedInput)
	}
	return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
}

// Loads the landmarks file. If it cannot be opened an empty index is returned
// together with an error wrapping ErrSourceUnavailable.
func LoadFile(file string) (*LandmarkIndex, error) {
	slog.Info("reading landmarks from " + file)
	f, err := os.Open(file)
	if err != nil {
		return EmptyIndex(), fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	index, err := Load(f)
	if err != nil {
		return index, err
	}
	slog.Info(fmt.Sprintf("indexed %v landmarks", index.Length()))
	return index, nil
}

func (self *LandmarkIndex) sort() {
	slices.Sort(self.names)
}
