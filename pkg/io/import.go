package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/grigorchuk/pkg/cayley"
	"github.com/matzehuels/grigorchuk/pkg/errors"
)

// ReadJSON decodes a snapshot from r.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or has no graph
//   - A node has a duplicate ID
//   - An edge references an unknown node ID
//   - An edge direction is outside the map's three directions
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode snapshot")
	}
	if s.Graph == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "snapshot has no graph")
	}

	ids := make(map[int]bool, len(s.Graph.Nodes))
	for _, n := range s.Graph.Nodes {
		if ids[n.ID] {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "node %d: duplicate id", n.ID)
		}
		ids[n.ID] = true
	}
	for _, e := range s.Graph.Edges {
		if !ids[e.From] || !ids[e.To] {
			return nil, errors.New(errors.ErrCodeUnknownNode, "edge %d-%d: unknown node", e.From, e.To)
		}
		if !e.Dir.Valid() {
			return nil, fmt.Errorf("edge %d-%d: %w", e.From, e.To,
				&errors.DirectionError{Direction: int(e.Dir), Max: cayley.Degree})
		}
	}
	return &s, nil
}

// ImportJSON reads a snapshot from the JSON file at path.
func ImportJSON(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
