package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/grigorchuk/pkg/render/nodelink"
)

// Snapshot is the exported form of a collected map.
type Snapshot struct {
	MapID  uuid.UUID       `json:"map_id"`
	Radius int             `json:"radius"`
	Graph  *nodelink.Graph `json:"graph"`
}

// WriteJSON encodes a snapshot as indented JSON and writes it to w.
func WriteJSON(s *Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a snapshot to a JSON file at path.
func ExportJSON(s *Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}
