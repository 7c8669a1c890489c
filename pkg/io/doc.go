// Package io provides JSON import and export for Cayley map snapshots.
//
// # JSON Format
//
// A snapshot records the map it was taken from, the radius it was
// collected to, and the tiles and edges found:
//
//	{
//	  "map_id": "2f1c...",
//	  "radius": 1,
//	  "graph": {
//	    "nodes": [
//	      {"id": 0, "elem": 0, "word": "I", "half": "a", "distance": 0},
//	      {"id": 1, "elem": 6, "word": "ac", "half": "aca", "distance": 1}
//	    ],
//	    "edges": [
//	      {"from": 0, "to": 1, "dir": 0}
//	    ]
//	  }
//	}
//
// Edge directions use the map's numbering: 0 is ac, 2 is b. Element handles
// are only meaningful to the process that wrote the snapshot; words are
// portable.
//
// # Import
//
// [ReadJSON] and [ImportJSON] validate that node IDs are unique, that edges
// join known nodes, and that directions are in range, so an imported
// snapshot can be rendered with [nodelink.ToDOT] directly.
//
// [nodelink.ToDOT]: github.com/matzehuels/grigorchuk/pkg/render/nodelink.ToDOT
package io
