// Package lineage provides the column-level lineage data model consumed by
// the viewport engine.
//
// A Snapshot holds tables (nodes) and directed column-to-column links (edges)
// as produced by an external discovery process. This package only loads and
// queries snapshots; it never computes lineage itself and never mutates node
// positions or topology.
//
// # Basic Usage
//
//	snap, err := lineage.LoadFile("lineage.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	up, down := lineage.Impact(snap, "orders", 0)
//	fmt.Printf("upstream: %v, downstream: %v\n", up, down)
package lineage
