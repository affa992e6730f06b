// Package viewport implements the interactive pan/zoom engine for the
// lineage graph.
//
// The engine keeps an arbitrarily-sized node graph legible inside a
// fixed-size surface by owning three pieces of presentation state: the
// viewport transform (translate + scale), the per-node expand set and the
// global column selection. Node positions come from the snapshot and are
// never changed here.
//
// Coordinate mapping is a single affine rule, screen = content*scale + pan;
// all interactive operations pick a fixed content-space anchor, compute the
// new scale, then solve for the pan that keeps the anchor where it should
// be. Scale is clamped to [0.1, 3.0] at every mutation site.
//
// The engine is event-driven: pointer, wheel and control events mutate
// state synchronously, and the only timer is the single-shot deferred
// re-fit used after loads and expand toggles.
package viewport
