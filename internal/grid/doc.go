// Package grid implements the tabular data engine behind every list view:
// search and per-column filtering, single-column stable sorting with
// tri-state cycling, pagination with compact page-number strips, and
// cross-page row selection keyed by logical row identity.
//
// The engine is a pipeline of pure functions over in-memory collections:
//
//	rows → Filter → Sort → Paginate → visible page
//
// Selection is a parallel concern: it is queried against both the full
// dataset and the current page but never filters or reorders data.
//
// Nothing here performs I/O, spawns goroutines, or holds global state.
// Each UI surface owns an independent Table instance; the Table memoizes
// the filtered+sorted slice so page-only changes skip recomputation.
package grid
