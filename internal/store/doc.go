// Package store provides SQLite-backed storage for document outlines.
//
// Nodes are stored as an adjacency list: one row per node with its parent's ID and
// its position among siblings. Nothing is held in memory between calls, so a stored
// outline is traversed lazily: ChildrenFunc issues one query per visited node and
// plugs straight into the tree package's Try variants.
//
// # Ordering
//
// Children are always read ORDER BY position ASC, id ASC, so a stored outline walks
// in the same order as the document it was saved from.
//
// # Writes
//
// Save inserts a whole outline in one transaction, in breadth-first order, so every
// parent row exists before its children reference it.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce parent references
package store
