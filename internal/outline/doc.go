// Package outline defines the document outline: a small tree of typed text nodes
// that the traversal engine in package tree walks.
//
// An outline is loaded from YAML, JSON or CUE. Loading validates the tree, assigns
// IDs to nodes that lack one and NFC-normalises node text, so two files that differ
// only in Unicode composition produce identical outlines.
//
// Every pass over an outline after decoding (validation, normalisation, ID checks)
// is a breadth-first traversal through tree.Walk, tree.Collect or tree.Fold, using
// Children as the child function.
package outline
