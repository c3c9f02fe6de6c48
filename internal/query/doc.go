// Package query defines the predicate and aggregate vocabulary the CLI exposes
// over outlines.
//
// Predicates feed tree.TryCollect and aggregates are tree.TryFold accumulators.
// Both take the child function of the outline's source, so the same expression
// works on an outline loaded from a file and on one read lazily from the store.
//
// PREDICATE EXPRESSIONS:
//
//	all            every node
//	none           no node
//	leaf           nodes without children
//	kind=<kind>    nodes of the given kind
//	id=<id>        the node with the given ID
//	text~<substr>  nodes whose text contains substr
//	!<expr>        negation
//	<a>,<b>        conjunction; terms are separated by commas
//
// AGGREGATES:
//
//	count   number of nodes
//	leaves  number of leaf nodes
//	chars   total characters (runes) of node text
//	kinds   node count per kind
//	depth   number of levels below and including the root
package query
