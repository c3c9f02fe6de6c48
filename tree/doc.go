// Package tree implements breadth-first traversal over caller-defined node types.
//
// The package never inspects or constructs nodes. A node's children are discovered
// lazily through a function supplied by the caller, invoked once per node and only
// after that node has been dequeued. Nothing is cached between calls.
//
// TRAVERSAL ORDER:
//
// Every operation shares one loop:
//  1. Seed a FIFO frontier with the root
//  2. Dequeue the front node
//  3. Enqueue children(node) onto the back, in the order they were produced
//  4. Visit the node
//  5. Repeat until the frontier is empty
//
// Nodes are therefore visited in non-decreasing distance from the root, and nodes at
// the same depth are visited in the order their parents were visited.
//
// Fold and Collect are Walk with an accumulating callback. The Try variants accept
// callbacks that return errors; the first error aborts the traversal and is returned
// exactly as the callback produced it.
//
// CYCLES:
//
// No visited set is kept. A cyclic or infinite child relation never terminates.
// WalkDistinct is the opt-in alternative for graphs that may revisit nodes.
package tree
