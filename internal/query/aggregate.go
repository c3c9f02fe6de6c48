package query

import (
	"slices"
	"unicode/utf8"

	"github.com/notedown/treewalk/internal/outline"
	"github.com/notedown/treewalk/tree"
)

// aggregate runs one named fold over the outline rooted at root.
type aggregate func(root *outline.Node, children ChildFunc) (any, error)

var aggregates = map[string]aggregate{
	"count":  count,
	"leaves": leaves,
	"chars":  chars,
	"kinds":  kinds,
	"depth":  depth,
}

// Ops returns the aggregate names in sorted order.
func Ops() []string {
	names := make([]string, 0, len(aggregates))
	for name := range aggregates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Aggregate folds the named aggregate over the outline rooted at root.
//
// count, leaves, chars and depth produce an int; kinds produces a map[string]int.
func Aggregate(op string, root *outline.Node, children ChildFunc) (any, error) {
	agg, ok := aggregates[op]
	if !ok {
		return nil, &ExprError{Code: ErrCodeBadAggregate, Expr: op, Message: "unknown aggregate"}
	}
	result, err := agg(root, children)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func count(root *outline.Node, children ChildFunc) (any, error) {
	return tree.TryFold(root, children, func(acc int, _ *outline.Node) (int, error) {
		return acc + 1, nil
	}, 0)
}

func leaves(root *outline.Node, children ChildFunc) (any, error) {
	isLeaf := leaf(children)
	return tree.TryFold(root, children, func(acc int, n *outline.Node) (int, error) {
		ok, err := isLeaf(n)
		if err != nil {
			return acc, err
		}
		if ok {
			acc++
		}
		return acc, nil
	}, 0)
}

func chars(root *outline.Node, children ChildFunc) (any, error) {
	return tree.TryFold(root, children, func(acc int, n *outline.Node) (int, error) {
		return acc + utf8.RuneCountInString(n.Text), nil
	}, 0)
}

func kinds(root *outline.Node, children ChildFunc) (any, error) {
	return tree.TryFold(root, children, func(acc map[string]int, n *outline.Node) (map[string]int, error) {
		acc[n.Kind]++
		return acc, nil
	}, map[string]int{})
}

func depth(root *outline.Node, children ChildFunc) (any, error) {
	levels, err := tree.TryLevels(root, children)
	if err != nil {
		return nil, err
	}
	return len(levels), nil
}
