package tree

import "errors"

// errStop halts a traversal from inside a callback without reporting a failure.
var errStop = errors.New("tree: stop")

// walk is the traversal loop every public operation is built on. It is the only
// code that touches the frontier.
//
// admit, when non-nil, decides whether a produced child is enqueued. visit receives
// each dequeued node with its depth. The first error from children or visit is
// returned unchanged.
func walk[T any](root T, children func(T) ([]T, error), admit func(T) bool, visit func(T, int) error) error {
	q := newFrontier[T]()
	q.push(0, root)

	for {
		it, ok := q.pop()
		if !ok {
			return nil
		}

		kids, err := children(it.node)
		if err != nil {
			return err
		}
		if admit == nil {
			q.push(it.depth+1, kids...)
		} else {
			for _, k := range kids {
				if admit(k) {
					q.push(it.depth+1, k)
				}
			}
		}

		if err := visit(it.node, it.depth); err != nil {
			return err
		}
	}
}

// Infallible adapts a child function that cannot fail for use with the Try variants.
func Infallible[T any](children func(T) []T) func(T) ([]T, error) {
	return func(n T) ([]T, error) {
		return children(n), nil
	}
}

// Walk visits every node reachable from root in breadth-first order.
//
// For each dequeued node, children is called and its result appended to the frontier
// before visit runs on the node. Panics raised by either function propagate to the
// caller and end the traversal.
func Walk[T any](root T, children func(T) []T, visit func(T)) {
	_ = walk(root, Infallible(children), nil, func(n T, _ int) error {
		visit(n)
		return nil
	})
}

// Fold threads an aggregate through every node reachable from root, in breadth-first
// order, starting from initial. It is a left fold over the sequence Walk visits.
func Fold[T, A any](root T, children func(T) []T, accumulate func(A, T) A, initial A) A {
	agg := initial
	Walk(root, children, func(n T) {
		agg = accumulate(agg, n)
	})
	return agg
}

// Collect returns the reachable nodes for which test holds, in visitation order.
// The result is empty, not nil, when nothing matches.
func Collect[T any](root T, children func(T) []T, test func(T) bool) []T {
	collected := []T{}
	Walk(root, children, func(n T) {
		if test(n) {
			collected = append(collected, n)
		}
	})
	return collected
}

// TryWalk is Walk with fallible callbacks. The first error returned by children or
// visit stops the traversal and is returned as is; no further nodes are visited.
func TryWalk[T any](root T, children func(T) ([]T, error), visit func(T) error) error {
	return walk(root, children, nil, func(n T, _ int) error {
		return visit(n)
	})
}

// TryFold is Fold with fallible callbacks. On error the partial aggregate is
// discarded and the zero value is returned with the error.
func TryFold[T, A any](root T, children func(T) ([]T, error), accumulate func(A, T) (A, error), initial A) (A, error) {
	agg := initial
	err := TryWalk(root, children, func(n T) error {
		next, err := accumulate(agg, n)
		if err != nil {
			return err
		}
		agg = next
		return nil
	})
	if err != nil {
		var zero A
		return zero, err
	}
	return agg, nil
}

// TryCollect is Collect with fallible callbacks. On error no partial result is
// returned.
func TryCollect[T any](root T, children func(T) ([]T, error), test func(T) (bool, error)) ([]T, error) {
	collected := []T{}
	err := TryWalk(root, children, func(n T) error {
		ok, err := test(n)
		if err != nil {
			return err
		}
		if ok {
			collected = append(collected, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return collected, nil
}
