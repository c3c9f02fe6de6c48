package tree

import "iter"

// All returns the breadth-first visitation sequence as an iterator.
//
// The traversal runs lazily as the sequence is consumed. Stopping the range loop
// early ends it, and children is not called for nodes that were never reached.
//
//	for n := range tree.All(root, children) {
//	    if done(n) {
//	        break
//	    }
//	}
func All[T any](root T, children func(T) []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = walk(root, Infallible(children), nil, func(n T, _ int) error {
			if !yield(n) {
				return errStop
			}
			return nil
		})
	}
}

// Levels returns the visitation order grouped by depth. Level 0 holds only root.
func Levels[T any](root T, children func(T) []T) [][]T {
	levels, _ := TryLevels(root, Infallible(children))
	return levels
}

// TryLevels is Levels with a fallible child function.
func TryLevels[T any](root T, children func(T) ([]T, error)) ([][]T, error) {
	var levels [][]T
	err := walk(root, children, nil, func(n T, depth int) error {
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return levels, nil
}

// WalkDistinct is Walk for child relations that may revisit nodes.
//
// key identifies a node. A produced child whose key has already been admitted in this
// traversal is dropped instead of enqueued, so each key is visited at most once and
// cyclic graphs terminate. The root's key counts as admitted.
func WalkDistinct[T any, K comparable](root T, children func(T) []T, key func(T) K, visit func(T)) {
	seen := map[K]struct{}{key(root): {}}
	admit := func(n T) bool {
		k := key(n)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	}

	_ = walk(root, Infallible(children), admit, func(n T, _ int) error {
		visit(n)
		return nil
	})
}
