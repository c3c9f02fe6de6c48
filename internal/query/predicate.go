package query

import (
	"strings"

	"github.com/notedown/treewalk/internal/outline"
)

// ChildFunc returns the children of an outline node. Store-backed child functions
// can fail, so every consumer takes the error-returning form.
type ChildFunc = func(*outline.Node) ([]*outline.Node, error)

// Predicate reports whether a node matches.
type Predicate func(*outline.Node) (bool, error)

// ParsePredicate compiles a predicate expression. children is consulted by
// predicates that depend on structure, such as leaf.
func ParsePredicate(expr string, children ChildFunc) (Predicate, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, &ExprError{Code: ErrCodeBadPredicate, Expr: expr, Message: "empty predicate"}
	}

	terms := strings.Split(trimmed, ",")
	preds := make([]Predicate, 0, len(terms))
	for _, term := range terms {
		p, err := parseTerm(strings.TrimSpace(term), children)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}

	if len(preds) == 1 {
		return preds[0], nil
	}
	return and(preds), nil
}

func parseTerm(term string, children ChildFunc) (Predicate, error) {
	if rest, ok := strings.CutPrefix(term, "!"); ok {
		inner, err := parseTerm(strings.TrimSpace(rest), children)
		if err != nil {
			return nil, err
		}
		return not(inner), nil
	}

	switch term {
	case "all":
		return constant(true), nil
	case "none":
		return constant(false), nil
	case "leaf":
		return leaf(children), nil
	}

	if key, value, ok := strings.Cut(term, "="); ok {
		switch strings.TrimSpace(key) {
		case "kind":
			return field(func(n *outline.Node) bool { return n.Kind == value }), nil
		case "id":
			return field(func(n *outline.Node) bool { return n.ID == value }), nil
		}
		return nil, &ExprError{Code: ErrCodeBadPredicate, Expr: term, Message: "unknown field"}
	}

	if key, value, ok := strings.Cut(term, "~"); ok && strings.TrimSpace(key) == "text" {
		return field(func(n *outline.Node) bool { return strings.Contains(n.Text, value) }), nil
	}

	return nil, &ExprError{Code: ErrCodeBadPredicate, Expr: term, Message: "unknown predicate"}
}

func constant(v bool) Predicate {
	return func(*outline.Node) (bool, error) { return v, nil }
}

func field(match func(*outline.Node) bool) Predicate {
	return func(n *outline.Node) (bool, error) { return match(n), nil }
}

func leaf(children ChildFunc) Predicate {
	return func(n *outline.Node) (bool, error) {
		kids, err := children(n)
		if err != nil {
			return false, err
		}
		return len(kids) == 0, nil
	}
}

func not(p Predicate) Predicate {
	return func(n *outline.Node) (bool, error) {
		ok, err := p(n)
		return !ok && err == nil, err
	}
}

// and evaluates terms left to right and stops at the first non-match.
func and(preds []Predicate) Predicate {
	return func(n *outline.Node) (bool, error) {
		for _, p := range preds {
			ok, err := p(n)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}
