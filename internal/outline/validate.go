package outline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/notedown/treewalk/tree"
	"golang.org/x/text/unicode/norm"
)

// Validate checks the structural rules of an outline: no null child entries, a kind
// on every node, and unique IDs among the nodes that have one.
func Validate(root *Node) error {
	if root == nil {
		return &LoadError{Code: ErrCodeDecodeFailed, Message: "document is empty"}
	}

	holes := tree.Collect(root, Children, func(n *Node) bool {
		return slices.Contains(n.Children, nil)
	})
	if len(holes) > 0 {
		return &LoadError{
			Code:    ErrCodeEmptyChild,
			Message: fmt.Sprintf("null child entry under %s", labels(holes)),
		}
	}

	unkinded := tree.Collect(root, Children, func(n *Node) bool {
		return strings.TrimSpace(n.Kind) == ""
	})
	if len(unkinded) > 0 {
		return &LoadError{
			Code:    ErrCodeMissingKind,
			Message: fmt.Sprintf("%d node(s) without kind: %s", len(unkinded), labels(unkinded)),
		}
	}

	return checkUniqueIDs(root)
}

// checkUniqueIDs reports the first ID, in visitation order, used by more than one node.
func checkUniqueIDs(root *Node) error {
	type tally struct {
		counts map[string]int
		order  []string
	}
	t := tree.Fold(root, Children, func(t tally, n *Node) tally {
		if n.ID == "" {
			return t
		}
		if t.counts[n.ID] == 0 {
			t.order = append(t.order, n.ID)
		}
		t.counts[n.ID]++
		return t
	}, tally{counts: map[string]int{}})

	for _, id := range t.order {
		if t.counts[id] > 1 {
			return &LoadError{
				Code:    ErrCodeDuplicateID,
				Message: fmt.Sprintf("id %q used by %d nodes", id, t.counts[id]),
			}
		}
	}
	return nil
}

// Normalize NFC-normalises kind and text, and assigns an ID from ids to every node
// that has none. IDs are handed out in breadth-first order.
func Normalize(root *Node, ids IDGenerator) {
	tree.Walk(root, Children, func(n *Node) {
		n.Kind = norm.NFC.String(strings.TrimSpace(n.Kind))
		n.Text = norm.NFC.String(n.Text)
		if n.ID == "" && ids != nil {
			n.ID = ids.Generate()
		}
	})
}

func labels(nodes []*Node) string {
	const limit = 5
	parts := make([]string, 0, limit+1)
	for i, n := range nodes {
		if i == limit {
			parts = append(parts, fmt.Sprintf("and %d more", len(nodes)-limit))
			break
		}
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ", ")
}
