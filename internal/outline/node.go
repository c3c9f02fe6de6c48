package outline

import "fmt"

// Node is one element of a document outline.
type Node struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Kind     string  `json:"kind" yaml:"kind"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Children returns the direct children of n, skipping empty entries.
// It is the child function passed to the tree package.
func Children(n *Node) []*Node {
	if n == nil {
		return nil
	}
	for i, c := range n.Children {
		if c == nil {
			return compact(n.Children, i)
		}
	}
	return n.Children
}

// compact copies children without nil entries. first is the index of the first nil.
func compact(children []*Node, first int) []*Node {
	out := make([]*Node, first, len(children)-1)
	copy(out, children[:first])
	for _, c := range children[first+1:] {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(Children(n)) == 0
}

// String returns a short label for diagnostics.
func (n *Node) String() string {
	if n.ID == "" {
		return fmt.Sprintf("%s %q", n.Kind, n.Text)
	}
	return fmt.Sprintf("%s[%s]", n.Kind, n.ID)
}
