package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/notedown/treewalk/internal/outline"
)

// Build parses a compact outline notation and fails the test on a syntax error.
//
// Grammar:
//
//	node     = [kind ":"] name [ "(" node { "," node } ")" ]
//
// Each node gets ID and Text set to its name. Kind defaults to "node".
//
//	testutil.Build(t, "document:a(section:b(d),c)")
func Build(t testing.TB, notation string) *outline.Node {
	t.Helper()
	root, err := Parse(notation)
	if err != nil {
		t.Fatalf("testutil.Build(%q): %v", notation, err)
	}
	return root
}

// Parse is Build without a testing.TB.
func Parse(notation string) (*outline.Node, error) {
	p := &parser{src: strings.Join(strings.Fields(notation), "")}
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.src[p.pos], p.pos)
	}
	return root, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) node() (*outline.Node, error) {
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("(),", rune(p.src[p.pos])) {
		p.pos++
	}
	label := p.src[start:p.pos]
	if label == "" {
		return nil, fmt.Errorf("expected node name at offset %d", start)
	}

	n := &outline.Node{Kind: "node"}
	if kind, name, ok := strings.Cut(label, ":"); ok {
		n.Kind = kind
		label = name
	}
	n.ID, n.Text = label, label

	if p.pos == len(p.src) || p.src[p.pos] != '(' {
		return n, nil
	}
	p.pos++

	for {
		child, err := p.node()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)

		if p.pos == len(p.src) {
			return nil, fmt.Errorf("unclosed '(' for %q", n.ID)
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return n, nil
		default:
			return nil, fmt.Errorf("unexpected %q at offset %d", p.src[p.pos], p.pos)
		}
	}
}

// IDs returns the IDs of nodes in order.
func IDs(nodes []*outline.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

// FailingChildren returns outline.Children that fails with err when asked for the
// children of the node with the given ID.
func FailingChildren(id string, err error) func(*outline.Node) ([]*outline.Node, error) {
	return func(n *outline.Node) ([]*outline.Node, error) {
		if n.ID == id {
			return nil, err
		}
		return outline.Children(n), nil
	}
}
