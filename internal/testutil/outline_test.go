package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notedown/treewalk/internal/outline"
)

func TestBuild(t *testing.T) {
	root := Build(t, "document:a(section:b(d), c)")

	assert.Equal(t, &outline.Node{
		ID: "a", Kind: "document", Text: "a",
		Children: []*outline.Node{
			{ID: "b", Kind: "section", Text: "b", Children: []*outline.Node{
				{ID: "d", Kind: "node", Text: "d"},
			}},
			{ID: "c", Kind: "node", Text: "c"},
		},
	}, root)
}

func TestBuild_SingleNode(t *testing.T) {
	root := Build(t, "x")
	assert.Equal(t, "x", root.ID)
	assert.Empty(t, root.Children)
}

func TestParse_Errors(t *testing.T) {
	for _, notation := range []string{"", "a(", "a(b", "a()", "a)b", "a(b)c", "(a)"} {
		t.Run(notation, func(t *testing.T) {
			_, err := Parse(notation)
			assert.Error(t, err)
		})
	}
}

func TestIDs(t *testing.T) {
	root := Build(t, "a(b,c)")
	assert.Equal(t, []string{"b", "c"}, IDs(root.Children))
	assert.Empty(t, IDs(nil))
}

func TestFailingChildren(t *testing.T) {
	root := Build(t, "a(b,c)")
	errBoom := errors.New("boom")
	children := FailingChildren("b", errBoom)

	kids, err := children(root)
	require.NoError(t, err)
	assert.Len(t, kids, 2)

	_, err = children(root.Children[0])
	assert.Same(t, errBoom, err)
}
