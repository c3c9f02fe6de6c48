package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notedown/treewalk/internal/outline"
)

// createTestStore creates a new store in a temporary directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// exampleOutline is document a -> [section b -> [paragraph d], paragraph c].
func exampleOutline() *outline.Node {
	return &outline.Node{
		ID: "a", Kind: "document", Text: "A",
		Children: []*outline.Node{
			{ID: "b", Kind: "section", Text: "B", Children: []*outline.Node{
				{ID: "d", Kind: "paragraph", Text: "D"},
			}},
			{ID: "c", Kind: "paragraph", Text: "C"},
		},
	}
}

// saveExample stores exampleOutline and returns the store.
func saveExample(t *testing.T) *Store {
	t.Helper()
	s := createTestStore(t)
	n, err := s.Save(context.Background(), exampleOutline())
	require.NoError(t, err)
	require.Equal(t, 4, n)
	return s
}

func ids(nodes []*outline.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}
