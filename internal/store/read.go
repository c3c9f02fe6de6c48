package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/notedown/treewalk/internal/outline"
	"github.com/notedown/treewalk/tree"
)

// Node returns the stored node with the given ID, without its children.
// Returns a *NotFoundError if no such node exists.
func (s *Store) Node(ctx context.Context, id string) (*outline.Node, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, text FROM nodes WHERE id = ?
	`, id)

	n, err := scanNode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("read node %q: %w", id, err)
	}
	return n, nil
}

// Children returns the direct children of the node with the given ID, without
// their own children, ordered by position.
//
// Returns an empty slice (not nil) for a leaf or an unknown ID.
func (s *Store) Children(ctx context.Context, id string) ([]*outline.Node, error) {
	return s.queryNodes(ctx, "children", `
		SELECT id, kind, text
		FROM nodes
		WHERE parent_id = ?
		ORDER BY position ASC, id COLLATE BINARY ASC
	`, id)
}

// ChildrenFunc returns a child function for the tree package that reads each
// node's children from the store on demand. Query failures, including context
// cancellation, surface as the traversal's error.
func (s *Store) ChildrenFunc(ctx context.Context) func(*outline.Node) ([]*outline.Node, error) {
	return func(n *outline.Node) ([]*outline.Node, error) {
		return s.Children(ctx, n.ID)
	}
}

// Roots returns every stored node without a parent, ordered by ID.
func (s *Store) Roots(ctx context.Context) ([]*outline.Node, error) {
	return s.queryNodes(ctx, "roots", `
		SELECT id, kind, text
		FROM nodes
		WHERE parent_id IS NULL
		ORDER BY id COLLATE BINARY ASC
	`)
}

// Load reads the subtree rooted at id back into memory.
func (s *Store) Load(ctx context.Context, id string) (*outline.Node, error) {
	root, err := s.Node(ctx, id)
	if err != nil {
		return nil, err
	}

	children := s.ChildrenFunc(ctx)
	attach := func(n *outline.Node) ([]*outline.Node, error) {
		kids, err := children(n)
		if err != nil {
			return nil, err
		}
		if len(kids) > 0 {
			n.Children = kids
		}
		return kids, nil
	}

	if err := tree.TryWalk(root, attach, func(*outline.Node) error { return nil }); err != nil {
		return nil, fmt.Errorf("load subtree %q: %w", id, err)
	}
	return root, nil
}

// Count returns the number of stored nodes.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM nodes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count nodes: %w", err)
	}
	return n, nil
}

func (s *Store) queryNodes(ctx context.Context, what, query string, args ...any) ([]*outline.Node, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", what, err)
	}
	defer rows.Close()

	nodes := []*outline.Node{}
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}
	return nodes, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNode(row scanner) (*outline.Node, error) {
	var n outline.Node
	if err := row.Scan(&n.ID, &n.Kind, &n.Text); err != nil {
		return nil, err
	}
	return &n, nil
}
