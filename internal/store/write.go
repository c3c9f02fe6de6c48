package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/notedown/treewalk/internal/outline"
	"github.com/notedown/treewalk/tree"
)

// placement is a node together with where it sits under its parent.
type placement struct {
	node     *outline.Node
	parentID string
	position int
}

func placementChildren(p placement) []placement {
	kids := outline.Children(p.node)
	out := make([]placement, len(kids))
	for i, k := range kids {
		out[i] = placement{node: k, parentID: p.node.ID, position: i}
	}
	return out
}

// Save writes an outline as a new root in a single transaction and returns the
// number of nodes written. Every node must carry an ID.
//
// Rows are inserted in breadth-first order so parents always precede children.
// On any failure the transaction is rolled back and nothing is written.
func (s *Store) Save(ctx context.Context, root *outline.Node) (int, error) {
	if root == nil {
		return 0, fmt.Errorf("save outline: nil root")
	}
	unnamed := tree.Collect(root, outline.Children, func(n *outline.Node) bool { return n.ID == "" })
	if len(unnamed) > 0 {
		return 0, fmt.Errorf("save outline: %d node(s), first %s: %w", len(unnamed), unnamed[0], ErrMissingID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO nodes (id, parent_id, position, kind, text)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	written := 0
	err = tree.TryWalk(placement{node: root}, tree.Infallible(placementChildren), func(p placement) error {
		parent := sql.NullString{String: p.parentID, Valid: p.parentID != ""}
		if _, err := stmt.ExecContext(ctx, p.node.ID, parent, p.position, p.node.Kind, p.node.Text); err != nil {
			return fmt.Errorf("insert node %q: %w", p.node.ID, err)
		}
		written++
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return written, nil
}

// Delete removes a node and, through the foreign key cascade, its whole subtree.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM nodes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete node %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete node %q: %w", id, err)
	}
	if n == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}
