package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/notedown/treewalk/internal/outline"
	"github.com/notedown/treewalk/internal/query"
	"github.com/notedown/treewalk/internal/store"
	"github.com/notedown/treewalk/tree"
)

// SourceOptions selects where a command reads its outline from.
type SourceOptions struct {
	DB string // SQLite store; when set the argument is a node ID instead of a file
}

// source is an outline root together with the child function that expands it.
type source struct {
	root     *outline.Node
	children query.ChildFunc
	closer   func() error
}

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// openSource resolves a command argument to an outline. Without --db the argument
// is an outline file loaded into memory. With --db it is the ID of a stored node,
// and children are read from the store as the traversal reaches them.
func openSource(ctx context.Context, opts *SourceOptions, arg string, formatter *OutputFormatter) (*source, error) {
	if opts.DB == "" {
		root, err := outline.Load(arg, outline.UUIDv7Generator{})
		if err != nil {
			return nil, err
		}
		formatter.VerboseLog("Loaded outline from %s", arg)
		return &source{root: root, children: tree.Infallible(outline.Children)}, nil
	}

	st, err := openExistingStore(opts.DB)
	if err != nil {
		return nil, err
	}
	formatter.VerboseLog("Opened store %s", opts.DB)

	root, err := st.Node(ctx, arg)
	if err != nil {
		st.Close()
		return nil, err
	}
	return &source{root: root, children: st.ChildrenFunc(ctx), closer: st.Close}, nil
}

// openExistingStore opens a store for reading. Unlike store.Open it refuses to
// create a new database file.
func openExistingStore(path string) (*store.Store, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, &codedError{
			code: ErrCodeNotFound,
			exit: ExitCommandError,
			err:  fmt.Errorf("database not found: %s", path),
		}
	}
	return openStore(path)
}

func openStore(path string) (*store.Store, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, &codedError{code: ErrCodeStore, exit: ExitCommandError, err: err}
	}
	return st, nil
}
