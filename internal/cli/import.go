package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notedown/treewalk/internal/outline"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	DB       string
	IDPrefix string
}

// importResult is the JSON payload of the import command.
type importResult struct {
	Root  string `json:"root"`
	Nodes int    `json:"nodes"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Save an outline file into a SQLite store",
		Long: `Load an outline file and save it into a SQLite store as a new root.

Nodes without an ID get a UUIDv7, or prefix-1, prefix-2, ... in breadth-first
order when --id-prefix is set. The store is created if it does not exist.

Example:
  treewalk import notes.yaml --db notes.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.IDPrefix, "id-prefix", "", "assign sequential IDs with this prefix instead of UUIDs")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runImport(opts *ImportOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	var ids outline.IDGenerator = outline.UUIDv7Generator{}
	if opts.IDPrefix != "" {
		ids = outline.NewSequenceGenerator(opts.IDPrefix)
	}

	root, err := outline.Load(path, ids)
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("Loaded outline from %s", path)

	st, err := openStore(opts.DB)
	if err != nil {
		return formatter.Fail(err)
	}
	defer st.Close()

	n, err := st.Save(cmd.Context(), root)
	if err != nil {
		return formatter.Fail(&codedError{code: ErrCodeStore, exit: ExitFailure, err: err})
	}

	if formatter.JSON() {
		return formatter.Success(importResult{Root: root.ID, Nodes: n})
	}
	fmt.Fprintf(formatter.Writer, "imported %d node(s), root %s\n", n, root.ID)
	return nil
}
