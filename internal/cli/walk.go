package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notedown/treewalk/tree"
)

// WalkOptions holds flags for the walk command.
type WalkOptions struct {
	*RootOptions
	SourceOptions
}

// walkEntry is one visited node in JSON output.
type walkEntry struct {
	Depth int    `json:"depth"`
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
}

// NewWalkCommand creates the walk command.
func NewWalkCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WalkOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "walk <file | node-id>",
		Short: "List every node in breadth-first order",
		Long: `List every node of an outline in breadth-first order.

Text output prints one node per line as depth, id, kind and text separated by tabs.

Examples:
  treewalk walk notes.yaml
  treewalk walk --db notes.db 0192f1c4-...`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "read from a SQLite store; the argument is a node ID")

	return cmd
}

func runWalk(opts *WalkOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	src, err := openSource(cmd.Context(), &opts.SourceOptions, arg, formatter)
	if err != nil {
		return formatter.Fail(err)
	}
	defer src.Close()

	levels, err := tree.TryLevels(src.root, src.children)
	if err != nil {
		return formatter.Fail(err)
	}

	var entries []walkEntry
	for depth, level := range levels {
		for _, n := range level {
			entries = append(entries, walkEntry{Depth: depth, ID: n.ID, Kind: n.Kind, Text: n.Text})
		}
	}
	formatter.VerboseLog("Visited %d node(s) in %d level(s)", len(entries), len(levels))

	if formatter.JSON() {
		return formatter.Success(entries)
	}
	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "%d\t%s\t%s\t%s\n", e.Depth, e.ID, e.Kind, e.Text)
	}
	return nil
}
