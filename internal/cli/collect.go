package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notedown/treewalk/internal/outline"
	"github.com/notedown/treewalk/internal/query"
	"github.com/notedown/treewalk/tree"
)

// CollectOptions holds flags for the collect command.
type CollectOptions struct {
	*RootOptions
	SourceOptions
	Where string
}

// nodeEntry is a node in JSON output.
type nodeEntry struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// collectResult is the JSON payload of the collect command.
type collectResult struct {
	Where string      `json:"where"`
	Count int         `json:"count"`
	Nodes []nodeEntry `json:"nodes"`
}

func toEntries(nodes []*outline.Node) []nodeEntry {
	entries := make([]nodeEntry, len(nodes))
	for i, n := range nodes {
		entries[i] = nodeEntry{ID: n.ID, Kind: n.Kind, Text: n.Text}
	}
	return entries
}

func writeNodes(formatter *OutputFormatter, nodes []*outline.Node) {
	for _, n := range nodes {
		fmt.Fprintf(formatter.Writer, "%s\t%s\t%s\n", n.ID, n.Kind, n.Text)
	}
}

// NewCollectCommand creates the collect command.
func NewCollectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CollectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "collect <file | node-id>",
		Short: "List the nodes matching a predicate",
		Long: `List the nodes matching a predicate, in breadth-first order.

Predicates: all, none, leaf, kind=<kind>, id=<id>, text~<substr>,
!<expr> to negate, and comma-separated terms for conjunction.

Examples:
  treewalk collect notes.yaml --where leaf
  treewalk collect notes.yaml --where 'kind=paragraph,text~TODO'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "read from a SQLite store; the argument is a node ID")
	cmd.Flags().StringVar(&opts.Where, "where", "all", "predicate expression")

	return cmd
}

func runCollect(opts *CollectOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	src, err := openSource(cmd.Context(), &opts.SourceOptions, arg, formatter)
	if err != nil {
		return formatter.Fail(err)
	}
	defer src.Close()

	pred, err := query.ParsePredicate(opts.Where, src.children)
	if err != nil {
		return formatter.Fail(err)
	}

	matches, err := tree.TryCollect(src.root, src.children, pred)
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("%d node(s) matched %q", len(matches), opts.Where)

	if formatter.JSON() {
		return formatter.Success(collectResult{Where: opts.Where, Count: len(matches), Nodes: toEntries(matches)})
	}
	writeNodes(formatter, matches)
	return nil
}
