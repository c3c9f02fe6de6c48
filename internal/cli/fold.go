package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notedown/treewalk/internal/query"
)

// FoldOptions holds flags for the fold command.
type FoldOptions struct {
	*RootOptions
	SourceOptions
	Op string
}

// foldResult is the JSON payload of the fold command.
type foldResult struct {
	Op    string `json:"op"`
	Value any    `json:"value"`
}

// NewFoldCommand creates the fold command.
func NewFoldCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FoldOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fold <file | node-id>",
		Short: "Aggregate over every node",
		Long: fmt.Sprintf(`Fold an aggregate over every node in breadth-first order.

Aggregates: %s

Examples:
  treewalk fold notes.yaml --op leaves
  treewalk fold --db notes.db --op kinds 0192f1c4-...`, strings.Join(query.Ops(), ", ")),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFold(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "read from a SQLite store; the argument is a node ID")
	cmd.Flags().StringVar(&opts.Op, "op", "count", "aggregate to compute")

	return cmd
}

func runFold(opts *FoldOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if !slices.Contains(query.Ops(), opts.Op) {
		return formatter.Fail(&query.ExprError{
			Code:    query.ErrCodeBadAggregate,
			Expr:    opts.Op,
			Message: "unknown aggregate, want one of " + strings.Join(query.Ops(), ", "),
		})
	}

	src, err := openSource(cmd.Context(), &opts.SourceOptions, arg, formatter)
	if err != nil {
		return formatter.Fail(err)
	}
	defer src.Close()

	value, err := query.Aggregate(opts.Op, src.root, src.children)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON() {
		return formatter.Success(foldResult{Op: opts.Op, Value: value})
	}

	if counts, ok := value.(map[string]int); ok {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(formatter.Writer, "%s=%d\n", k, counts[k])
		}
		return nil
	}
	fmt.Fprintln(formatter.Writer, value)
	return nil
}
