package cli

import (
	"github.com/spf13/cobra"
)

// RootsOptions holds flags for the roots command.
type RootsOptions struct {
	*RootOptions
	DB string
}

// NewRootsCommand creates the roots command.
func NewRootsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RootsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "roots",
		Short:         "List the outlines saved in a store",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoots(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRoots(opts *RootsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := openExistingStore(opts.DB)
	if err != nil {
		return formatter.Fail(err)
	}
	defer st.Close()

	roots, err := st.Roots(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON() {
		return formatter.Success(toEntries(roots))
	}
	writeNodes(formatter, roots)
	return nil
}
