package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lbs-gateway/pkg/lbs"
)

// NewDistrictCommand - административное деление
func NewDistrictCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "district",
		Short: "Administrative divisions",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Full division tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.DistrictList(ctx, p)
			})
		},
	}

	children := &cobra.Command{
		Use:   "children ID",
		Short: "Children of a division (adcode)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.DistrictChildren(ctx, args[0], p)
			})
		},
	}

	search := &cobra.Command{
		Use:   "search KEYWORD",
		Short: "Search divisions by name or code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.DistrictSearch(ctx, args[0], p)
			})
		},
	}

	cmd.AddCommand(list, children, search)
	return cmd
}
