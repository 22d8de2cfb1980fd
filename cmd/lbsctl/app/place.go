package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lbs-gateway/pkg/lbs"
)

// NewPlaceCommand - группа команд поиска мест
func NewPlaceCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Search places",
	}

	var boundary string
	search := &cobra.Command{
		Use:     "search KEYWORD",
		Short:   "Search places by keyword inside a boundary",
		Example: `  lbsctl place search 酒店 --boundary "nearby(39.908491,116.374328,1000)"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.SearchPlaces(ctx, args[0], boundary, p)
			})
		},
	}
	search.Flags().StringVar(&boundary, "boundary", "", "region(...), nearby(...) or rectangle(...)")
	_ = search.MarkFlagRequired("boundary")

	explore := &cobra.Command{
		Use:   "explore BOUNDARY",
		Short: "List places around a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.ExplorePlaces(ctx, args[0], p)
			})
		},
	}

	detail := &cobra.Command{
		Use:   "detail ID",
		Short: "Show a place by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.PlaceDetail(ctx, args[0], p)
			})
		},
	}

	suggest := &cobra.Command{
		Use:     "suggest KEYWORD",
		Aliases: []string{"suggestion"},
		Short:   "Keyword completion",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.Suggestion(ctx, args[0], p)
			})
		},
	}

	cmd.AddCommand(search, explore, detail, suggest)
	return cmd
}
