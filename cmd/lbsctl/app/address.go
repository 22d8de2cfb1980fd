package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lbs-gateway/pkg/lbs"
)

// NewAddressCommand - анализ адресов
func NewAddressCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Address analysis",
	}

	single := func(use, short string, call func(*lbs.Client, context.Context, string, lbs.Params) (*lbs.Envelope, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " ADDRESS",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
					return call(c, ctx, args[0], p)
				})
			},
		}
	}

	name := &cobra.Command{
		Use:   "name NAME ADDRESS",
		Short: "Check that a name and an address describe the same place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.NameAddressAnalysis(ctx, args[0], args[1], p)
			})
		},
	}

	var address, location string
	place := &cobra.Command{
		Use:   "place",
		Short: "Place analysis by address or location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.PlaceAnalysis(ctx, address, location, p)
			})
		},
	}
	place.Flags().StringVar(&address, "address", "", "address")
	place.Flags().StringVar(&location, "location", "", "lat,lng")

	cmd.AddCommand(
		single("truth", "Check whether an address exists", (*lbs.Client).TruthAnalysis),
		single("complete", "Complete a partial address", (*lbs.Client).AddressComplete),
		single("abnormal", "Detect anomalies in an address", (*lbs.Client).AbnormalAnalysis),
		name,
		place,
	)
	return cmd
}
