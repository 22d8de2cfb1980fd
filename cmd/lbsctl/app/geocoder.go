package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lbs-gateway/pkg/lbs"
)

// NewGeocodeCommand - адрес в координаты
func NewGeocodeCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "geocode ADDRESS",
		Short:   "Resolve an address to coordinates",
		Example: `  lbsctl geocode "北京市海淀区彩和坊路海淀西大街74号"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.Geocode(ctx, args[0], p)
			})
		},
	}
}

// NewReverseCommand - координаты в адрес
func NewReverseCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "reverse LAT,LNG",
		Short:   "Resolve coordinates to an address",
		Example: `  lbsctl reverse 39.984154,116.307490 -o get_poi=1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.ReverseGeocode(ctx, args[0], p)
			})
		},
	}
}

// NewSmartCommand - геокодирование неструктурированного адреса
func NewSmartCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "smart ADDRESS",
		Short: "Geocode a free-form address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.SmartGeocode(ctx, args[0], p)
			})
		},
	}
}
