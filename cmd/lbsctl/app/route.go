package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lbs-gateway/pkg/lbs"
)

// NewDirectionCommand - маршрут между двумя точками
func NewDirectionCommand(opts *GlobalOptions) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:       "direction MODE",
		Short:     "Plan a route (driving, walking, bicycling, ebicycling, transit)",
		Example:   `  lbsctl direction driving --from 39.915285,116.403857 --to 39.915285,116.803857`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"driving", "walking", "bicycling", "ebicycling", "transit"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.Direction(ctx, lbs.Mode(args[0]), from, to, p)
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start point lat,lng")
	cmd.Flags().StringVar(&to, "to", "", "end point lat,lng")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// NewTruckingCommand - маршрут для грузовика
func NewTruckingCommand(opts *GlobalOptions) *cobra.Command {
	var (
		from, to string
		truck    lbs.Truck
	)

	cmd := &cobra.Command{
		Use:   "trucking",
		Short: "Plan a truck route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.DirectionTrucking(ctx, from, to, truck, p)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&from, "from", "", "start point lat,lng")
	f.StringVar(&to, "to", "", "end point lat,lng")
	f.IntVar(&truck.Size, "size", 2, "truck class 1..4")
	f.Float64Var(&truck.Height, "height", 3, "height, m")
	f.Float64Var(&truck.Width, "width", 2.5, "width, m")
	f.Float64Var(&truck.Weight, "weight", 10, "total weight, t")
	f.Float64Var(&truck.AxleWeight, "axle-weight", 5, "axle load, t")
	f.IntVar(&truck.AxleCount, "axle-count", 2, "number of axles")
	f.BoolVar(&truck.IsTrailer, "trailer", false, "truck with a trailer")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// NewMatrixCommand - матрица расстояний
func NewMatrixCommand(opts *GlobalOptions) *cobra.Command {
	var mode, from, to string

	cmd := &cobra.Command{
		Use:     "matrix",
		Short:   "Distance matrix between point sets",
		Example: `  lbsctl matrix --mode driving --from "39.984,116.307;39.977,116.337" --to "39.949,116.394"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.DistanceMatrix(ctx, lbs.Mode(mode), from, to, p)
			})
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(lbs.ModeDriving), "driving, walking or bicycling")
	cmd.Flags().StringVar(&from, "from", "", "origins lat,lng;lat,lng")
	cmd.Flags().StringVar(&to, "to", "", "destinations lat,lng;lat,lng")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
