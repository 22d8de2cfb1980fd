package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lbs-gateway/pkg/lbs"
)

// NewCoordCommand - перевод координат в систему сервиса
func NewCoordCommand(opts *GlobalOptions) *cobra.Command {
	var typ int

	cmd := &cobra.Command{
		Use:     "coord LOCATIONS",
		Short:   "Translate coordinates into the service datum",
		Example: `  lbsctl coord "39.12,116.83;30.21,115.43" --type 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.CoordTranslate(ctx, args[0], lbs.CoordType(typ), p)
			})
		},
	}
	cmd.Flags().IntVar(&typ, "type", int(lbs.CoordGPS), "source datum: 1 GPS, 2 Sogou, 3 Baidu, 4 MapBar, 5 Tencent, 6 Sogou Mercator")

	return cmd
}

// NewIPCommand - местоположение по IP
func NewIPCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ip ADDRESS",
		Short: "Locate an IP address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.IPLocation(ctx, args[0], p)
			})
		},
	}
}

// NewNetworkCommand - местоположение по сетевым данным устройства
func NewNetworkCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "network DEVICE_ID",
		Short:   "Locate a device by cell towers and Wi-Fi (pass them with -o)",
		Example: `  lbsctl network dev-1 -o wifiinfo='[{"mac":"...","rssi":-50}]'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c *lbs.Client, p lbs.Params) (*lbs.Envelope, error) {
				return c.NetworkLocation(ctx, args[0], p)
			})
		},
	}
}
