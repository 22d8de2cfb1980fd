package app

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lbs-gateway/internal/domain"
	"github.com/lbs-gateway/internal/repository/cache"
	redisRepo "github.com/lbs-gateway/internal/repository/redis"
)

// NewPublishCommand - постановка запроса геокодирования в стрим воркера
func NewPublishCommand(opts *GlobalOptions) *cobra.Command {
	var address, location string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Queue a geocode request for lbs-gateway-worker",
		Long: `Publish a geocode request to the stream:lbs:geocode Redis stream and print
its request_id. The worker answers in stream:lbs:geocode:done.

Redis is configured with REDIS_HOST, REDIS_PORT, REDIS_PASSWORD and REDIS_DB.`,
		Example: `  lbsctl publish --address "北京市海淀区彩和坊路海淀西大街74号"
  lbsctl publish --location 39.984154,116.307490 -o get_poi=1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if address == "" && location == "" {
				return errors.New("--address or --location is required")
			}

			event := domain.GeocodeRequestEvent{
				RequestID: uuid.New(),
				Address:   address,
				Location:  location,
			}
			if p := opts.params(); p != nil {
				event.Options = p
			}

			rdb, err := cache.NewRedis(opts.redisConfig(), zap.NewNop())
			if err != nil {
				return err
			}
			defer rdb.Close()

			streamRepo := redisRepo.NewStreamRepository(rdb.Client(), zap.NewNop())
			if err := streamRepo.PublishToStream(cmd.Context(), domain.StreamGeocodeRequest, event); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), event.RequestID.String())
			return err
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "address to geocode")
	cmd.Flags().StringVar(&location, "location", "", "lat,lng to reverse geocode")

	return cmd
}
