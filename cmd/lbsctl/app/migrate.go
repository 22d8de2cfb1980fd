package app

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lbs-gateway/internal/repository/postgres"
	"github.com/lbs-gateway/internal/repository/postgres/migrations"
)

// NewMigrateCommand - миграции схемы справочника районов
func NewMigrateCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [COMMAND] [ARGS...]",
		Short: "Run database migrations (up, down, status, version, redo, reset)",
		Long: `Run goose commands over the migrations embedded in the binary.

The database is configured with DB_HOST, DB_PORT, DB_USER, DB_PASSWORD,
DB_NAME and DB_SSLMODE. Without COMMAND all pending migrations are applied.`,
		Example: `  lbsctl migrate
  lbsctl migrate status
  lbsctl migrate down-to 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) > 0 {
				command, args = args[0], args[1:]
			}

			db, err := postgres.New(opts.databaseConfig(), zap.NewNop())
			if err != nil {
				return err
			}
			defer db.Close()

			return migrations.Run(cmd.Context(), db.DB.DB, command, args...)
		},
	}
}
