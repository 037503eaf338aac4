package main

import (
	"context"
	"database/sql"
	"io/fs"
	root "launcher"
	"launcher/internal/config"
	"launcher/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies the domains
// schema and the River job tables up to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB)

			// domains schema
			migrations, err := fs.Sub(root.Migrations, "migrations")
			if err != nil {
				logger.Fatal(ctx, "could not open embedded migrations", zap.Error(err))
			}
			provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
			if err != nil {
				logger.Fatal(ctx, "could not create goose provider", zap.Error(err))
			}
			results, err := provider.Up(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			for _, res := range results {
				logger.Info(ctx, "applied migration",
					zap.Int64("version", res.Source.Version),
					zap.String("path", res.Source.Path),
					zap.Duration("duration", res.Duration))
			}

			// river job tables
			migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
			if err != nil {
				logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
			}
			res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue tables", zap.Error(err))
			}
			for _, version := range res.Versions {
				logger.Info(ctx, "applied river migration",
					zap.Int("version", version.Version),
					zap.Duration("duration", version.Duration))
			}
		},
	}

	return cmd
}
