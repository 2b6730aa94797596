package main

import (
	"context"
	"fmt"

	"marketplace_trust/internal/adapter/persistence/repository"
	"marketplace_trust/internal/infrastructure/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCmd() *cobra.Command {
	var (
		dir        string
		skipDynamo bool
	)
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply Postgres migrations and create missing DynamoDB tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cfg, log, err := loadConfigAndLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cfg.Postgres.URL != "" {
				pool, err := database.NewPostgresPool(ctx, cfg.Postgres.URL, 2)
				if err != nil {
					return err
				}
				defer pool.Close()
				applied, err := database.ApplyMigrations(ctx, pool, dir)
				if err != nil {
					return err
				}
				log.Info("postgres migrations applied", zap.Strings("files", applied))
			}

			if skipDynamo {
				return nil
			}
			ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
				Region:          cfg.DynamoDB.Region,
				Endpoint:        cfg.DynamoDB.Endpoint,
				AccessKeyID:     cfg.DynamoDB.AccessKeyID,
				SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
			})
			if err != nil {
				return fmt.Errorf("connect dynamodb: %w", err)
			}
			tables := append(repository.NewEscrowDynamoRepository(ddb).Tables(), repository.NewDisputeDynamoRepository(ddb).Tables()...)
			return database.EnsureTables(ctx, ddb, log, tables...)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory holding the .sql migrations")
	cmd.Flags().BoolVar(&skipDynamo, "skip-dynamodb", false, "only apply Postgres migrations")
	return cmd
}
