package main

import (
	"context"
	"grocer/internal/config"
	"grocer/internal/grocer"
	"grocer/pkg/logger"
	"grocer/pkg/recipefile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// materialsCommand groups material catalog maintenance subcommands.
func materialsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Material catalog maintenance",
	}

	cmd.AddCommand(
		materialsLintCommand(cfg),
		materialsSyncCommand(cfg),
	)

	return cmd
}

// materialsPath resolves the materials file for a subcommand: the positional
// argument when given, otherwise the configured default.
func materialsPath(ctx context.Context, cfg *config.Config, args []string) string {
	path := cfg.Build.MaterialsPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		logger.Fatal(ctx, "no materials file given and none configured")
	}

	return path
}

// materialsLintCommand constructs the 'materials lint' subcommand that checks
// every record of a materials file without touching the database.
func materialsLintCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [materials file]",
		Short: "Validates a materials catalog file",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			materials, err := recipefile.LoadMaterials(materialsPath(ctx, cfg, args))
			if err != nil {
				logger.Fatal(ctx, "could not load materials", zap.Error(err))
			}

			errs := grocer.NewCatalog(ctx, materials).CheckFactors()
			for _, err := range errs {
				logger.Error(ctx, "invalid material record", zap.Error(err))
			}
			if len(errs) > 0 {
				logger.Fatal(ctx, "materials catalog is invalid", zap.Int("problems", len(errs)))
			}

			logger.Info(ctx, "materials catalog is valid", zap.Int("materials", len(materials)))
		},
	}

	return cmd
}

// materialsSyncCommand constructs the 'materials sync' subcommand that upserts
// a materials file into the stored catalog.
func materialsSyncCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [materials file]",
		Short: "Upserts a materials catalog file into the database",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			prune, _ := cmd.Flags().GetBool("prune")

			materials, err := recipefile.LoadMaterials(materialsPath(ctx, cfg, args))
			if err != nil {
				logger.Fatal(ctx, "could not load materials", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := grocer.New(strg, grocer.NewOptions(cfg))
			affected, err := svc.SyncMaterials(ctx, materials, prune)
			if err != nil {
				logger.Fatal(ctx, "could not sync materials", zap.Error(err))
			}

			logger.Info(ctx, "materials synced",
				zap.Int64("affected", affected),
				zap.Bool("prune", prune))
		},
	}

	cmd.Flags().Bool("prune", false, "Remove stored materials absent from the file")

	return cmd
}
