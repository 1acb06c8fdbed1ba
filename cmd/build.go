package main

import (
	"context"
	"fmt"
	"grocer/internal/config"
	"grocer/internal/grocer"
	"grocer/pkg/domain"
	"grocer/pkg/logger"
	"grocer/pkg/recipefile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildCommand constructs the 'build' subcommand that consolidates recipe
// files into a grocery list and prints it. It runs entirely locally and never
// touches the database.
func buildCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [recipe files]",
		Short: "Builds a consolidated grocery list from recipe files",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			materialsPath, _ := cmd.Flags().GetString("materials")
			if materialsPath == "" {
				materialsPath = cfg.Build.MaterialsPath
			}

			var materials []domain.Material
			if materialsPath != "" {
				var err error
				materials, err = recipefile.LoadMaterials(materialsPath)
				if err != nil {
					logger.Fatal(ctx, "could not load materials", zap.Error(err))
				}
			}

			recipes, err := recipefile.LoadRecipes(args...)
			if err != nil {
				logger.Fatal(ctx, "could not load recipes", zap.Error(err))
			}

			list, err := grocer.Build(ctx, materials, recipes)
			if err != nil {
				logger.Fatal(ctx, "could not build grocery list", zap.Error(err))
			}

			for _, line := range list.Lines(cfg.Build.SigFigs) {
				fmt.Println(line) //nolint: forbidigo
			}
		},
	}

	cmd.Flags().String("materials", "", "Materials catalog file (JSON)")

	return cmd
}
