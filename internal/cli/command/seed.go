package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"ratehub/database"
	"ratehub/internal/config"
	"ratehub/internal/http-api/middleware/auth"
	"ratehub/internal/http-api/models"
	"ratehub/internal/http-api/repository"

	"github.com/spf13/cobra"
)

var (
	seedAdminUsername string
	seedAdminPassword string
)

// defaultDimensions is the initial catalog for a fresh install.
var defaultDimensions = []models.RatingDimension{
	{Name: "Innovation", Description: "How novel the work is"},
	{Name: "Professionalism", Description: "Technical depth and rigor"},
	{Name: "Practicality", Description: "Real world applicability"},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the initial admin account and rating dimension catalog",
	Long: `seed bootstraps a fresh database: it creates an admin account with the
given credentials and, when the catalog is empty, the default rating
dimensions. Running it against an already seeded database only adds what
is missing.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedAdminUsername, "username", "admin", "admin account username")
	seedCmd.Flags().StringVar(&seedAdminPassword, "password", "", "admin account password (required)")
	seedCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	adminRepo := repository.NewAdminRepository(db)
	dimensionRepo := repository.NewDimensionRepository(db)

	if _, err := adminRepo.FindByUsername(ctx, seedAdminUsername); err == nil {
		logger.Info("admin account already exists", "username", seedAdminUsername)
	} else {
		hash, err := auth.HashPassword(seedAdminPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if err := adminRepo.Create(ctx, &models.Admin{Username: seedAdminUsername, Password: hash}); err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		logger.Info("admin account created", "username", seedAdminUsername)
	}

	existing, err := dimensionRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read dimension catalog: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("dimension catalog already seeded", "count", len(existing))
		return nil
	}

	for i := range defaultDimensions {
		if err := dimensionRepo.Create(ctx, &defaultDimensions[i]); err != nil {
			return fmt.Errorf("create dimension %q: %w", defaultDimensions[i].Name, err)
		}
	}
	logger.Info("dimension catalog seeded", "count", len(defaultDimensions))
	return nil
}
