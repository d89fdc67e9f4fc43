package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/grandnode/grandnode2-sub005/internal/config"
	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/store/mongodb"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show installation status of the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		adapter := mongodb.New()
		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		collections, err := adapter.ListCollections(ctx)
		if err != nil {
			return fmt.Errorf("failed to list collections: %w", err)
		}

		var versions []models.DataVersion
		if err := adapter.Find(ctx, models.VersionCollection, bson.M{}, &versions); err != nil {
			return fmt.Errorf("failed to read version stamp: %w", err)
		}

		if len(versions) == 0 {
			color.Yellow("⚠️  Database is not installed (%d collections present)", len(collections))
			return nil
		}

		color.Green("✅ Database is installed")
		for _, v := range versions {
			fmt.Printf("   version:      %s\n", v.DataBaseVersion)
			fmt.Printf("   installed on: %s\n", v.InstalledOnUtc.Format(time.RFC3339))
		}
		fmt.Printf("   collections:  %d\n", len(collections))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
