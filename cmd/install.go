package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grandnode/grandnode2-sub005/internal/config"
	"github.com/grandnode/grandnode2-sub005/internal/installer"
	"github.com/grandnode/grandnode2-sub005/internal/store/mongodb"
)

var (
	installEmail      string
	installPassword   string
	installCollation  string
	installSampleData bool
	installImagesDir  string

	companyName    string
	companyAddress string
	companyPhone   string
	companyEmail   string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the database schema and reference data",
	Long: `Connect to the database named in MONGODB_URL, create every collection
and index, and load the reference data. The admin account is created with
the given email and password; the password is stored hashed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
		defer cancel()

		adapter := mongodb.New()
		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer logger.Sync()

		opts := installer.InstallOptions{
			AdminEmail:        installEmail,
			AdminPassword:     installPassword,
			Collation:         installCollation,
			InstallSampleData: installSampleData,
			SampleImagesDir:   installImagesDir,
			Company: installer.CompanyInfo{
				Name:    companyName,
				Address: companyAddress,
				Phone:   companyPhone,
				Email:   companyEmail,
			},
		}

		inst := installer.New(adapter, cfg, logger)

		color.Cyan("🚀 Installing database...")
		start := time.Now()

		if err := inst.InstallData(ctx, opts); err != nil {
			if errors.Is(err, installer.ErrAlreadyInstalled) {
				color.Yellow("⚠️  Database is already installed, nothing to do")
				return nil
			}
			color.Red("❌ Installation failed: %v", err)
			return err
		}

		color.Green("✅ Installation complete in %s", time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	installCmd.Flags().StringVar(&installEmail, "email", "", "admin account email (required)")
	installCmd.Flags().StringVar(&installPassword, "password", "", "admin account password (required)")
	installCmd.Flags().StringVar(&installCollation, "collation", "", "collection collation locale (default en)")
	installCmd.Flags().BoolVar(&installSampleData, "sample-data", false, "also load the sample catalog")
	installCmd.Flags().StringVar(&installImagesDir, "images-dir", "", "directory with sample product images")

	installCmd.Flags().StringVar(&companyName, "company-name", "Your company name", "store company name")
	installCmd.Flags().StringVar(&companyAddress, "company-address", "your company country, state, zip, street, etc", "store company address")
	installCmd.Flags().StringVar(&companyPhone, "company-phone", "(888) 555-1212", "store company phone")
	installCmd.Flags().StringVar(&companyEmail, "company-email", "mail@yourcompany.com", "store company email")

	installCmd.MarkFlagRequired("email")
	installCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(installCmd)
}
