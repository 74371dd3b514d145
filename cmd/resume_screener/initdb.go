package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/hexaview/resume-screener/internal/config"
	"github.com/hexaview/resume-screener/internal/db"
)

var (
	initAdminUsername string
	initAdminPassword string
	initAdminEmail    string
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the database schema and seed reference data",
	Long: `Create all tables, seed the role catalog and default settings, and
optionally create the initial admin account when --admin-password is given.`,
	RunE: runInitDB,
}

func init() {
	initDBCmd.Flags().StringVar(&initAdminUsername, "admin-username", "admin", "Username for the initial admin account")
	initDBCmd.Flags().StringVar(&initAdminPassword, "admin-password", "", "Password for the initial admin account (skipped when empty)")
	initDBCmd.Flags().StringVar(&initAdminEmail, "admin-email", "admin@hexaview.com", "Email for the initial admin account")
	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	ctx := cmd.Context()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	log.Println("[INIT-DB] schema created")

	if err := database.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed reference data: %w", err)
	}
	log.Println("[INIT-DB] role catalog and settings seeded")

	if initAdminPassword != "" {
		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			return err
		}
		hash, err := passwordConfig.HashPassword(initAdminPassword)
		if err != nil {
			return err
		}
		if err := database.SeedAdmin(ctx, initAdminUsername, hash, initAdminEmail); err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}
		log.Printf("[INIT-DB] admin account %s created", initAdminUsername)
	}

	return nil
}
