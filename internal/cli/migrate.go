package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the products and sales tables",
	Long:  "Creates tables and indexes that do not exist yet. Safe to run repeatedly.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)
		defer log.Sync()

		db, err := openMigrated(cmd, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		log.Info("Database migrated", zap.String("driver", cfg.Database.Driver))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
