package main

import (
	"fmt"
	"os"
	"time"

	"county-portal-api/config"
	"county-portal-api/internal/bootstrap"
	"county-portal-api/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	logger  *zap.Logger
	cfg     config.Config
	timeout time.Duration

	// openDB is swapped in tests.
	openDB = func(c config.Config) (*gorm.DB, error) {
		db, err := bootstrap.OpenDB(c)
		if err != nil {
			return nil, err
		}
		return db, bootstrap.Migrate(db)
	}
)

var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Maintenance commands for the county portal",
	Long: `portalctl runs the portal's maintenance jobs against the configured database.

Available commands:
  seed     - Load counties from a YAML file
  backfill - Geocode events or volunteer services missing coordinates
  export   - Write the council directory as xlsx or csv`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadConfig()
		if logger != nil {
			return nil
		}
		l, err := logging.New(cfg.IsDevelopment())
		if err != nil {
			return err
		}
		logger = l
		zap.ReplaceGlobals(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Minute, "Operation timeout")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(backfillCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
