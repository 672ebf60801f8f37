package main

import (
	"context"
	"fmt"

	"county-portal-api/internal/admin"
	"county-portal-api/internal/bootstrap"
	"county-portal-api/internal/geocode"
	"county-portal-api/internal/logs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var backfillCmd = &cobra.Command{
	Use:       "backfill <events|volunteer_services>",
	Short:     "Geocode records that are missing coordinates",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{admin.KindEvents, admin.KindVolunteerServices},
	RunE:      runBackfill,
}

// newEnricher is swapped in tests.
var newEnricher = func(ctx context.Context) (admin.BackfillRunner, error) {
	return bootstrap.NewEnricher(ctx, cfg, logger)
}

func runBackfill(cmd *cobra.Command, args []string) error {
	kind := args[0]

	db, err := openDB(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	enricher, err := newEnricher(ctx)
	if err != nil {
		return err
	}

	svc := &admin.AdminService{Enricher: enricher, Stores: bootstrap.GeocodeStores(db)}
	out := cmd.OutOrStdout()
	report, err := svc.Backfill(ctx, kind, func(p geocode.Progress) {
		fmt.Fprintln(out, p.Line)
	})
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Backfill %s: %d processed, %d updated, %d skipped, %d failed",
		kind, report.Total, report.Updated, report.Skipped, report.Failed)
	ls := &logs.LogService{DB: db}
	if err := ls.Log(logs.SystemLog{
		Level:   logs.LevelInfo,
		Service: "portalctl",
		Action:  "BACKFILL_COORDINATES",
		Message: msg,
	}, report); err != nil {
		logger.Warn("failed to insert audit log", zap.Error(err))
	}

	fmt.Fprintln(out, msg)
	return nil
}
