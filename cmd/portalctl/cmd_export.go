package main

import (
	"context"
	"fmt"
	"os"

	"county-portal-api/internal/admin"
	"county-portal-api/internal/government"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the council directory as xlsx or csv",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", admin.FormatXLSX, "Output format: xlsx or csv")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (default: councils.<format>)")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	svc := &admin.AdminService{Councils: &government.GovernmentService{DB: db}}
	_, filename, data, err := svc.ExportCouncils(ctx, exportFormat)
	if err != nil {
		return err
	}

	path := exportOut
	if path == "" {
		path = filename
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	logger.Info("exported councils", zap.String("path", path), zap.Int("bytes", len(data)))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
