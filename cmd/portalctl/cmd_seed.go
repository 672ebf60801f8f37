package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"county-portal-api/internal/county"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>",
	Short: "Load counties from a YAML file",
	Long: `Load counties from a YAML file with a top-level "counties" list.

Counties are matched by name: new names are inserted and existing ones refreshed.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

type seedFile struct {
	Counties []county.County `yaml:"counties"`
}

func loadSeed(r io.Reader) ([]county.County, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, c := range f.Counties {
		if c.Name == "" {
			return nil, fmt.Errorf("seed entry %d has no name", i+1)
		}
	}
	return f.Counties, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	fh, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer fh.Close()

	counties, err := loadSeed(fh)
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	svc := &county.CountyService{DB: db}
	created, updated, err := svc.Seed(ctx, counties)
	if err != nil {
		return err
	}

	logger.Info("seeded counties", zap.Int("created", created), zap.Int("updated", updated))
	fmt.Fprintf(cmd.OutOrStdout(), "%d created, %d updated\n", created, updated)
	return nil
}
