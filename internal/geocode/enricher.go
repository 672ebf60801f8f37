package geocode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"county-portal-api/internal/metrics"

	"go.uber.org/zap"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeSkipped Outcome = "SKIPPED"
	OutcomeError   Outcome = "ERROR"
)

// Target is the slice of a record the enricher needs.
type Target struct {
	ID        uint
	Title     string
	Location  string
	County    string
	Latitude  *float64
	Longitude *float64
}

// HasCoordinates is false only when a coordinate is absent; zero is a valid value.
func (t Target) HasCoordinates() bool {
	return t.Latitude != nil && t.Longitude != nil
}

// Store is one entity kind that carries coordinates.
type Store interface {
	// Noun names the records in log lines, e.g. "events".
	Noun() string
	MissingCoordinates(ctx context.Context) ([]Target, error)
	SetCoordinates(ctx context.Context, id uint, c Coordinates) error
}

type Progress struct {
	Processed int    `json:"processed"`
	Total     int    `json:"total"`
	Updated   int    `json:"updated"`
	Line      string `json:"line"`
}

type Report struct {
	Total   int      `json:"total"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Log     []string `json:"log"`
}

type Enricher struct {
	Geocoder Geocoder
	// Timeout bounds each lookup; zero means no bound beyond ctx.
	Timeout time.Duration
	Logger  *zap.Logger
}

func (e *Enricher) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Lookup validates the location before asking the geocoder. A blank location fails
// with ErrEmptyLocation and never reaches the service.
func (e *Enricher) Lookup(ctx context.Context, location, county string) (Coordinates, bool, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Coordinates{}, false, ErrEmptyLocation
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	coords, found, err := e.Geocoder.Lookup(ctx, location, strings.TrimSpace(county))
	switch {
	case err != nil:
		metrics.RecordGeocode("error")
	case !found:
		metrics.RecordGeocode("not_found")
	default:
		metrics.RecordGeocode("success")
	}
	return coords, found, err
}

// Enrich looks up one record and persists the coordinates when found. Records are
// left untouched on not-found and on error. There is no retry.
func (e *Enricher) Enrich(ctx context.Context, store Store, t Target) (Outcome, *Coordinates, error) {
	coords, found, err := e.Lookup(ctx, t.Location, t.County)
	if errors.Is(err, ErrEmptyLocation) {
		return OutcomeSkipped, nil, nil
	}
	if err != nil {
		return OutcomeError, nil, err
	}
	if !found {
		return OutcomeSkipped, nil, nil
	}
	if err := store.SetCoordinates(ctx, t.ID, coords); err != nil {
		return OutcomeError, nil, err
	}
	return OutcomeSuccess, &coords, nil
}

// Backfill enriches, one at a time, every record of store that lacks coordinates.
// A failed record is logged and the batch moves on. onProgress may be nil.
func (e *Enricher) Backfill(ctx context.Context, store Store, onProgress func(Progress)) (Report, error) {
	report := Report{Log: []string{}}
	emit := func(p Progress) {
		report.Log = append(report.Log, p.Line)
		if onProgress != nil {
			onProgress(p)
		}
	}

	targets, err := store.MissingCoordinates(ctx)
	if err != nil {
		return report, err
	}

	pending := targets[:0:0]
	for _, t := range targets {
		if !t.HasCoordinates() {
			pending = append(pending, t)
		}
	}
	report.Total = len(pending)

	if len(pending) == 0 {
		emit(Progress{Line: fmt.Sprintf("All %s already have coordinates. Nothing to do.", store.Noun())})
		return report, nil
	}
	emit(Progress{Total: report.Total, Line: fmt.Sprintf("Found %d %s to process...", report.Total, store.Noun())})

	for i, t := range pending {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		outcome, _, err := e.Enrich(ctx, store, t)
		var line string
		switch outcome {
		case OutcomeSuccess:
			report.Updated++
			line = fmt.Sprintf(`  -> SUCCESS: Updated coordinates for "%s"`, t.Title)
		case OutcomeSkipped:
			report.Skipped++
			line = fmt.Sprintf(`  -> SKIPPED: Could not find coordinates for "%s" at location "%s"`, t.Title, t.Location)
		default:
			report.Failed++
			line = fmt.Sprintf(`  -> ERROR: Failed to process "%s".`, t.Title)
			e.logger().Warn("backfill record failed",
				zap.String("store", store.Noun()),
				zap.Uint("id", t.ID),
				zap.Error(err))
		}

		emit(Progress{Processed: i + 1, Total: report.Total, Updated: report.Updated, Line: line})
	}

	emit(Progress{Processed: report.Total, Total: report.Total, Updated: report.Updated, Line: "Processing complete!"})
	return report, nil
}
