package geocode

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedGeocoder struct {
	mu    sync.Mutex
	calls []string
	fn    func(location string) (Coordinates, bool, error)
}

func (s *scriptedGeocoder) Lookup(_ context.Context, location, county string) (Coordinates, bool, error) {
	s.mu.Lock()
	s.calls = append(s.calls, location+"|"+county)
	s.mu.Unlock()
	return s.fn(location)
}

type memStore struct {
	records map[uint]*Target
	order   []uint
	failSet map[uint]bool
}

func newMemStore(ts ...Target) *memStore {
	m := &memStore{records: map[uint]*Target{}, failSet: map[uint]bool{}}
	for i := range ts {
		t := ts[i]
		m.records[t.ID] = &t
		m.order = append(m.order, t.ID)
	}
	return m
}

func (m *memStore) Noun() string { return "events" }

func (m *memStore) MissingCoordinates(context.Context) ([]Target, error) {
	out := []Target{}
	for _, id := range m.order {
		if t := m.records[id]; !t.HasCoordinates() {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memStore) SetCoordinates(_ context.Context, id uint, c Coordinates) error {
	if m.failSet[id] {
		return errors.New("write failed")
	}
	lat, lng := c.Latitude, c.Longitude
	m.records[id].Latitude = &lat
	m.records[id].Longitude = &lng
	return nil
}

func f(v float64) *float64 { return &v }

func TestEnricher_Lookup_EmptyLocationNeverCallsService(t *testing.T) {
	g := &scriptedGeocoder{fn: func(string) (Coordinates, bool, error) {
		t.Fatalf("geocoder must not be called")
		return Coordinates{}, false, nil
	}}
	e := &Enricher{Geocoder: g}

	for _, loc := range []string{"", "   ", "\t\n"} {
		_, _, err := e.Lookup(context.Background(), loc, "Kent")
		require.ErrorIs(t, err, ErrEmptyLocation)
	}
	assert.Empty(t, g.calls)
}

func TestEnricher_Lookup_TrimsInput(t *testing.T) {
	g := &scriptedGeocoder{fn: func(string) (Coordinates, bool, error) {
		return Coordinates{Latitude: 51.1, Longitude: 0.5}, true, nil
	}}
	e := &Enricher{Geocoder: g}

	c, found, err := e.Lookup(context.Background(), "  Town Hall ", " Kent ")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 51.1, c.Latitude)
	assert.Equal(t, []string{"Town Hall|Kent"}, g.calls)
}

func TestEnricher_Enrich_Outcomes(t *testing.T) {
	g := &scriptedGeocoder{fn: func(loc string) (Coordinates, bool, error) {
		switch loc {
		case "found":
			return Coordinates{Latitude: 0, Longitude: 0}, true, nil
		case "boom":
			return Coordinates{}, false, errors.New("service down")
		default:
			return Coordinates{}, false, nil
		}
	}}
	e := &Enricher{Geocoder: g}
	store := newMemStore(
		Target{ID: 1, Location: "found"},
		Target{ID: 2, Location: "nowhere"},
		Target{ID: 3, Location: "boom"},
	)
	ctx := context.Background()

	out, coords, err := e.Enrich(ctx, store, *store.records[1])
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, out)
	require.NotNil(t, coords)
	assert.True(t, store.records[1].HasCoordinates(), "zero coordinates are still coordinates")

	out, _, err = e.Enrich(ctx, store, *store.records[2])
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, out)
	assert.False(t, store.records[2].HasCoordinates())

	out, _, err = e.Enrich(ctx, store, *store.records[3])
	require.Error(t, err)
	assert.Equal(t, OutcomeError, out)
	assert.False(t, store.records[3].HasCoordinates())
}

func TestEnricher_Backfill_ProcessesOnlyMissingAndIsIdempotent(t *testing.T) {
	g := &scriptedGeocoder{fn: func(loc string) (Coordinates, bool, error) {
		switch loc {
		case "nowhere":
			return Coordinates{}, false, nil
		case "boom":
			return Coordinates{}, false, errors.New("service down")
		default:
			return Coordinates{Latitude: 52, Longitude: -1}, true, nil
		}
	}}
	e := &Enricher{Geocoder: g}
	store := newMemStore(
		Target{ID: 1, Title: "Fair", Location: "Green"},
		Target{ID: 2, Title: "Done", Location: "Hall", Latitude: f(1), Longitude: f(2)},
		Target{ID: 3, Title: "Lost", Location: "nowhere"},
		Target{ID: 4, Title: "Broken", Location: "boom"},
		Target{ID: 5, Title: "Half", Location: "Park", Latitude: f(3)},
	)

	var progress []Progress
	report, err := e.Backfill(context.Background(), store, func(p Progress) { progress = append(progress, p) })
	require.NoError(t, err)

	// N=5, M=1 with both coordinates: exactly four lookups.
	assert.Len(t, g.calls, 4)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Updated)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1.0, *store.records[2].Latitude, "already enriched record untouched")

	assert.Equal(t, []string{
		"Found 4 events to process...",
		`  -> SUCCESS: Updated coordinates for "Fair"`,
		`  -> SKIPPED: Could not find coordinates for "Lost" at location "nowhere"`,
		`  -> ERROR: Failed to process "Broken".`,
		`  -> SUCCESS: Updated coordinates for "Half"`,
		"Processing complete!",
	}, report.Log)

	last := progress[len(progress)-2]
	assert.Equal(t, 4, last.Processed)
	assert.Equal(t, 4, last.Total)

	// second run only revisits the two records that still lack coordinates
	g.calls = nil
	report, err = e.Backfill(context.Background(), store, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.Len(t, g.calls, 2)
}

func TestEnricher_Backfill_NothingToDo(t *testing.T) {
	g := &scriptedGeocoder{fn: func(string) (Coordinates, bool, error) {
		t.Fatalf("no lookups expected")
		return Coordinates{}, false, nil
	}}
	e := &Enricher{Geocoder: g}
	store := newMemStore(Target{ID: 1, Latitude: f(1), Longitude: f(1)})

	report, err := e.Backfill(context.Background(), store, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, []string{"All events already have coordinates. Nothing to do."}, report.Log)
}

func TestEnricher_Backfill_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := &scriptedGeocoder{fn: func(string) (Coordinates, bool, error) {
		cancel()
		return Coordinates{}, false, nil
	}}
	e := &Enricher{Geocoder: g}
	store := newMemStore(Target{ID: 1, Location: "a"}, Target{ID: 2, Location: "b"})

	report, err := e.Backfill(ctx, store, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, g.calls, 1)
	assert.True(t, strings.HasPrefix(report.Log[0], "Found 2"))
}
