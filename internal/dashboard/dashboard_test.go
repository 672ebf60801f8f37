package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"county-portal-api/internal/event"
	"county-portal-api/internal/heritage"
	"county-portal-api/internal/volunteer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvents []event.Event

func (e fakeEvents) Recent(_ context.Context, county string, limit int) ([]event.Event, error) {
	out := []event.Event{}
	for _, ev := range e {
		if ev.County == county && len(out) < limit {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeServices []volunteer.Service

func (s fakeServices) Recent(_ context.Context, county string, limit int) ([]volunteer.Service, error) {
	out := []volunteer.Service{}
	for _, sv := range s {
		if sv.County == county && len(out) < limit {
			out = append(out, sv)
		}
	}
	return out, nil
}

type fakeRecords struct {
	rows []heritage.HeritageRecord
	err  error
}

func (r fakeRecords) Recent(_ context.Context, county string, _ int) ([]heritage.HeritageRecord, error) {
	out := []heritage.HeritageRecord{}
	for _, rec := range r.rows {
		if rec.County == county {
			out = append(out, rec)
		}
	}
	return out, r.err
}

var base = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func at(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

func TestDashboard_Recent_MergesNewestSix(t *testing.T) {
	d := &Dashboard{
		Events: fakeEvents{
			{ID: 1, Title: "e1", County: "Kent", CreatedAt: at(10)},
			{ID: 2, Title: "e2", County: "Kent", CreatedAt: at(1)},
		},
		Services: fakeServices{
			{ID: 1, Name: "s1", County: "Kent", CreatedAt: at(9)},
			{ID: 2, Name: "s2", County: "Kent", CreatedAt: at(8)},
			{ID: 3, Name: "s3", County: "Kent", CreatedAt: at(2)},
		},
		Heritage: fakeRecords{rows: []heritage.HeritageRecord{
			{ID: 1, Title: "h1", Category: "architecture", County: "Kent", CreatedAt: at(11)},
			{ID: 2, Title: "h2", County: "Kent", CreatedAt: at(7)},
		}},
	}

	items, err := d.Recent(context.Background(), "Kent")
	require.NoError(t, err)
	require.Len(t, items, 6)

	titles := []string{}
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	assert.Equal(t, []string{"h1", "e1", "s1", "s2", "h2", "s3"}, titles)
	assert.Equal(t, TypeHeritage, items[0].Type)
	assert.Equal(t, "locations", items[0].Category)
	assert.Equal(t, TypeService, items[2].Type)
}

func TestDashboard_Recent_FailsOnSourceError(t *testing.T) {
	d := &Dashboard{
		Events:   fakeEvents{},
		Services: fakeServices{},
		Heritage: fakeRecords{err: errors.New("boom")},
	}
	_, err := d.Recent(context.Background(), "Kent")
	require.Error(t, err)
}

func TestDashboard_Recent_ScopedToCounty(t *testing.T) {
	d := &Dashboard{
		Events: fakeEvents{
			{ID: 1, Title: "Kent fair", County: "Kent", CreatedAt: at(1)},
			{ID: 2, Title: "Devon fair", County: "Devon", CreatedAt: at(2)},
		},
		Services: fakeServices{
			{ID: 1, Name: "Moor rescue", County: "Devon", CreatedAt: at(3)},
		},
		Heritage: fakeRecords{rows: []heritage.HeritageRecord{
			{ID: 1, Title: "Hop picking", County: "Kent", CreatedAt: at(4)},
		}},
	}

	items, err := d.Recent(context.Background(), "Kent")
	require.NoError(t, err)

	titles := []string{}
	for _, it := range items {
		assert.Equal(t, "Kent", it.County)
		titles = append(titles, it.Title)
	}
	assert.Equal(t, []string{"Hop picking", "Kent fair"}, titles)
}

func TestDashboardController_Recent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	dc := &DashboardController{Dashboard: &Dashboard{
		Events:   fakeEvents{{ID: 1, Title: "Devon fair", County: "Devon", CreatedAt: at(1)}},
		Services: fakeServices{},
		Heritage: fakeRecords{},
	}}
	r.GET("/dashboard", dc.Recent)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?county=Kent", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recent":[]`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?county=Devon", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Devon fair"`)
}
