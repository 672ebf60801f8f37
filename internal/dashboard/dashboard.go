// Package dashboard merges the newest submissions across the portal.
package dashboard

import (
	"context"
	"net/http"
	"sort"
	"time"

	"county-portal-api/internal/event"
	"county-portal-api/internal/heritage"
	"county-portal-api/internal/selection"
	"county-portal-api/internal/volunteer"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	perSource = 5
	feedSize  = 6
)

const (
	TypeEvent    = "event"
	TypeService  = "volunteer_service"
	TypeHeritage = "heritage_record"
)

type EventSource interface {
	Recent(ctx context.Context, county string, limit int) ([]event.Event, error)
}

type ServiceSource interface {
	Recent(ctx context.Context, county string, limit int) ([]volunteer.Service, error)
}

type HeritageSource interface {
	Recent(ctx context.Context, county string, limit int) ([]heritage.HeritageRecord, error)
}

// Item is one entry of the recent-submissions feed.
type Item struct {
	Type        string    `json:"type"`
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	County      string    `json:"county"`
	CreatedBy   string    `json:"created_by"`
	CreatedDate time.Time `json:"created_date"`
}

type Dashboard struct {
	Events   EventSource
	Services ServiceSource
	Heritage HeritageSource
}

// Recent loads the newest few of each kind in county concurrently and keeps the newest overall.
func (d *Dashboard) Recent(ctx context.Context, county string) ([]Item, error) {
	var (
		events   []event.Event
		services []volunteer.Service
		records  []heritage.HeritageRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		events, err = d.Events.Recent(gctx, county, perSource)
		return err
	})
	g.Go(func() (err error) {
		services, err = d.Services.Recent(gctx, county, perSource)
		return err
	})
	g.Go(func() (err error) {
		records, err = d.Heritage.Recent(gctx, county, perSource)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(events)+len(services)+len(records))
	for _, e := range events {
		items = append(items, Item{Type: TypeEvent, ID: e.ID, Title: e.Title, Category: e.Category, County: e.County, CreatedBy: e.CreatedBy, CreatedDate: e.CreatedAt})
	}
	for _, s := range services {
		items = append(items, Item{Type: TypeService, ID: s.ID, Title: s.Name, Category: s.Category, County: s.County, CreatedBy: s.CreatedBy, CreatedDate: s.CreatedAt})
	}
	for _, r := range records {
		items = append(items, Item{Type: TypeHeritage, ID: r.ID, Title: r.Title, Category: heritage.DisplayCategory(r.Category), County: r.County, CreatedBy: r.CreatedBy, CreatedDate: r.CreatedAt})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedDate.After(items[j].CreatedDate)
	})
	if len(items) > feedSize {
		items = items[:feedSize]
	}
	return items, nil
}

type DashboardController struct {
	Dashboard *Dashboard
}

func (dc *DashboardController) Recent(c *gin.Context) {
	county, ok := selection.Require(c)
	if !ok {
		return
	}

	items, err := dc.Dashboard.Recent(c.Request.Context(), county)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recent submissions fetched successfully",
		"county":  county,
		"recent":  items,
	})
}

func RegisterRoutes(r *gin.Engine, d *Dashboard) {
	dashboardController := &DashboardController{Dashboard: d}

	group := r.Group("/api/dashboard")
	{
		group.GET("", dashboardController.Recent)
	}
}
