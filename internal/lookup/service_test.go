package lookup

import (
	"context"
	"fmt"
	"testing"
	"time"

	"county-portal-api/internal/county"
	"county-portal-api/internal/event"

	"github.com/glebarez/sqlite"
	"github.com/google/go-cmp/cmp"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&county.County{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestLookupService_GetCountries(t *testing.T) {
	db := newTestDB(t)
	ls := NewLookupService(db)

	got, err := ls.GetCountries(context.Background())
	if err != nil {
		t.Fatalf("empty: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	for _, c := range []county.County{
		{Name: "Kent", Country: "England"},
		{Name: "Fife", Country: "Scotland"},
		{Name: "Essex", Country: "England"},
		{Name: "Nowhere"},
	} {
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err = ls.GetCountries(context.Background())
	if err != nil {
		t.Fatalf("GetCountries: %v", err)
	}
	if diff := cmp.Diff([]string{"England", "Scotland"}, got); diff != "" {
		t.Fatalf("countries mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupService_GetVocabularies_ReturnsCopies(t *testing.T) {
	ls := &LookupService{}
	v := ls.GetVocabularies()
	if diff := cmp.Diff(event.Categories, v.EventCategories); diff != "" {
		t.Fatalf("event categories mismatch:\n%s", diff)
	}

	v.EventCategories[0] = "mutated"
	if event.Categories[0] == "mutated" {
		t.Fatalf("vocabularies must not alias package slices")
	}
}
