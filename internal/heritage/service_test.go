package heritage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"county-portal-api/internal/access"
	"county-portal-api/internal/auth"

	"github.com/glebarez/sqlite"
	"github.com/google/go-cmp/cmp"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	alice = &auth.Identity{ID: 1, Email: "alice@test.com", FullName: "Alice Archer", Role: auth.RoleCitizen}
	bob   = &auth.Identity{ID: 2, Email: "bob@test.com", Role: auth.RoleCitizen}
	admin = &auth.Identity{ID: 9, Email: "admin@test.com", Role: auth.RoleAdmin}
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&HeritageRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCleanSources(t *testing.T) {
	got := CleanSources([]string{"", "  Parish register ", "\t", "County archive"})
	if diff := cmp.Diff([]string{"Parish register", "County archive"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if got := CleanSources(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestDisplayCategory(t *testing.T) {
	if DisplayCategory("architecture") != CategoryLocations {
		t.Fatalf("architecture should display as locations")
	}
	if DisplayCategory(CategoryMusic) != CategoryMusic {
		t.Fatalf("other categories unchanged")
	}
}

func TestHeritageService_Create_PendingAndCleaned(t *testing.T) {
	s := &HeritageService{DB: newTestDB(t)}
	ctx := context.Background()

	rec, err := s.Create(ctx, CreateRecordRequest{
		Title:       "Hop Picking",
		Category:    CategoryTradition,
		Description: "Seasonal work",
		Sources:     []string{"", "Oral history", "   "},
		Media: []MediaItem{
			{URL: "https://x/1.jpg", Type: "image", Name: "1.jpg"},
			{URL: "https://x/2.mp3", Type: "audio", Name: "2.mp3"},
		},
	}, alice, "Kent")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Detail(ctx, rec.ID, alice)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got.Verified || got.Status != StatusPending {
		t.Fatalf("new records must be unverified and pending: %+v", got)
	}
	if diff := cmp.Diff([]string{"Oral history"}, []string(got.Sources)); diff != "" {
		t.Fatalf("sources mismatch (-want +got):\n%s", diff)
	}
	if len(got.Media) != 2 || got.Media[0].Type != "image" || got.Media[1].Name != "2.mp3" {
		t.Fatalf("media order not preserved: %+v", got.Media)
	}
	if got.Contributor != "Alice Archer" || got.ContributorEmail != alice.Email || got.County != "Kent" {
		t.Fatalf("unexpected attribution: %+v", got.HeritageRecord)
	}
	if !got.CanModify {
		t.Fatalf("creator should be able to modify")
	}
}

func TestHeritageService_List_AliasesArchitecture(t *testing.T) {
	s := &HeritageService{DB: newTestDB(t)}
	ctx := context.Background()

	for _, req := range []CreateRecordRequest{
		{Title: "Old Mill", Category: "architecture", Description: "d"},
		{Title: "Castle Hill", Category: CategoryLocations, Description: "d"},
		{Title: "Morris Dancing", Category: CategoryMusic, Description: "d"},
	} {
		if _, err := s.Create(ctx, req, alice, "Kent"); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := s.List(ctx, ListFilter{County: "Kent", Category: CategoryLocations})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both location records, got %d", len(got))
	}

	got, _ = s.List(ctx, ListFilter{County: "Kent", Search: "morris"})
	if len(got) != 1 || got[0].Title != "Morris Dancing" {
		t.Fatalf("unexpected search result: %+v", got)
	}

	got, _ = s.List(ctx, ListFilter{County: "Devon"})
	if len(got) != 0 {
		t.Fatalf("expected no records for another county")
	}
}

func TestHeritageService_UpdateDelete_Access(t *testing.T) {
	s := &HeritageService{DB: newTestDB(t)}
	ctx := context.Background()
	rec, err := s.Create(ctx, CreateRecordRequest{Title: "Wassail", Category: CategoryTradition, Description: "d"}, alice, "Kent")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Update(ctx, rec.ID, &HeritageRecord{Title: "x"}, []string{"title"}, bob); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	up, err := s.Update(ctx, rec.ID, &HeritageRecord{Sources: []string{" a ", ""}}, []string{"sources"}, alice)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if diff := cmp.Diff([]string{"a"}, []string(up.Sources)); diff != "" {
		t.Fatalf("sources not cleaned on update (-want +got):\n%s", diff)
	}
	if up.Title != "Wassail" {
		t.Fatalf("untouched column changed: %q", up.Title)
	}

	if _, err := s.Delete(ctx, rec.ID, bob); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	deleted, err := s.Delete(ctx, rec.ID, admin)
	if err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if deleted.County != "Kent" {
		t.Fatalf("delete should return the removed record, got county %q", deleted.County)
	}
}

func TestHeritageService_Recent_ScopedToCounty(t *testing.T) {
	s := &HeritageService{DB: newTestDB(t)}
	ctx := context.Background()
	if _, err := s.Create(ctx, CreateRecordRequest{Title: "Hop picking", Category: CategoryTradition, Description: "d"}, alice, "Kent"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, CreateRecordRequest{Title: "Widecombe Fair", Category: CategoryMusic, Description: "d"}, alice, "Devon"); err != nil {
		t.Fatalf("create: %v", err)
	}

	recent, err := s.Recent(ctx, "Devon", 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].Title != "Widecombe Fair" {
		t.Fatalf("expected only the Devon record, got %+v", recent)
	}
}
