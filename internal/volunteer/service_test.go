package volunteer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"county-portal-api/internal/access"
	"county-portal-api/internal/auth"
	"county-portal-api/internal/entity"
	"county-portal-api/internal/geocode"

	"github.com/glebarez/sqlite"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	alice = &auth.Identity{ID: 1, Email: "alice@test.com", Role: auth.RoleCitizen}
	bob   = &auth.Identity{ID: 2, Email: "bob@test.com", Role: auth.RoleCitizen}
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Service{}, &Application{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type countingGeocoder struct {
	calls int
	c     geocode.Coordinates
	found bool
	err   error
}

func (g *countingGeocoder) Lookup(context.Context, string, string) (geocode.Coordinates, bool, error) {
	g.calls++
	return g.c, g.found, g.err
}

func mustCreate(t *testing.T, s *VolunteerService, req CreateServiceRequest) *Service {
	t.Helper()
	svc, err := s.Create(context.Background(), req, alice, "Kent")
	if err != nil {
		t.Fatalf("create %q: %v", req.Name, err)
	}
	return svc
}

func TestVolunteerService_List_SearchesNameOrDescription(t *testing.T) {
	s := &VolunteerService{DB: newTestDB(t)}
	ctx := context.Background()
	mustCreate(t, s, CreateServiceRequest{Name: "Food Bank", Category: "food_assistance", Description: "Sorting parcels"})
	mustCreate(t, s, CreateServiceRequest{Name: "Befriending", Category: "elderly_care", Description: "Weekly food deliveries"})
	mustCreate(t, s, CreateServiceRequest{Name: "Tree Planting", Category: "environmental", Description: "Woodland work"})

	got, err := s.List(ctx, ListFilter{County: "Kent", Search: "FOOD"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	names := []string{}
	for _, v := range got {
		names = append(names, v.Name)
	}
	if diff := cmp.Diff([]string{"Befriending", "Food Bank"}, names, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	got, _ = s.List(ctx, ListFilter{County: "Kent", Category: "elderly_care", Search: "food"})
	if len(got) != 1 || got[0].Name != "Befriending" {
		t.Fatalf("category and search must both hold: %+v", got)
	}
}

func TestVolunteerService_Apply_OncePerEmail(t *testing.T) {
	s := &VolunteerService{DB: newTestDB(t)}
	ctx := context.Background()
	svc := mustCreate(t, s, CreateServiceRequest{Name: "Food Bank", Category: "food_assistance", Description: "d"})

	app, err := s.Apply(ctx, svc.ID, ApplyRequest{ApplicantName: "Bob", ApplicantEmail: "bob@test.com"}, bob)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if app.Status != StatusPending || app.ServiceName != "Food Bank" || app.County != "Kent" {
		t.Fatalf("unexpected application: %+v", app)
	}

	_, err = s.Apply(ctx, svc.ID, ApplyRequest{ApplicantName: "Bob", ApplicantEmail: " Bob@Test.com "}, bob)
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}

	other := mustCreate(t, s, CreateServiceRequest{Name: "Befriending", Category: "elderly_care", Description: "d"})
	if _, err := s.Apply(ctx, other.ID, ApplyRequest{ApplicantName: "Bob", ApplicantEmail: "bob@test.com"}, bob); err != nil {
		t.Fatalf("same email on another service should pass: %v", err)
	}

	if _, err := s.Apply(ctx, 999, ApplyRequest{ApplicantName: "Bob", ApplicantEmail: "bob@test.com"}, bob); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	detail, err := s.Detail(ctx, svc.ID, bob)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.ApplicationCount != 1 || detail.UserApplication == nil || detail.CanModify {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestVolunteerService_Apply_UniqueIndexBacksPrecheck(t *testing.T) {
	db := newTestDB(t)
	s := &VolunteerService{DB: db}
	svc := mustCreate(t, s, CreateServiceRequest{Name: "Food Bank", Category: "food_assistance", Description: "d"})

	first := Application{ServiceID: svc.ID, ApplicantEmail: "x@test.com", Status: StatusPending}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	dup := Application{ServiceID: svc.ID, ApplicantEmail: "x@test.com", Status: StatusPending}
	if err := entity.NewRepository[Application](db).Create(context.Background(), &dup); !errors.Is(err, entity.ErrDuplicate) {
		t.Fatalf("expected store-level duplicate, got %v", err)
	}
}

func TestVolunteerService_Detail_GeocodesMissingCoordinates(t *testing.T) {
	db := newTestDB(t)
	g := &countingGeocoder{c: geocode.Coordinates{Latitude: 51.27, Longitude: 1.08}, found: true}
	s := &VolunteerService{DB: db, Geocode: &geocode.Enricher{Geocoder: g}}
	ctx := context.Background()

	svc := mustCreate(t, s, CreateServiceRequest{Name: "Food Bank", Category: "food_assistance", Description: "d", Location: "Canterbury"})

	detail, err := s.Detail(ctx, svc.ID, nil)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Latitude == nil || *detail.Latitude != 51.27 {
		t.Fatalf("expected coordinates on detail, got %+v", detail.Service)
	}

	// stored, so the next view does not look up again
	if _, err := s.Detail(ctx, svc.ID, nil); err != nil {
		t.Fatalf("second detail: %v", err)
	}
	if g.calls != 1 {
		t.Fatalf("expected one lookup, got %d", g.calls)
	}
}

func TestVolunteerService_Detail_GeocodeFailureIsBestEffort(t *testing.T) {
	db := newTestDB(t)
	g := &countingGeocoder{err: errors.New("quota exceeded")}
	s := &VolunteerService{DB: db, Geocode: &geocode.Enricher{Geocoder: g}}
	ctx := context.Background()

	withLoc := mustCreate(t, s, CreateServiceRequest{Name: "A", Category: "education", Description: "d", Location: "Hall"})
	noLoc := mustCreate(t, s, CreateServiceRequest{Name: "B", Category: "education", Description: "d"})

	detail, err := s.Detail(ctx, withLoc.ID, nil)
	if err != nil {
		t.Fatalf("geocode failure must not fail detail: %v", err)
	}
	if detail.Latitude != nil {
		t.Fatalf("coordinates should stay absent")
	}

	if _, err := s.Detail(ctx, noLoc.ID, nil); err != nil {
		t.Fatalf("detail: %v", err)
	}
	if g.calls != 1 {
		t.Fatalf("service without location must not be looked up; calls=%d", g.calls)
	}
}

func TestVolunteerService_UpdateDelete(t *testing.T) {
	s := &VolunteerService{DB: newTestDB(t)}
	ctx := context.Background()
	svc := mustCreate(t, s, CreateServiceRequest{Name: "A", Category: "education", Description: "d", VolunteersNeeded: 4})

	if _, err := s.Update(ctx, svc.ID, &Service{VolunteersNeeded: 0}, []string{"volunteers_needed"}, bob); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	up, err := s.Update(ctx, svc.ID, &Service{VolunteersNeeded: 0}, []string{"volunteers_needed"}, alice)
	if err != nil || up.VolunteersNeeded != 0 {
		t.Fatalf("zero value should be written: %+v %v", up, err)
	}

	if _, err := s.Apply(ctx, svc.ID, ApplyRequest{ApplicantName: "B", ApplicantEmail: "b@test.com"}, bob); err != nil {
		t.Fatalf("apply: %v", err)
	}
	deleted, err := s.Delete(ctx, svc.ID, alice)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.County != "Kent" {
		t.Fatalf("delete should return the removed service, got county %q", deleted.County)
	}
	var left int64
	s.DB.Model(&Application{}).Count(&left)
	if left != 0 {
		t.Fatalf("applications should be removed with the service")
	}
}

func TestVolunteerService_Recent_ScopedToCounty(t *testing.T) {
	s := &VolunteerService{DB: newTestDB(t)}
	mustCreate(t, s, CreateServiceRequest{Name: "Meals", Category: "food_assistance", Description: "d"})
	mustCreate(t, s, CreateServiceRequest{Name: "Moor rescue", Category: "emergency_response", Description: "d", County: "Devon"})

	recent, err := s.Recent(context.Background(), "Kent", 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].Name != "Meals" {
		t.Fatalf("expected only the Kent service, got %+v", recent)
	}
}
