package access

import (
	"testing"

	"county-portal-api/internal/auth"
)

type record struct{ createdBy string }

func (r record) Creator() string { return r.createdBy }

func TestCanModify(t *testing.T) {
	tests := []struct {
		name      string
		id        *auth.Identity
		createdBy string
		want      bool
	}{
		{"anonymous", nil, "a@test.com", false},
		{"anonymous empty creator", nil, "", false},
		{"admin any record", &auth.Identity{Role: auth.RoleAdmin, Email: "root@test.com"}, "a@test.com", true},
		{"admin unattributed record", &auth.Identity{Role: auth.RoleAdmin}, "", true},
		{"owner", &auth.Identity{Role: auth.RoleCitizen, Email: "a@test.com"}, "a@test.com", true},
		{"owner email differs in case", &auth.Identity{Role: auth.RoleCitizen, Email: "A@Test.com"}, "a@test.com", false},
		{"other citizen", &auth.Identity{Role: auth.RoleCitizen, Email: "b@test.com"}, "a@test.com", false},
		{"sheriff is not admin", &auth.Identity{Role: auth.RoleSheriff, Email: "s@test.com"}, "a@test.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModify(tt.id, tt.createdBy); got != tt.want {
				t.Fatalf("CanModify(%+v, %q) = %v, want %v", tt.id, tt.createdBy, got, tt.want)
			}
			if got := CanModifyRecord(tt.id, record{tt.createdBy}); got != tt.want {
				t.Fatalf("CanModifyRecord mismatch: %v", got)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	owner := &auth.Identity{Role: auth.RoleCitizen, Email: "a@test.com"}
	if err := Check(owner, "a@test.com"); err != nil {
		t.Fatalf("owner should pass, got %v", err)
	}
	if err := Check(nil, "a@test.com"); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if !CanModifyRecord(owner, record{createdBy: "a@test.com"}) {
		t.Fatalf("CanModifyRecord disagrees with CanModify")
	}
}
