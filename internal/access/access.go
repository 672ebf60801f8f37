// Package access holds the admin-or-owner rule for editing and deleting records.
package access

import (
	"errors"

	"county-portal-api/internal/auth"
)

var ErrForbidden = errors.New("you do not have permission to modify this record")

// Owned is implemented by records that carry creator attribution.
type Owned interface {
	Creator() string
}

// CanModify reports whether id may edit or delete a record created by createdBy.
// Anonymous callers never can.
func CanModify(id *auth.Identity, createdBy string) bool {
	if id == nil {
		return false
	}
	if id.Role == auth.RoleAdmin {
		return true
	}
	return id.Email == createdBy
}

func CanModifyRecord(id *auth.Identity, rec Owned) bool {
	return CanModify(id, rec.Creator())
}

// Check is CanModify as an error, for services that enforce the rule.
func Check(id *auth.Identity, createdBy string) error {
	if !CanModify(id, createdBy) {
		return ErrForbidden
	}
	return nil
}
