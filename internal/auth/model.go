package auth

import "time"

const (
	RoleCitizen        = "citizen"
	RoleDeputy         = "deputy"
	RoleSheriff        = "sheriff"
	RoleLordLieutenant = "lord_lieutenant"
	RoleCustosRotulum  = "custos_rotulum"
	RoleMedicalOfficer = "medical_officer"
	RoleAdmin          = "admin"
)

var validRoles = map[string]bool{
	RoleCitizen:        true,
	RoleDeputy:         true,
	RoleSheriff:        true,
	RoleLordLieutenant: true,
	RoleCustosRotulum:  true,
	RoleMedicalOfficer: true,
	RoleAdmin:          true,
}

func ValidRole(role string) bool {
	return validRoles[role]
}

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FullName  string    `gorm:"size:200;not null;column:full_name" json:"full_name"`
	Role      string    `gorm:"size:50;not null;default:citizen;index" json:"role"`
	County    string    `gorm:"size:100;index" json:"county"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Identity is the authenticated caller as carried in the access token.
type Identity struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	County   string `json:"county"`
}

func (u *User) Identity() *Identity {
	return &Identity{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		County:   u.County,
	}
}

type SignUpRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	County   string `json:"county"`
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}
