package auth

import "context"

type AuthServicePort interface {
	CreateUser(user User) (*User, error)
	GetUser(email string) (*User, error)
	GetUserByID(id uint) (*User, error)
	UsersByCounty(ctx context.Context, county string) ([]User, error)
}

var _ AuthServicePort = (*AuthService)(nil)
