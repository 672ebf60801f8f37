package auth

import (
	"context"
	"errors"
	"strings"

	"county-portal-api/internal/entity"

	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("An account with this email already exists. Please log in or use different details.")

type AuthService struct {
	DB *gorm.DB
}

func (s *AuthService) users() *entity.Repository[User] {
	return entity.NewRepository[User](s.DB)
}

func (s *AuthService) CreateUser(user User) (*User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Role == "" {
		user.Role = RoleCitizen
	}

	if err := s.users().Create(context.Background(), &user); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) GetUser(email string) (*User, error) {
	var user User
	result := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) GetUserByID(id uint) (*User, error) {
	return s.users().Get(context.Background(), id)
}

// UsersByCounty lists the users registered to a county, ordered by name.
func (s *AuthService) UsersByCounty(ctx context.Context, county string) ([]User, error) {
	return s.users().Filter(ctx, entity.Query{
		Fields: map[string]any{"county": county},
		Sort:   "full_name",
	})
}
