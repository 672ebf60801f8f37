package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"

	accessTTL = 15 * time.Minute
)

var ErrInvalidToken = errors.New("invalid or expired token")

func IssueToken(secret string, id *Identity, ttl time.Duration) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   id.ID,
		"email":     id.Email,
		"full_name": id.FullName,
		"role":      id.Role,
		"county":    id.County,
		"exp":       time.Now().Add(ttl).Unix(),
	})
	return tok.SignedString([]byte(secret))
}

// ParseToken verifies an HS256 token and rebuilds the identity from its claims.
func ParseToken(secret, raw string) (*Identity, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	uid, ok := claims["user_id"].(float64)
	if !ok || uid <= 0 {
		return nil, ErrInvalidToken
	}

	str := func(k string) string {
		s, _ := claims[k].(string)
		return s
	}

	return &Identity{
		ID:       uint(uid),
		Email:    str("email"),
		FullName: str("full_name"),
		Role:     str("role"),
		County:   str("county"),
	}, nil
}
