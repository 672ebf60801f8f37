// Package selection carries the visitor's chosen county between requests in a cookie.
// Handlers receive the resolved county explicitly; nothing is stored process-wide.
package selection

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"county-portal-api/internal/county"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "selected_county"
	contextKey = "selected_county"

	cookieMaxAge = 365 * 24 * 60 * 60
)

const ErrNoCounty = "no county selected"

// Selected is the snapshot of a county kept in the cookie.
type Selected struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Country        string `json:"country"`
	Population     int    `json:"population"`
	CoatOfArms     string `json:"coat_of_arms"`
	LordLieutenant string `json:"lord_lieutenant"`
	Sheriff        string `json:"sheriff"`
}

func FromCounty(c *county.County) Selected {
	return Selected{
		ID:             c.ID,
		Name:           c.Name,
		Country:        c.Country,
		Population:     c.Population,
		CoatOfArms:     c.CoatOfArms,
		LordLieutenant: c.LordLieutenant,
		Sheriff:        c.Sheriff,
	}
}

func Encode(s Selected) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Decode treats anything unreadable, or a snapshot without a name, as no selection.
func Decode(raw string) (Selected, bool) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return Selected{}, false
	}
	var s Selected
	if err := json.Unmarshal(b, &s); err != nil {
		return Selected{}, false
	}
	if strings.TrimSpace(s.Name) == "" {
		return Selected{}, false
	}
	return s, true
}

// Middleware decodes the selection cookie once per request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(CookieName); err == nil {
			if s, ok := Decode(raw); ok {
				c.Set(contextKey, s)
			}
		}
		c.Next()
	}
}

func FromContext(c *gin.Context) (Selected, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Selected{}, false
	}
	s, ok := v.(Selected)
	return s, ok
}

// Resolve names the county a request is about: the ?county= query wins over the cookie.
func Resolve(c *gin.Context) (string, bool) {
	if q := strings.TrimSpace(c.Query("county")); q != "" {
		return q, true
	}
	if s, ok := FromContext(c); ok {
		return s.Name, true
	}
	return "", false
}

// Require is Resolve that answers 409 itself when no county is known.
func Require(c *gin.Context) (string, bool) {
	name, ok := Resolve(c)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": ErrNoCounty})
		return "", false
	}
	return name, true
}

func write(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
