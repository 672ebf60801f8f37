package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"county-portal-api/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(mw...)
	r.GET("/ok", func(c *gin.Context) {
		uid, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{
			"userID":       uid,
			"identity":     CurrentIdentity(c),
			"reached_next": true,
		})
	})
	return r
}

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func doReq(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.AccessCookie, Value: token})
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingCookie_401(t *testing.T) {
	r := newTestRouter(AuthMiddleware(testSecret))

	w := doReq(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Missing access token") {
		t.Fatalf("expected Missing access token, got %s", w.Body.String())
	}
}

func TestAuthMiddleware_InvalidToken_401(t *testing.T) {
	r := newTestRouter(AuthMiddleware(testSecret))

	for name, tok := range map[string]string{
		"garbage": "not-a-jwt",
		"wrong secret": signHS256(t, "other-secret", jwt.MapClaims{
			"user_id": 1, "exp": time.Now().Add(time.Hour).Unix(),
		}),
		"expired": signHS256(t, testSecret, jwt.MapClaims{
			"user_id": 1, "exp": time.Now().Add(-time.Hour).Unix(),
		}),
		"string user id": signHS256(t, testSecret, jwt.MapClaims{
			"user_id": "abc", "exp": time.Now().Add(time.Hour).Unix(),
		}),
	} {
		t.Run(name, func(t *testing.T) {
			w := doReq(r, tok)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), "Invalid or expired token") {
				t.Fatalf("expected Invalid or expired token, got %s", w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_ValidToken_SetsIdentity(t *testing.T) {
	r := newTestRouter(AuthMiddleware(testSecret))

	token := signHS256(t, testSecret, jwt.MapClaims{
		"user_id": float64(42),
		"email":   "a@test.com",
		"role":    "deputy",
		"county":  "Kent",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doReq(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var body struct {
		UserID   float64       `json:"userID"`
		Identity auth.Identity `json:"identity"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body.UserID != 42 {
		t.Fatalf("expected userID 42, got %v", body.UserID)
	}
	if body.Identity.Role != "deputy" || body.Identity.County != "Kent" || body.Identity.Email != "a@test.com" {
		t.Fatalf("unexpected identity: %+v", body.Identity)
	}
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	r := newTestRouter(OptionalAuth(testSecret))

	for _, tok := range []string{"", "not-a-jwt"} {
		w := doReq(r, tok)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"identity":null`) {
			t.Fatalf("expected null identity, got %s", w.Body.String())
		}
	}
}

func TestRequireRole(t *testing.T) {
	r := newTestRouter(AuthMiddleware(testSecret), RequireRole(auth.RoleAdmin))

	citizen, _ := auth.IssueToken(testSecret, &auth.Identity{ID: 1, Role: auth.RoleCitizen}, time.Hour)
	admin, _ := auth.IssueToken(testSecret, &auth.Identity{ID: 2, Role: auth.RoleAdmin}, time.Hour)

	if w := doReq(r, citizen); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for citizen, got %d", w.Code)
	}
	if w := doReq(r, admin); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}
