package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"haulsaver-app/config"
)

func optionalAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func signedToken(t *testing.T, secret, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   "u@example.com",
		"role":    "shipper",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestOptionalAuth(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	r := optionalAuthRouter()

	get := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("no token passes through anonymously", func(t *testing.T) {
		w := get("")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"user_id":""`) {
			t.Errorf("expected empty identity, got %s", w.Body.String())
		}
	})

	t.Run("valid token sets the identity", func(t *testing.T) {
		w := get("Bearer " + signedToken(t, "test-secret", "u-1"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"user_id":"u-1"`) {
			t.Errorf("identity not populated: %s", w.Body.String())
		}
	})

	t.Run("bad token passes through anonymously", func(t *testing.T) {
		for _, header := range []string{
			"Bearer not-a-token",
			"Bearer " + signedToken(t, "other-secret", "u-1"),
		} {
			w := get(header)
			if w.Code != http.StatusOK {
				t.Errorf("header %q: expected 200, got %d", header, w.Code)
			}
			if !strings.Contains(w.Body.String(), `"user_id":""`) {
				t.Errorf("header %q: identity should stay empty, got %s", header, w.Body.String())
			}
		}
	})
}
