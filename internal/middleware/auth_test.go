package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"kharcha/internal/models"
	"kharcha/internal/store"
	"kharcha/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupGuardedRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	st, _ := testutil.SetupTestStore(t)

	r := gin.New()
	r.GET("/protected", LockGuard(st), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, st
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLockGuard(t *testing.T) {
	t.Run("passes through with no pin set", func(t *testing.T) {
		r, _ := setupGuardedRouter(t)
		if rec := get(r, ""); rec.Code != http.StatusOK {
			t.Fatalf("expected 200 without a pin, got %d", rec.Code)
		}
	})

	t.Run("blocks without token once pin is set", func(t *testing.T) {
		r, st := setupGuardedRouter(t)
		st.MutateSettings(func(s *models.Settings) { s.PINHash = "x" })

		if rec := get(r, ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", rec.Code)
		}
		if rec := get(r, "not-a-jwt"); rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 with garbage token, got %d", rec.Code)
		}
	})

	t.Run("accepts a valid session token", func(t *testing.T) {
		r, st := setupGuardedRouter(t)
		st.MutateSettings(func(s *models.Settings) { s.PINHash = "x" })

		token, err := GenerateSessionToken()
		testutil.AssertNoError(t, err)
		if rec := get(r, token); rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with valid token, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}
