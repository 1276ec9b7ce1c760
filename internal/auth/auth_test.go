package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func protectedRouter(m *Middleware, capability string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", m.RequireAuth())
	if capability != "" {
		group.Use(m.RequireCapability(capability))
	}
	group.GET("ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return router
}

func TestRequireAuth(t *testing.T) {
	m := NewMiddleware(testSecret, nil)

	t.Run("missing header", func(t *testing.T) {
		router := protectedRouter(m, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		router := protectedRouter(m, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, &Claims{
			Email: "director@choir.test",
			Roles: []string{"director"},
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		router := protectedRouter(m, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, &Claims{
			Email: "director@choir.test",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		router := protectedRouter(m, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireCapability(t *testing.T) {
	m := NewMiddleware(testSecret, nil)

	makeReq := func(roles []string, capability string) *httptest.ResponseRecorder {
		token := signToken(t, &Claims{
			Email: "someone@choir.test",
			Roles: roles,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		router := protectedRouter(m, capability)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("director can force status", func(t *testing.T) {
		w := makeReq([]string{"director"}, CapabilityForceStatus)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("section leader can promote", func(t *testing.T) {
		w := makeReq([]string{"section_leader"}, CapabilityPromote)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("singer cannot manage shifts", func(t *testing.T) {
		w := makeReq([]string{"singer"}, CapabilityManageShifts)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRolesConfigHasCapability(t *testing.T) {
	cfg := &RolesConfig{Roles: map[string][]string{
		"custom": {CapabilityPromote},
	}}

	assert.True(t, cfg.HasCapability([]string{"custom"}, CapabilityPromote))
	assert.False(t, cfg.HasCapability([]string{"custom"}, CapabilityForceStatus))
	assert.False(t, cfg.HasCapability([]string{"unknown"}, CapabilityPromote))
}
