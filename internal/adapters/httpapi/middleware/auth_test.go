package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murmur/internal/apperror"
	"murmur/internal/auth"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T) string {
	t.Helper()
	token, _, err := auth.Sign("user-1", "alice", testSecret, time.Now())
	require.NoError(t, err)
	return token
}

func TestResolve(t *testing.T) {
	valid := signedToken(t)

	tests := []struct {
		name     string
		token    string
		optional bool
		wantErr  bool
		wantNil  bool
	}{
		{name: "no token, required", token: "", optional: false, wantErr: true},
		{name: "no token, optional", token: "", optional: true, wantNil: true},
		{name: "valid token, required", token: valid, optional: false},
		{name: "valid token, optional", token: valid, optional: true},
		{name: "bad token, required", token: "bogus", optional: false, wantErr: true},
		{name: "bad token, optional", token: "bogus", optional: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Resolve(tt.token, tt.optional, testSecret)
			if tt.wantErr {
				assert.True(t, apperror.IsUnauthenticated(err))
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, claims)
				return
			}
			require.NotNil(t, claims)
			assert.Equal(t, "user-1", claims.UserID())
			assert.Equal(t, "alice", claims.Username)
		})
	}
}

func TestAuthMiddlewareSetsClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", Auth(testSecret, false), func(c *gin.Context) {
		claims := ClaimsFrom(c)
		require.NotNil(t, claims)
		c.String(http.StatusOK, claims.Username)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", Auth(testSecret, false), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareOptionalAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", Auth(testSecret, true), func(c *gin.Context) {
		assert.Nil(t, ClaimsFrom(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareOptionalBadTokenStillRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", Auth(testSecret, true), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
