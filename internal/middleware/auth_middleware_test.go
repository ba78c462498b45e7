package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/pkg/auth"
)

func testRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Minute,
		TokenIssuer:    "test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", m.JWTAuth())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(ContextUserID)})
	})
	protected.GET("/staff", m.StaffRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	protected.GET("/admin", m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{ID: "user-1", Username: "tester", Role: role})
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(router, "/me", "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	router, jwtService := testRouter(t)

	rec := doRequest(router, "/me", tokenFor(t, jwtService, models.RoleStudent))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestStaffRequired(t *testing.T) {
	router, jwtService := testRouter(t)

	assert.Equal(t, http.StatusForbidden, doRequest(router, "/staff", tokenFor(t, jwtService, models.RoleStudent)).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/staff", tokenFor(t, jwtService, models.RoleInstructor)).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/staff", tokenFor(t, jwtService, models.RoleAdmin)).Code)
}

func TestRoleRequiredAdminOnly(t *testing.T) {
	router, jwtService := testRouter(t)

	assert.Equal(t, http.StatusForbidden, doRequest(router, "/admin", tokenFor(t, jwtService, models.RoleStudent)).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, "/admin", tokenFor(t, jwtService, models.RoleInstructor)).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/admin", tokenFor(t, jwtService, models.RoleAdmin)).Code)
}
