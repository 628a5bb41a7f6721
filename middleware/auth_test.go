package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-saas-backend/models"
	"hotel-saas-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticate()}, guards...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/guarded", handlers...)
	return r
}

func tokenFor(t *testing.T, role string, perms []string) string {
	t.Helper()
	hotelID := uint(5)
	token, err := utils.CreateToken(models.User{
		ID:      1,
		Email:   "caller@test.local",
		Role:    role,
		HotelID: &hotelID,
	}, perms)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateRejectsMissingOrBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter()

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "not-a-jwt").Code)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Admin and superadmin bypass every permission check, whatever is required.
func TestRequirePermissionAdminTierBypass(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(RequirePermission("some_obscure_permission"))

	for _, role := range []string{models.RoleAdmin, models.RoleSuperAdmin} {
		w := doRequest(r, tokenFor(t, role, nil))
		assert.Equal(t, http.StatusOK, w.Code, "role %s must bypass", role)
	}
}

func TestRequirePermissionStaffWithNoPermissions(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(RequirePermission("booking_update"))

	w := doRequest(r, tokenFor(t, models.RoleUser, nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "no permissions assigned")
}

func TestRequirePermissionStaffMissingPermission(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(RequirePermission("booking_update"))

	w := doRequest(r, tokenFor(t, models.RoleUser, []string{"booking_view"}))
	assert.Equal(t, http.StatusForbidden, w.Code)
	// failure names the missing permission for debuggability
	assert.Contains(t, w.Body.String(), "booking_update")
}

func TestRequirePermissionStaffWithPermission(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(RequirePermission("booking_update"))

	w := doRequest(r, tokenFor(t, models.RoleUser, []string{"booking_view", "booking_update"}))
	assert.Equal(t, http.StatusOK, w.Code)
}

// Multiple required permissions are conjunctive: holding one of two is
// not enough.
func TestRequirePermissionAllSemantics(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter(RequirePermission("room_update", "room_delete"))

	w := doRequest(r, tokenFor(t, models.RoleUser, []string{"room_update"}))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "room_delete")

	w = doRequest(r, tokenFor(t, models.RoleUser, []string{"room_update", "room_delete"}))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleOnlyGuards(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cases := []struct {
		name   string
		guard  gin.HandlerFunc
		role   string
		expect int
	}{
		{"admin passes RequireAdmin", RequireAdmin(), models.RoleAdmin, http.StatusOK},
		{"superadmin fails RequireAdmin", RequireAdmin(), models.RoleSuperAdmin, http.StatusForbidden},
		{"staff fails RequireAdmin", RequireAdmin(), models.RoleUser, http.StatusForbidden},
		{"superadmin passes RequireSuperAdmin", RequireSuperAdmin(), models.RoleSuperAdmin, http.StatusOK},
		{"admin fails RequireSuperAdmin", RequireSuperAdmin(), models.RoleAdmin, http.StatusForbidden},
		{"admin passes combined guard", RequireAdminOrSuperAdmin(), models.RoleAdmin, http.StatusOK},
		{"superadmin passes combined guard", RequireAdminOrSuperAdmin(), models.RoleSuperAdmin, http.StatusOK},
		{"staff fails combined guard", RequireAdminOrSuperAdmin(), models.RoleUser, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(tc.guard)
			w := doRequest(r, tokenFor(t, tc.role, nil))
			assert.Equal(t, tc.expect, w.Code)
		})
	}
}
