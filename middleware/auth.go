package middleware

import (
	"net/http"
	"strings"

	"hotel-saas-backend/models"
	"hotel-saas-backend/utils"

	"github.com/gin-gonic/gin"
)

// ContextClaims is the gin context key holding the verified *utils.Claims.
const ContextClaims = "authClaims"

// Authenticate verifies the bearer token and attaches the claims to the
// request context. Missing or invalid tokens end the request with 401.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authorization header missing"})
			return
		}

		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid authorization header"})
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// GetClaims returns the verified claims set by Authenticate.
func GetClaims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}

func isAdminTier(role string) bool {
	return role == models.RoleAdmin || role == models.RoleSuperAdmin
}

// RequirePermission gates a route on fine-grained permissions. Admin and
// superadmin bypass every permission check; only the staff tier is gated.
// With multiple required permissions the caller must hold all of them.
// The check is pure: no database lookup, no logging.
func RequirePermission(required ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}

		if isAdminTier(claims.Role) {
			c.Next()
			return
		}

		if len(claims.Permissions) == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "no permissions assigned"})
			return
		}

		held := make(map[string]bool, len(claims.Permissions))
		for _, p := range claims.Permissions {
			held[p] = true
		}

		var missing []string
		for _, p := range required {
			if !held[p] {
				missing = append(missing, p)
			}
		}
		if len(missing) > 0 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "missing required permission(s): " + strings.Join(missing, ", "),
			})
			return
		}

		c.Next()
	}
}

// Role-only guards for routes that never need fine-grained permissions.
// These check the top-level role string from the token, nothing else.

func requireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}
		for _, role := range allowed {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "insufficient role"})
	}
}

func RequireAdmin() gin.HandlerFunc {
	return requireRole(models.RoleAdmin)
}

func RequireSuperAdmin() gin.HandlerFunc {
	return requireRole(models.RoleSuperAdmin)
}

func RequireAdminOrSuperAdmin() gin.HandlerFunc {
	return requireRole(models.RoleAdmin, models.RoleSuperAdmin)
}
