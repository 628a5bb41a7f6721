package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-saas-backend/middleware"
	"hotel-saas-backend/models"
	"hotel-saas-backend/services"
	"hotel-saas-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError is the single error-to-response mapping for all handlers.
// Unexpected errors are logged server-side and answered with a generic
// message so database details never reach the client.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var transitionErr *services.InvalidTransitionError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusConflict, transitionErr.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "record not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrNoRoleAssigned):
		utils.JSONError(c, http.StatusForbidden, services.ErrNoRoleAssigned.Error())
	case errors.Is(err, services.ErrHotelContextRequired):
		utils.JSONError(c, http.StatusForbidden, services.ErrHotelContextRequired.Error())
	default:
		logrus.WithError(err).Error("unhandled service error")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func actorFromClaims(claims *utils.Claims) services.Actor {
	return services.Actor{
		UserID:      claims.UserID,
		Email:       claims.Email,
		Role:        claims.Role,
		HotelID:     claims.HotelID,
		Permissions: claims.Permissions,
	}
}

// requestClaims fetches the claims Authenticate stored; routes missing
// the middleware fail closed with 401.
func requestClaims(c *gin.Context) (*utils.Claims, bool) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return claims, true
}

// canAccessHotel scopes tenant reads: superadmin sees every hotel,
// everyone else only their own.
func canAccessHotel(claims *utils.Claims, hotelID uint) bool {
	if claims.Role == models.RoleSuperAdmin {
		return true
	}
	return claims.HotelID != nil && *claims.HotelID == hotelID
}
