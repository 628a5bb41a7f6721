package controllers

import (
	"net/http"

	"hotel-saas-backend/services"
	"hotel-saas-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (uc *UserController) GetUsers(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	hotelID, ok := hotelScope(c, claims)
	if !ok {
		return
	}
	if !canAccessHotel(claims, hotelID) {
		utils.JSONError(c, http.StatusForbidden, "hotel is outside your tenant scope")
		return
	}

	users, err := uc.Users.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}

	var payload services.UpdateProfileInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := uc.Users.UpdateProfile(c.Request.Context(), claims.UserID, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
