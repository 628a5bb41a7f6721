package controllers

import (
	"net/http"

	"hotel-saas-backend/services"
	"hotel-saas-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var payload services.RegisterInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := ac.Auth.Register(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, perms, err := ac.Auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.CreateToken(user, perms.Names)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":       token,
		"user":        user,
		"permissions": perms,
	})
}

// Me echoes the verified token identity.
func (ac *AuthController) Me(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"id":          claims.UserID,
		"email":       claims.Email,
		"role":        claims.Role,
		"hotelId":     claims.HotelID,
		"permissions": claims.Permissions,
	})
}
