package controllers

import (
	"net/http"
	"time"

	"hotel-saas-backend/services"
	"hotel-saas-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
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

	stats, err := dc.Dashboard.Stats(c.Request.Context(), hotelID, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
