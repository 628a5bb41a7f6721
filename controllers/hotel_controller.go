package controllers

import (
	"net/http"

	"hotel-saas-backend/services"
	"hotel-saas-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

func (hc *HotelController) CreateHotel(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}

	var payload services.HotelInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	hotel, err := hc.Hotels.Create(c.Request.Context(), payload, claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

func (hc *HotelController) GetHotels(c *gin.Context) {
	hotels, err := hc.Hotels.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (hc *HotelController) GetHotel(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessHotel(claims, hotelID) {
		utils.JSONError(c, http.StatusForbidden, "hotel is outside your tenant scope")
		return
	}

	hotel, err := hc.Hotels.GetByID(c.Request.Context(), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (hc *HotelController) UpdateHotel(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessHotel(claims, hotelID) {
		utils.JSONError(c, http.StatusForbidden, "hotel is outside your tenant scope")
		return
	}

	var payload services.HotelInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	hotel, err := hc.Hotels.Update(c.Request.Context(), hotelID, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (hc *HotelController) DeleteHotel(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !canAccessHotel(claims, hotelID) {
		utils.JSONError(c, http.StatusForbidden, "hotel is outside your tenant scope")
		return
	}

	if err := hc.Hotels.Delete(c.Request.Context(), hotelID); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "hotel deleted")
}
