package controllers

import (
	"net/http"

	"hotel-saas-backend/services"
	"hotel-saas-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}

	var payload services.CreateBookingInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, err := bc.Bookings.Create(c.Request.Context(), payload, actorFromClaims(claims))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (bc *BookingController) GetHotelBookings(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	hotelID, ok := parseIDParam(c, "hotelId")
	if !ok {
		return
	}
	if !canAccessHotel(claims, hotelID) {
		utils.JSONError(c, http.StatusForbidden, "hotel is outside your tenant scope")
		return
	}

	bookings, err := bc.Bookings.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (bc *BookingController) GetMyBookings(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}

	bookings, err := bc.Bookings.ListByGuestEmail(c.Request.Context(), claims.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	booking, err := bc.Bookings.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canAccessHotel(claims, booking.HotelID) {
		utils.JSONError(c, http.StatusForbidden, "booking is outside your tenant scope")
		return
	}

	updated, err := bc.Bookings.UpdateStatus(c.Request.Context(), bookingID, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := bc.Bookings.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canAccessHotel(claims, booking.HotelID) {
		utils.JSONError(c, http.StatusForbidden, "booking is outside your tenant scope")
		return
	}

	if err := bc.Bookings.Delete(c.Request.Context(), bookingID); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "booking deleted")
}
