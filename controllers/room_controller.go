package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotel-saas-backend/models"
	"hotel-saas-backend/services"
	"hotel-saas-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// hotelScope resolves the hotel the request targets: explicit ?hotelId=
// query first, the caller's own tenant otherwise.
func hotelScope(c *gin.Context, claims *utils.Claims) (uint, bool) {
	if raw := c.Query("hotelId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid hotelId")
			return 0, false
		}
		return uint(id), true
	}
	if claims.HotelID != nil {
		return *claims.HotelID, true
	}
	utils.JSONError(c, http.StatusBadRequest, "hotelId is required")
	return 0, false
}

// GetRooms returns the hotel's rooms with isAvailable computed from
// confirmed bookings as of now.
func (rc *RoomController) GetRooms(c *gin.Context) {
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

	rooms, err := rc.Rooms.List(c.Request.Context(), hotelID, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if room.HotelID == 0 && claims.HotelID != nil {
		room.HotelID = *claims.HotelID
	}
	if !canAccessHotel(claims, room.HotelID) {
		utils.JSONError(c, http.StatusForbidden, "hotel is outside your tenant scope")
		return
	}

	created, err := rc.Rooms.Create(c.Request.Context(), room)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := rc.Rooms.GetByID(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canAccessHotel(claims, existing.HotelID) {
		utils.JSONError(c, http.StatusForbidden, "room is outside your tenant scope")
		return
	}

	var updates models.Room
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := rc.Rooms.Update(c.Request.Context(), roomID, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := rc.Rooms.GetByID(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canAccessHotel(claims, existing.HotelID) {
		utils.JSONError(c, http.StatusForbidden, "room is outside your tenant scope")
		return
	}

	if err := rc.Rooms.Delete(c.Request.Context(), roomID); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room deleted")
}
