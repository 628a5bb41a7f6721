package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"not null;index:idx_room_number_hotel,unique" json:"hotelId"`

	RoomNumber   string         `gorm:"column:room_number;size:50;not null;index:idx_room_number_hotel,unique" json:"roomNumber"`
	Type         string         `gorm:"size:100" json:"type"`
	Price        float64        `json:"price"`
	MaxOccupancy int            `gorm:"column:max_occupancy" json:"maxOccupancy"`
	Amenities    datatypes.JSON `json:"amenities,omitempty"`
	Description  string         `gorm:"type:text" json:"description"`

	// Stored hint only. True availability is computed from confirmed
	// bookings at read time and overlaid onto this field in responses.
	IsAvailable bool `gorm:"default:true" json:"isAvailable"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
