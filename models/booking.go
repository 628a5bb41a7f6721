package models

import "time"

// Booking statuses. Pending is the initial state; the legal transitions
// live in the booking service's transition table.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking has no soft-delete column on purpose: cancellation is a status,
// deletion is a distinct admin-only hard delete.
type Booking struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"not null;index" json:"hotelId"`
	RoomID  uint `gorm:"not null;index:idx_booking_room_status" json:"roomId"`

	ReferenceCode string `gorm:"size:64;uniqueIndex" json:"referenceCode"`

	GuestName string `gorm:"size:255" json:"guestName"`
	// Back-reference to a user by email, no foreign key: the booking
	// survives user deletion.
	GuestEmail string `gorm:"size:150;index" json:"guestEmail"`
	GuestPhone string `gorm:"size:50" json:"guestPhone"`

	CheckIn  time.Time `gorm:"not null;index" json:"checkIn"`
	CheckOut time.Time `gorm:"not null" json:"checkOut"`

	Guests      int     `gorm:"default:1" json:"guests"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`

	Status string `gorm:"size:20;not null;default:pending;index:idx_booking_room_status" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}
