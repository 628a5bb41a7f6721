package models

import "time"

// Role is a named permission bundle. HotelID nil means a global template
// every tenant can assign; otherwise the role belongs to one hotel.
// Uniqueness is on (name, hotel_id), not name alone, so two hotels can
// each have their own "Manager".
type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;index:idx_role_name_hotel,unique" json:"name"`
	HotelID     *uint  `gorm:"index:idx_role_name_hotel,unique" json:"hotelId,omitempty"`
	Description string `gorm:"size:255" json:"description"`

	Permissions []RolePermission `gorm:"foreignKey:RoleID" json:"permissions,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
