package models

// Permission is one atomic capability, named resource_action
// (room_create, booking_update, ...). The catalog is seeded once and
// treated as immutable at runtime.
type Permission struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:150;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

// RolePermission joins roles to catalog permissions. A role update
// replaces its rows wholesale inside one transaction.
type RolePermission struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RoleID       uint `gorm:"not null;index:idx_role_perm,unique" json:"roleId"`
	PermissionID uint `gorm:"not null;index:idx_role_perm,unique" json:"permissionId"`

	Permission Permission `gorm:"foreignKey:PermissionID" json:"permission,omitempty"`
}

// UserRole assigns a role to a user within one hotel scope. The same
// user may hold different roles in different hotels.
type UserRole struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"not null;index:idx_user_role_hotel,unique" json:"userId"`
	RoleID  uint `gorm:"not null;index:idx_user_role_hotel,unique" json:"roleId"`
	HotelID uint `gorm:"not null;index:idx_user_role_hotel,unique;index" json:"hotelId"`

	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}
