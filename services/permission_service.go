package services

import (
	"context"
	"errors"
	"sort"

	"hotel-saas-backend/models"

	"gorm.io/gorm"
)

type PermissionService struct {
	DB *gorm.DB
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{DB: db}
}

// EffectivePermissions is the resolved capability set of one user within
// one hotel scope. All is the superadmin sentinel: no set is computed,
// every check passes.
type EffectivePermissions struct {
	All   bool     `json:"all"`
	Names []string `json:"names"`
}

func (p EffectivePermissions) Has(name string) bool {
	if p.All {
		return true
	}
	for _, n := range p.Names {
		if n == name {
			return true
		}
	}
	return false
}

// ResolveEffectivePermissions unions the permission names granted by all
// roles assigned to the user for the given hotel. The single canonical
// path goes user_roles -> role_permissions -> permissions.
func (s *PermissionService) ResolveEffectivePermissions(ctx context.Context, userID uint, hotelID *uint) (EffectivePermissions, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EffectivePermissions{}, ErrNotFound
		}
		return EffectivePermissions{}, err
	}

	if user.Role == models.RoleSuperAdmin {
		return EffectivePermissions{All: true}, nil
	}

	if hotelID == nil {
		return EffectivePermissions{}, ErrHotelContextRequired
	}

	var roleIDs []uint
	if err := s.DB.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("user_id = ? AND hotel_id = ?", userID, *hotelID).
		Pluck("role_id", &roleIDs).Error; err != nil {
		return EffectivePermissions{}, err
	}
	if len(roleIDs) == 0 {
		return EffectivePermissions{}, ErrNoRoleAssigned
	}

	var names []string
	if err := s.DB.WithContext(ctx).
		Model(&models.RolePermission{}).
		Distinct().
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("role_permissions.role_id IN ?", roleIDs).
		Pluck("permissions.name", &names).Error; err != nil {
		return EffectivePermissions{}, err
	}

	sort.Strings(names)
	return EffectivePermissions{Names: names}, nil
}
