package services

import (
	"context"
	"errors"
	"strings"

	"hotel-saas-backend/models"

	"gorm.io/gorm"
)

type RoleService struct {
	DB *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{DB: db}
}

type RoleInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	HotelID     *uint    `json:"hotelId"`
	Permissions []string `json:"permissions"`
}

func (s *RoleService) scopeByHotel(q *gorm.DB, hotelID *uint) *gorm.DB {
	if hotelID == nil {
		return q.Where("hotel_id IS NULL")
	}
	return q.Where("hotel_id = ?", *hotelID)
}

// resolvePermissionIDs maps catalog names to ids, rejecting unknown names.
func (s *RoleService) resolvePermissionIDs(ctx context.Context, names []string) ([]uint, error) {
	cleaned := make([]string, 0, len(names))
	seen := map[string]bool{}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		cleaned = append(cleaned, n)
	}
	if len(cleaned) == 0 {
		return nil, nil
	}

	var perms []models.Permission
	if err := s.DB.WithContext(ctx).Where("name IN ?", cleaned).Find(&perms).Error; err != nil {
		return nil, err
	}
	if len(perms) != len(cleaned) {
		found := map[string]bool{}
		for _, p := range perms {
			found[p.Name] = true
		}
		for _, n := range cleaned {
			if !found[n] {
				return nil, NewValidationError("unknown permission: %s", n)
			}
		}
	}

	ids := make([]uint, 0, len(perms))
	for _, p := range perms {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (s *RoleService) Create(ctx context.Context, in RoleInput) (models.Role, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Role{}, NewValidationError("role name is required")
	}

	var count int64
	q := s.DB.WithContext(ctx).Model(&models.Role{}).Where("name = ?", name)
	if err := s.scopeByHotel(q, in.HotelID).Count(&count).Error; err != nil {
		return models.Role{}, err
	}
	if count > 0 {
		return models.Role{}, NewValidationError("role %q already exists in this scope", name)
	}

	permIDs, err := s.resolvePermissionIDs(ctx, in.Permissions)
	if err != nil {
		return models.Role{}, err
	}

	role := models.Role{Name: name, Description: in.Description, HotelID: in.HotelID}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&role).Error; err != nil {
			return err
		}
		return createRolePermissions(tx, role.ID, permIDs)
	})
	if err != nil {
		return models.Role{}, err
	}
	return s.GetByID(ctx, role.ID)
}

// Update renames the role and replaces its permission set wholesale.
// Delete-all plus bulk-insert runs inside one transaction so the role is
// never observable with zero permissions mid-update.
func (s *RoleService) Update(ctx context.Context, roleID uint, in RoleInput) (models.Role, error) {
	var role models.Role
	if err := s.DB.WithContext(ctx).First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Role{}, ErrNotFound
		}
		return models.Role{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = role.Name
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = role.Description
	}
	if name != role.Name {
		var count int64
		q := s.DB.WithContext(ctx).Model(&models.Role{}).
			Where("name = ? AND id <> ?", name, roleID)
		if err := s.scopeByHotel(q, role.HotelID).Count(&count).Error; err != nil {
			return models.Role{}, err
		}
		if count > 0 {
			return models.Role{}, NewValidationError("role %q already exists in this scope", name)
		}
	}

	permIDs, err := s.resolvePermissionIDs(ctx, in.Permissions)
	if err != nil {
		return models.Role{}, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&role).Updates(map[string]any{
			"name":        name,
			"description": description,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		return createRolePermissions(tx, roleID, permIDs)
	})
	if err != nil {
		return models.Role{}, err
	}
	return s.GetByID(ctx, roleID)
}

func createRolePermissions(tx *gorm.DB, roleID uint, permIDs []uint) error {
	if len(permIDs) == 0 {
		return nil
	}
	rows := make([]models.RolePermission, 0, len(permIDs))
	for _, id := range permIDs {
		rows = append(rows, models.RolePermission{RoleID: roleID, PermissionID: id})
	}
	return tx.Create(&rows).Error
}

func (s *RoleService) Delete(ctx context.Context, roleID uint) error {
	var role models.Role
	if err := s.DB.WithContext(ctx).First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", roleID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&role).Error
	})
}

func (s *RoleService) GetByID(ctx context.Context, roleID uint) (models.Role, error) {
	var role models.Role
	err := s.DB.WithContext(ctx).
		Preload("Permissions.Permission").
		First(&role, roleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Role{}, ErrNotFound
	}
	return role, err
}

// List returns the roles visible in a scope: hotel-scoped roles plus the
// global templates. A nil hotelID (superadmin view) returns everything.
func (s *RoleService) List(ctx context.Context, hotelID *uint) ([]models.Role, error) {
	q := s.DB.WithContext(ctx).Preload("Permissions.Permission")
	if hotelID != nil {
		q = q.Where("hotel_id = ? OR hotel_id IS NULL", *hotelID)
	}
	var roles []models.Role
	err := q.Order("name").Find(&roles).Error
	return roles, err
}

// AssignToUser gives a user a role within one hotel scope. Global
// template roles may be assigned in any hotel; hotel-scoped roles only
// in their own hotel.
func (s *RoleService) AssignToUser(ctx context.Context, userID, roleID, hotelID uint) (models.UserRole, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserRole{}, ErrNotFound
		}
		return models.UserRole{}, err
	}

	var role models.Role
	if err := s.DB.WithContext(ctx).First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserRole{}, ErrNotFound
		}
		return models.UserRole{}, err
	}
	if role.HotelID != nil && *role.HotelID != hotelID {
		return models.UserRole{}, NewValidationError("role %q belongs to a different hotel", role.Name)
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.UserRole{}).
		Where("user_id = ? AND role_id = ? AND hotel_id = ?", userID, roleID, hotelID).
		Count(&count).Error; err != nil {
		return models.UserRole{}, err
	}
	if count > 0 {
		return models.UserRole{}, NewValidationError("user already has role %q in this hotel", role.Name)
	}

	assignment := models.UserRole{UserID: userID, RoleID: roleID, HotelID: hotelID}
	if err := s.DB.WithContext(ctx).Create(&assignment).Error; err != nil {
		return models.UserRole{}, err
	}
	return assignment, nil
}
