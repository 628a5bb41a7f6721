package services

import (
	"context"
	"errors"
	"strings"

	"hotel-saas-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB          *gorm.DB
	Permissions *PermissionService
}

func NewAuthService(db *gorm.DB, permissions *PermissionService) *AuthService {
	return &AuthService{DB: db, Permissions: permissions}
}

type RegisterInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	HotelID  *uint  `json:"hotelId"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return models.User{}, NewValidationError("email is required")
	}
	if len(in.Password) < 8 {
		return models.User{}, NewValidationError("password must be at least 8 characters")
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidTopLevelRole(role) {
		return models.User{}, NewValidationError("invalid role: %q", role)
	}
	// self-service registration never grants superadmin
	if role == models.RoleSuperAdmin {
		return models.User{}, NewValidationError("invalid role: %q", role)
	}
	if role == models.RoleUser && in.HotelID == nil {
		return models.User{}, NewValidationError("staff users require a hotel")
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, NewValidationError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		FullName: strings.TrimSpace(in.FullName),
		Email:    email,
		Password: string(hash),
		Role:     role,
		HotelID:  in.HotelID,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login verifies credentials and resolves the caller's effective
// permissions for the token. A staff user with no role assignment yet
// still logs in, with an empty permission list; the guard turns that
// into a 403 on permission-gated routes.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, EffectivePermissions, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.User{}, EffectivePermissions{}, NewValidationError("email and password are required")
	}

	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, EffectivePermissions{}, ErrInvalidCredentials
		}
		return models.User{}, EffectivePermissions{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, EffectivePermissions{}, ErrInvalidCredentials
	}

	perms, err := s.Permissions.ResolveEffectivePermissions(ctx, user.ID, user.HotelID)
	if err != nil {
		if errors.Is(err, ErrNoRoleAssigned) || errors.Is(err, ErrHotelContextRequired) {
			perms = EffectivePermissions{}
		} else {
			return models.User{}, EffectivePermissions{}, err
		}
	}
	return user, perms, nil
}
