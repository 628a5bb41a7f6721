package services

import (
	"context"
	"errors"
	"strings"

	"hotel-saas-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) GetByID(ctx context.Context, userID uint) (models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *UserService) ListByHotel(ctx context.Context, hotelID uint) ([]models.User, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("full_name").
		Find(&users).Error
	return users, err
}

type UpdateProfileInput struct {
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (models.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	updates := map[string]any{}
	if name := strings.TrimSpace(in.FullName); name != "" {
		updates["full_name"] = name
	}
	if in.Password != "" {
		if len(in.Password) < 8 {
			return models.User{}, NewValidationError("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		updates["password"] = string(hash)
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.DB.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return models.User{}, err
	}
	return s.GetByID(ctx, userID)
}
