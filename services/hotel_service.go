package services

import (
	"context"
	"errors"
	"strings"

	"hotel-saas-backend/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

type HotelInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Create registers the tenant root for an admin. One hotel per admin,
// enforced both here and by the unique index on admin_id.
func (s *HotelService) Create(ctx context.Context, in HotelInput, adminID uint) (models.Hotel, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Hotel{}, NewValidationError("hotel name is required")
	}

	var admin models.User
	if err := s.DB.WithContext(ctx).First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hotel{}, ErrNotFound
		}
		return models.Hotel{}, err
	}
	if admin.Role != models.RoleAdmin {
		return models.Hotel{}, NewValidationError("only admin users can own a hotel")
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Hotel{}).
		Where("admin_id = ?", adminID).
		Count(&count).Error; err != nil {
		return models.Hotel{}, err
	}
	if count > 0 {
		return models.Hotel{}, NewValidationError("admin already owns a hotel")
	}

	hotel := models.Hotel{
		Name:    name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
		AdminID: adminID,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}
		// the owner's tenant scope follows the hotel
		return tx.Model(&models.User{}).
			Where("id = ?", adminID).
			Update("hotel_id", hotel.ID).Error
	})
	if err != nil {
		return models.Hotel{}, err
	}
	return hotel, nil
}

func (s *HotelService) GetByID(ctx context.Context, hotelID uint) (models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.WithContext(ctx).Preload("Rooms").First(&hotel, hotelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Hotel{}, ErrNotFound
	}
	return hotel, err
}

func (s *HotelService) List(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.WithContext(ctx).Order("name").Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) Update(ctx context.Context, hotelID uint, in HotelInput) (models.Hotel, error) {
	hotel, err := s.GetByID(ctx, hotelID)
	if err != nil {
		return models.Hotel{}, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		hotel.Name = name
	}
	if in.Address != "" {
		hotel.Address = in.Address
	}
	if in.Phone != "" {
		hotel.Phone = in.Phone
	}
	if in.Email != "" {
		hotel.Email = in.Email
	}

	if err := s.DB.WithContext(ctx).Omit("Rooms").Save(&hotel).Error; err != nil {
		return models.Hotel{}, err
	}
	return hotel, nil
}

// Delete removes the tenant and everything scoped under it in one
// transaction: bookings, rooms, role assignments, hotel-scoped roles.
// Staff users are detached (hotel_id cleared), not deleted.
func (s *HotelService) Delete(ctx context.Context, hotelID uint) error {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("hotel_id = ?", hotelID).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		var roleIDs []uint
		if err := tx.Model(&models.Role{}).Where("hotel_id = ?", hotelID).Pluck("id", &roleIDs).Error; err != nil {
			return err
		}
		if len(roleIDs) > 0 {
			if err := tx.Where("role_id IN ?", roleIDs).Delete(&models.RolePermission{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", roleIDs).Delete(&models.Role{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.User{}).
			Where("hotel_id = ?", hotelID).
			Update("hotel_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&hotel).Error
	})
}
