package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotel-saas-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// AnnotateAvailability overlays computed availability onto the stored
// records. A room is unavailable iff a confirmed booking spans asOf with
// half-open interval semantics: check_in <= asOf (inclusive, a check-in
// at exactly asOf occupies the room) and check_out > asOf (strict, a
// check-out at exactly asOf frees it immediately). The stored
// is_available column is a hint only and is overwritten here.
func (s *RoomService) AnnotateAvailability(ctx context.Context, rooms []models.Room, hotelID uint, asOf time.Time) ([]models.Room, error) {
	if len(rooms) == 0 {
		return rooms, nil
	}

	var occupiedIDs []uint
	if err := s.DB.WithContext(ctx).
		Model(&models.Booking{}).
		Distinct().
		Where("hotel_id = ? AND status = ?", hotelID, models.BookingConfirmed).
		Where("check_in <= ? AND check_out > ?", asOf, asOf).
		Pluck("room_id", &occupiedIDs).Error; err != nil {
		return nil, err
	}

	occupied := make(map[uint]bool, len(occupiedIDs))
	for _, id := range occupiedIDs {
		occupied[id] = true
	}
	for i := range rooms {
		rooms[i].IsAvailable = !occupied[rooms[i].ID]
	}
	return rooms, nil
}

// List returns the hotel's rooms with availability computed as of asOf.
func (s *RoomService) List(ctx context.Context, hotelID uint, asOf time.Time) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("room_number").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return s.AnnotateAvailability(ctx, rooms, hotelID, asOf)
}

func (s *RoomService) GetByID(ctx context.Context, roomID uint) (models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Room{}, ErrNotFound
	}
	return room, err
}

func (s *RoomService) Create(ctx context.Context, room models.Room) (models.Room, error) {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return models.Room{}, NewValidationError("room number is required")
	}
	if room.HotelID == 0 {
		return models.Room{}, NewValidationError("hotel id is required")
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Room{}).
		Where("hotel_id = ? AND room_number = ?", room.HotelID, room.RoomNumber).
		Count(&count).Error; err != nil {
		return models.Room{}, err
	}
	if count > 0 {
		return models.Room{}, NewValidationError("room number %s already exists for this hotel", room.RoomNumber)
	}

	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, roomID uint, updates models.Room) (models.Room, error) {
	room, err := s.GetByID(ctx, roomID)
	if err != nil {
		return models.Room{}, err
	}

	if number := strings.TrimSpace(updates.RoomNumber); number != "" && number != room.RoomNumber {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&models.Room{}).
			Where("hotel_id = ? AND room_number = ? AND id <> ?", room.HotelID, number, roomID).
			Count(&count).Error; err != nil {
			return models.Room{}, err
		}
		if count > 0 {
			return models.Room{}, NewValidationError("room number %s already exists for this hotel", number)
		}
		room.RoomNumber = number
	}

	if updates.Type != "" {
		room.Type = updates.Type
	}
	if updates.Price > 0 {
		room.Price = updates.Price
	}
	if updates.MaxOccupancy > 0 {
		room.MaxOccupancy = updates.MaxOccupancy
	}
	if updates.Description != "" {
		room.Description = updates.Description
	}
	if len(updates.Amenities) > 0 {
		room.Amenities = updates.Amenities
	}

	if err := s.DB.WithContext(ctx).Save(&room).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, roomID uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Room{}, roomID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
