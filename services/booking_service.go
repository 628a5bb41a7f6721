package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"hotel-saas-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// allowedTransitions is deliberately forward-only: a cancelled booking
// stays cancelled, un-cancelling is rejected with InvalidTransitionError.
var allowedTransitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCancelled},
	models.BookingCancelled: {},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type BookingService struct {
	DB *gorm.DB

	// Per-room mutexes serialize booking creation and confirmation so
	// the overlap check and the write happen atomically per room.
	roomLocks sync.Map // map[uint]*sync.Mutex
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func (s *BookingService) lockRoom(roomID uint) *sync.Mutex {
	mu, _ := s.roomLocks.LoadOrStore(roomID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Actor is the authenticated caller as carried in the token.
type Actor struct {
	UserID      uint
	Email       string
	Role        string
	HotelID     *uint
	Permissions []string
}

func (a Actor) IsAdminTier() bool {
	return a.Role == models.RoleAdmin || a.Role == models.RoleSuperAdmin
}

type CreateBookingInput struct {
	RoomID      uint      `json:"roomId" binding:"required"`
	GuestName   string    `json:"guestName"`
	GuestEmail  string    `json:"guestEmail"`
	GuestPhone  string    `json:"guestPhone"`
	CheckIn     time.Time `json:"checkIn" binding:"required"`
	CheckOut    time.Time `json:"checkOut" binding:"required"`
	Guests      int       `json:"guests"`
	TotalAmount float64   `json:"totalAmount"`
}

// Create inserts a booking in pending status. The guest email is an
// authorization-sensitive field: admin tiers must supply it explicitly,
// everyone else gets their own token email regardless of the payload.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput, actor Actor) (models.Booking, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return models.Booking{}, NewValidationError("check-out must be after check-in")
	}

	guestEmail := strings.TrimSpace(in.GuestEmail)
	if actor.IsAdminTier() {
		if guestEmail == "" {
			return models.Booking{}, NewValidationError("guest email is required for admin bookings")
		}
	} else {
		guestEmail = actor.Email
	}

	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, err
	}

	guests := in.Guests
	if guests <= 0 {
		guests = 1
	}
	if room.MaxOccupancy > 0 && guests > room.MaxOccupancy {
		return models.Booking{}, NewValidationError("room %s holds at most %d guests", room.RoomNumber, room.MaxOccupancy)
	}

	total := in.TotalAmount
	if total <= 0 {
		nights := math.Ceil(in.CheckOut.Sub(in.CheckIn).Hours() / 24)
		if nights < 1 {
			nights = 1
		}
		total = nights * room.Price
	}

	booking := models.Booking{
		HotelID:       room.HotelID,
		RoomID:        room.ID,
		ReferenceCode: uuid.NewString(),
		GuestName:     strings.TrimSpace(in.GuestName),
		GuestEmail:    guestEmail,
		GuestPhone:    strings.TrimSpace(in.GuestPhone),
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		Guests:        guests,
		TotalAmount:   total,
		Status:        models.BookingPending,
	}

	mu := s.lockRoom(room.ID)
	mu.Lock()
	defer mu.Unlock()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		overlap, err := confirmedOverlapExists(tx, room.ID, in.CheckIn, in.CheckOut, 0)
		if err != nil {
			return err
		}
		if overlap {
			return NewValidationError("room %s is not available for the selected dates", room.RoomNumber)
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// confirmedOverlapExists reports whether any confirmed booking on the room
// intersects the half-open range [checkIn, checkOut). excludeID skips the
// booking being re-checked on its own confirmation.
func confirmedOverlapExists(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (bool, error) {
	var count int64
	q := tx.Model(&models.Booking{}).
		Where("room_id = ? AND status = ?", roomID, models.BookingConfirmed).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus moves a booking through the transition table. Values
// outside the status enum fail validation without touching the stored
// row; enum-legal but table-illegal moves fail with InvalidTransitionError.
// The transition decision and the write happen on a fresh read inside one
// transaction under the room lock, so a concurrent status change can never
// be overwritten by a decision made on a stale row. Confirmation
// additionally re-checks the room for confirmed overlaps, so two
// overlapping bookings can never both end up confirmed.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID uint, newStatus string) (models.Booking, error) {
	newStatus = strings.ToLower(strings.TrimSpace(newStatus))
	if !models.ValidBookingStatus(newStatus) {
		return models.Booking{}, NewValidationError("invalid booking status: %q", newStatus)
	}

	// This read only pins the room for locking; the booking itself can
	// still change until the lock is held.
	var booking models.Booking
	if err := s.DB.WithContext(ctx).First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, err
	}

	mu := s.lockRoom(booking.RoomID)
	mu.Lock()
	defer mu.Unlock()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !transitionAllowed(booking.Status, newStatus) {
			return &InvalidTransitionError{From: booking.Status, To: newStatus}
		}

		if newStatus == models.BookingConfirmed {
			overlap, err := confirmedOverlapExists(tx, booking.RoomID, booking.CheckIn, booking.CheckOut, booking.ID)
			if err != nil {
				return err
			}
			if overlap {
				return NewValidationError("room is already booked for these dates")
			}
		}
		return tx.Model(&booking).Update("status", newStatus).Error
	})
	if err != nil {
		return models.Booking{}, err
	}

	booking.Status = newStatus
	return booking, nil
}

// Delete hard-deletes a booking. This is distinct from cancellation and
// restricted to admin tiers at the route level.
func (s *BookingService) Delete(ctx context.Context, bookingID uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Booking{}, bookingID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).First(&booking, bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Booking{}, ErrNotFound
	}
	return booking, err
}

func (s *BookingService) ListByHotel(ctx context.Context, hotelID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("check_in DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) ListByGuestEmail(ctx context.Context, email string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Where("guest_email = ?", email).
		Order("check_in DESC").
		Find(&bookings).Error
	return bookings, err
}
