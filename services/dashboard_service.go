package services

import (
	"context"
	"time"

	"hotel-saas-backend/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type DashboardStats struct {
	Revenue       float64          `json:"revenue"`
	BookingCounts map[string]int64 `json:"bookingCounts"`
	TotalRooms    int64            `json:"totalRooms"`
	OccupiedRooms int64            `json:"occupiedRooms"`
	OccupancyRate float64          `json:"occupancyRate"`
}

// Stats aggregates the tenant dashboard numbers. Revenue and occupancy
// count confirmed bookings only; occupancy uses the same half-open
// interval the availability calculator uses.
func (s *DashboardService) Stats(ctx context.Context, hotelID uint, asOf time.Time) (DashboardStats, error) {
	stats := DashboardStats{BookingCounts: map[string]int64{
		models.BookingPending:   0,
		models.BookingConfirmed: 0,
		models.BookingCancelled: 0,
	}}

	if err := s.DB.WithContext(ctx).
		Model(&models.Booking{}).
		Where("hotel_id = ? AND status = ?", hotelID, models.BookingConfirmed).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.Revenue).Error; err != nil {
		return DashboardStats{}, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := s.DB.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Where("hotel_id = ?", hotelID).
		Group("status").
		Scan(&counts).Error; err != nil {
		return DashboardStats{}, err
	}
	for _, c := range counts {
		stats.BookingCounts[c.Status] = c.Count
	}

	if err := s.DB.WithContext(ctx).
		Model(&models.Room{}).
		Where("hotel_id = ?", hotelID).
		Count(&stats.TotalRooms).Error; err != nil {
		return DashboardStats{}, err
	}

	if err := s.DB.WithContext(ctx).
		Model(&models.Booking{}).
		Distinct("room_id").
		Where("hotel_id = ? AND status = ?", hotelID, models.BookingConfirmed).
		Where("check_in <= ? AND check_out > ?", asOf, asOf).
		Count(&stats.OccupiedRooms).Error; err != nil {
		return DashboardStats{}, err
	}

	if stats.TotalRooms > 0 {
		stats.OccupancyRate = float64(stats.OccupiedRooms) / float64(stats.TotalRooms)
	}
	return stats, nil
}
