package services

import (
	"testing"
	"time"

	"hotel-saas-backend/config"
	"hotel-saas-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the real schema and
// seed data. A single connection keeps sqlite happy under the
// concurrency tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.SeedDatabase(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string, hotelID *uint) models.User {
	t.Helper()
	user := models.User{
		FullName: "Test " + email,
		Email:    email,
		Password: "$2a$10$placeholderplaceholderplaceholderplaceho",
		Role:     role,
		HotelID:  hotelID,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createHotel(t *testing.T, db *gorm.DB, name string, adminID uint) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: name, AdminID: adminID}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func createRoom(t *testing.T, db *gorm.DB, hotelID uint, number string, price float64) models.Room {
	t.Helper()
	room := models.Room{
		HotelID:      hotelID,
		RoomNumber:   number,
		Type:         "Standard",
		Price:        price,
		MaxOccupancy: 4,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

// createRoleWithPerms makes a hotel-scoped role granting the named
// catalog permissions.
func createRoleWithPerms(t *testing.T, db *gorm.DB, name string, hotelID *uint, permNames ...string) models.Role {
	t.Helper()
	role := models.Role{Name: name, HotelID: hotelID}
	require.NoError(t, db.Create(&role).Error)
	for _, permName := range permNames {
		var perm models.Permission
		require.NoError(t, db.Where("name = ?", permName).First(&perm).Error)
		require.NoError(t, db.Create(&models.RolePermission{RoleID: role.ID, PermissionID: perm.ID}).Error)
	}
	return role
}

func assignRole(t *testing.T, db *gorm.DB, userID, roleID, hotelID uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.UserRole{UserID: userID, RoleID: roleID, HotelID: hotelID}).Error)
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}
