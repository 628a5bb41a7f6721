package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-saas-backend/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSN(user, pass, host, port, dbName string, params url.Values) string {
	cfg := mysqldriver.NewConfig()
	cfg.User = user
	cfg.Passwd = pass
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%s", host, port)
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	for key, values := range params {
		if len(values) > 0 {
			cfg.Params[key] = values[0]
		}
	}
	return cfg.FormatDSN()
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	return mysqlDSN(user, pass, host, port, dbName, u.Query()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_saas")

	return mysqlDSN(user, pass, host, port, dbName, nil), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	return SeedDatabase(db)
}

// Migrate applies the schema in parent-before-child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Role{},
		&models.Permission{},
		&models.RolePermission{},
		&models.UserRole{},
		&models.Room{},
		&models.Booking{},
	)
}

// PermissionCatalog is the immutable capability catalog, named
// resource_action throughout.
var PermissionCatalog = []models.Permission{
	{Name: "booking_view", Description: "View bookings"},
	{Name: "booking_create", Description: "Create bookings"},
	{Name: "booking_update", Description: "Update bookings and their status"},
	{Name: "booking_delete", Description: "Delete bookings"},
	{Name: "room_view", Description: "View rooms"},
	{Name: "room_create", Description: "Create rooms"},
	{Name: "room_update", Description: "Update rooms"},
	{Name: "room_delete", Description: "Delete rooms"},
	{Name: "role_view_any", Description: "View roles"},
	{Name: "role_create", Description: "Create roles"},
	{Name: "role_update", Description: "Update roles"},
	{Name: "role_delete", Description: "Delete roles"},
	{Name: "user_view", Description: "View users"},
	{Name: "user_create", Description: "Create users"},
	{Name: "user_update", Description: "Update users"},
	{Name: "user_delete", Description: "Delete users"},
	{Name: "dashboard_view", Description: "View dashboard statistics"},
}

// global role templates (hotel_id NULL), assignable by every tenant
var roleTemplates = []struct {
	Name        string
	Description string
	Permissions []string
}{
	{
		Name:        "Manager",
		Description: "Full operational access",
		Permissions: []string{
			"booking_view", "booking_create", "booking_update", "booking_delete",
			"room_view", "room_create", "room_update", "room_delete",
			"user_view", "dashboard_view",
		},
	},
	{
		Name:        "Receptionist",
		Description: "Front desk operations",
		Permissions: []string{
			"booking_view", "booking_create", "booking_update", "room_view",
		},
	},
	{
		Name:        "Housekeeping",
		Description: "Room status access",
		Permissions: []string{"room_view"},
	},
}

// SeedDatabase is idempotent: the permission catalog, the global role
// templates and a default superadmin are created only when missing.
func SeedDatabase(db *gorm.DB) error {
	for _, perm := range PermissionCatalog {
		var count int64
		if err := db.Model(&models.Permission{}).Where("name = ?", perm.Name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&perm).Error; err != nil {
				return err
			}
		}
	}

	for _, tmpl := range roleTemplates {
		var existing models.Role
		err := db.Where("name = ? AND hotel_id IS NULL", tmpl.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		role := models.Role{Name: tmpl.Name, Description: tmpl.Description}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&role).Error; err != nil {
				return err
			}
			var perms []models.Permission
			if err := tx.Where("name IN ?", tmpl.Permissions).Find(&perms).Error; err != nil {
				return err
			}
			rows := make([]models.RolePermission, 0, len(perms))
			for _, p := range perms {
				rows = append(rows, models.RolePermission{RoleID: role.ID, PermissionID: p.ID})
			}
			return tx.Create(&rows).Error
		}); err != nil {
			return err
		}
		logrus.Infof("seeded role template %s", tmpl.Name)
	}

	var superadminCount int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleSuperAdmin).Count(&superadminCount).Error; err != nil {
		return err
	}
	if superadminCount == 0 {
		password := envOrDefault("SUPERADMIN_PASSWORD", "changeme123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		superadmin := models.User{
			FullName: "Super Admin",
			Email:    envOrDefault("SUPERADMIN_EMAIL", "superadmin@hotel.local"),
			Password: string(hash),
			Role:     models.RoleSuperAdmin,
		}
		if err := db.Create(&superadmin).Error; err != nil {
			return err
		}
		logrus.Info("seeded default superadmin")
	}

	return nil
}
