package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-saas-backend/controllers"
	"hotel-saas-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	authCtrl *controllers.AuthController,
	hotelCtrl *controllers.HotelController,
	roomCtrl *controllers.RoomController,
	bookingCtrl *controllers.BookingController,
	roleCtrl *controllers.RoleController,
	userCtrl *controllers.UserController,
	dashboardCtrl *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authCtrl.Register)
			auth.POST("/login", authCtrl.Login)
			auth.GET("/me", middleware.Authenticate(), authCtrl.Me)
		}

		hotels := api.Group("/hotels", middleware.Authenticate())
		{
			hotels.POST("", middleware.RequireAdmin(), hotelCtrl.CreateHotel)
			hotels.GET("", middleware.RequireSuperAdmin(), hotelCtrl.GetHotels)
			hotels.GET("/:id", middleware.RequireAdminOrSuperAdmin(), hotelCtrl.GetHotel)
			hotels.PUT("/:id", middleware.RequireAdminOrSuperAdmin(), hotelCtrl.UpdateHotel)
			hotels.DELETE("/:id", middleware.RequireAdminOrSuperAdmin(), hotelCtrl.DeleteHotel)
		}

		rooms := api.Group("/rooms", middleware.Authenticate())
		{
			rooms.GET("", roomCtrl.GetRooms)
			rooms.POST("", middleware.RequirePermission("room_create"), roomCtrl.CreateRoom)
			rooms.PUT("/:id", middleware.RequirePermission("room_update"), roomCtrl.UpdateRoom)
			rooms.DELETE("/:id", middleware.RequirePermission("room_delete"), roomCtrl.DeleteRoom)
		}

		bookings := api.Group("/bookings", middleware.Authenticate())
		{
			bookings.POST("", bookingCtrl.CreateBooking)
			bookings.GET("/my", bookingCtrl.GetMyBookings)
			bookings.GET("/hotel/:hotelId", middleware.RequireAdminOrSuperAdmin(), bookingCtrl.GetHotelBookings)
			bookings.PUT("/:id/status", middleware.RequirePermission("booking_update"), bookingCtrl.UpdateBookingStatus)
			bookings.DELETE("/:id", middleware.RequireAdminOrSuperAdmin(), bookingCtrl.DeleteBooking)
		}

		roles := api.Group("/roles", middleware.Authenticate(), middleware.RequireAdminOrSuperAdmin())
		{
			roles.POST("", middleware.RequirePermission("role_create"), roleCtrl.CreateRole)
			roles.GET("", middleware.RequirePermission("role_view_any"), roleCtrl.GetRoles)
			roles.PUT("/:id", middleware.RequirePermission("role_update"), roleCtrl.UpdateRole)
			roles.DELETE("/:id", middleware.RequirePermission("role_delete"), roleCtrl.DeleteRole)
		}

		users := api.Group("/users", middleware.Authenticate())
		{
			users.GET("", middleware.RequireAdminOrSuperAdmin(), userCtrl.GetUsers)
			users.PUT("/me", userCtrl.UpdateProfile)
			users.POST("/:id/roles", middleware.RequireAdminOrSuperAdmin(), roleCtrl.AssignRole)
		}

		dashboard := api.Group("/dashboard", middleware.Authenticate())
		{
			dashboard.GET("/stats", middleware.RequirePermission("dashboard_view"), dashboardCtrl.GetStats)
		}
	}

	return r
}
