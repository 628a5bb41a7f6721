package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotel-saas-backend/config"
	"hotel-saas-backend/controllers"
	"hotel-saas-backend/routes"
	"hotel-saas-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("LOG_FORMAT") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if os.Getenv("JWT_SECRET") == "" {
		logrus.Fatal("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		logrus.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	logrus.Info("database connection established, migrations applied")

	// services
	permissionService := services.NewPermissionService(db)
	authService := services.NewAuthService(db, permissionService)
	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	roleService := services.NewRoleService(db)
	userService := services.NewUserService(db)
	dashboardService := services.NewDashboardService(db)

	// controllers
	authController := controllers.NewAuthController(authService)
	hotelController := controllers.NewHotelController(hotelService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	roleController := controllers.NewRoleController(roleService)
	userController := controllers.NewUserController(userService)
	dashboardController := controllers.NewDashboardController(dashboardService)

	router := routes.SetupRouter(
		authController,
		hotelController,
		roomController,
		bookingController,
		roleController,
		userController,
		dashboardController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}

	logrus.Info("server stopped gracefully")
}
