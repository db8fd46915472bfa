package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"glamping/internal/config"
	"glamping/internal/database"
	"glamping/internal/domain"
	"glamping/internal/middleware"
	"glamping/internal/modules/admin"
	"glamping/internal/modules/availability"
	"glamping/internal/modules/booking"
	"glamping/internal/modules/notification"
	jwtsvc "glamping/internal/pkg/jwt"
	"glamping/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.Booking{}); err != nil {
		log.Fatal(err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	engine := availability.NewEngine(cfg.MaxCabins)
	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	var sender booking.NotificationSender
	if cfg.Mail.Enabled {
		sender = notification.NewSMTPSender(
			cfg.Mail.Host,
			cfg.Mail.Port,
			cfg.Mail.Username,
			cfg.Mail.Password,
			cfg.Mail.From,
		)
	} else {
		sender = notification.NewConsoleSender(true)
	}

	bookingService := booking.NewService(bookingRepo, engine, cfg.Pricing, sender)
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(bookingRepo, j, cfg.AdminUser, cfg.AdminPassHash)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		bookingHandler.RegisterRoutes(v1)
		adminHandler.RegisterPublicRoutes(v1)

		// operator console
		protected := v1.Group("/")
		protected.Use(middleware.AdminAuth(j))
		{
			adminHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
