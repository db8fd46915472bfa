package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"glamping/internal/config"
	"glamping/internal/database"
	"glamping/internal/domain"
	"glamping/internal/modules/rates"
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
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&domain.Booking{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")

	repo := repository.NewBookingRepository(db)
	ctx := context.Background()

	type seedBooking struct {
		name        string
		phone       string
		email       string
		checkIn     string
		checkOut    string
		extraPerson bool
		decoration  bool
		decoReason  string
		status      domain.BookingStatus
	}

	seeds := []seedBooking{
		{
			name: "Laura Gómez", phone: "3001112233", email: "laura@example.com",
			checkIn: "2025-12-05", checkOut: "2025-12-07",
			status: domain.BookingConfirmed,
		},
		{
			name: "Carlos Pérez", phone: "3014445566",
			checkIn: "2025-12-05", checkOut: "2025-12-06",
			extraPerson: true, status: domain.BookingConfirmed,
		},
		{
			name: "Ana Ruiz", phone: "3027778899", email: "ana@example.com",
			checkIn: "2025-12-24", checkOut: "2025-12-26",
			decoration: true, decoReason: "Aniversario",
			status: domain.BookingPending,
		},
		{
			name: "Pedro Salazar", phone: "3103332211",
			checkIn: "2026-01-01", checkOut: "2026-01-03",
			status: domain.BookingCancelled,
		},
	}

	for _, s := range seeds {
		checkIn, err := rates.ParseDate(s.checkIn)
		if err != nil {
			log.Fatal(err)
		}
		checkOut, err := rates.ParseDate(s.checkOut)
		if err != nil {
			log.Fatal(err)
		}

		quote := cfg.Pricing.Quote(checkIn, checkOut, s.extraPerson, s.decoration)

		guests := 2
		if s.extraPerson {
			guests = 3
		}

		b := &domain.Booking{
			ClientName:       s.name,
			ClientEmail:      s.email,
			ClientPhone:      s.phone,
			CheckIn:          checkIn,
			CheckOut:         checkOut,
			Guests:           guests,
			ExtraPerson:      s.extraPerson,
			Decoration:       s.decoration,
			DecorationReason: s.decoReason,
			Cabins:           1,
			TotalPrice:       quote.Total,
			Status:           s.status,
			CreatedAt:        time.Now(),
		}

		if err := repo.Create(ctx, b); err != nil {
			log.Fatal("seed insert failed:", err)
		}
		log.Printf("seeded booking id=%d %s %s..%s total=%d status=%s",
			b.ID, b.ClientName, s.checkIn, s.checkOut, b.TotalPrice, b.Status)
	}

	log.Println("Done.")
}
