package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Kenji-One/tikd/internal/config"
	"github.com/Kenji-One/tikd/internal/database"
	"github.com/Kenji-One/tikd/internal/models"
	"github.com/Kenji-One/tikd/internal/repositories"
)

// Seeds a couple of events with ticket types and a sample coupon so
// checkout can be exercised locally.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	events := []struct {
		title       string
		startsAt    time.Time
		ticketTypes []struct {
			name  string
			price float64
		}
	}{
		{
			title:    "Summer Rooftop Party",
			startsAt: time.Now().AddDate(0, 1, 0),
			ticketTypes: []struct {
				name  string
				price float64
			}{
				{"General Admission", 25.00},
				{"VIP", 75.00},
			},
		},
		{
			title:    "Downtown Comedy Night",
			startsAt: time.Now().AddDate(0, 0, 14),
			ticketTypes: []struct {
				name  string
				price float64
			}{
				{"Standard", 15.50},
			},
		},
	}

	for _, e := range events {
		var eventID int
		err := db.QueryRow(
			"INSERT INTO events (title, starts_at) VALUES ($1, $2) RETURNING id",
			e.title, e.startsAt,
		).Scan(&eventID)
		if err != nil {
			log.Fatal("Failed to create event:", err)
		}

		for _, tt := range e.ticketTypes {
			_, err := db.Exec(
				"INSERT INTO ticket_types (event_id, name, price, currency) VALUES ($1, $2, $3, $4)",
				eventID, tt.name, tt.price, cfg.Pricing.DefaultCurrency,
			)
			if err != nil {
				log.Fatal("Failed to create ticket type:", err)
			}
		}

		fmt.Printf("Created event %d: %s\n", eventID, e.title)
	}

	couponRepo := repositories.NewCouponRepository(db.DB)
	coupon, err := couponRepo.Create(&models.CouponCreateRequest{
		Code:  "WELCOME10",
		Kind:  models.CouponPercent,
		Value: 10,
	})
	if err != nil {
		if err == models.ErrDuplicateCoupon {
			fmt.Println("Coupon WELCOME10 already exists, skipping")
		} else {
			log.Fatal("Failed to create coupon:", err)
		}
	} else {
		fmt.Printf("Created coupon %s (%s %.0f)\n", coupon.Code, coupon.Kind, coupon.Value)
	}

	fmt.Println("Seeding complete")
}
