package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"github.com/Kenji-One/tikd/internal/config"
	"github.com/Kenji-One/tikd/internal/database"
	"github.com/Kenji-One/tikd/internal/handlers"
	"github.com/Kenji-One/tikd/internal/middleware"
	"github.com/Kenji-One/tikd/internal/repositories"
	"github.com/Kenji-One/tikd/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
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
	log.Println("Database connection established successfully")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env != "development",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize repositories
	ticketTypeRepo := repositories.NewTicketTypeRepository(db.DB)
	couponRepo := repositories.NewCouponRepository(db.DB)
	friendshipRepo := repositories.NewFriendshipRepository(db.DB)

	// Initialize payment service with Stripe
	paymentService := services.NewMockPaymentService(&cfg.Stripe)

	// Initialize services
	pricingEngine := services.NewPricingEngine(cfg.Pricing.PerTicketFee, cfg.Pricing.DefaultCurrency)
	checkoutService := services.NewCheckoutService(ticketTypeRepo, couponRepo, pricingEngine, paymentService)
	friendshipService := services.NewFriendshipService(friendshipRepo)
	couponService := services.NewCouponService(couponRepo)

	// Initialize handlers
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	friendsHandler := handlers.NewFriendsHandler(friendshipService)
	couponsHandler := handlers.NewCouponsHandler(couponService)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// Set up routes
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(authMiddleware.LoadUser)

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Post("/checkout/payment-intent", checkoutHandler.CreatePaymentIntent)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)

			r.Get("/friends", friendsHandler.List)
			r.Post("/friends/requests", friendsHandler.CreateRequests)
			r.Post("/friends/requests/{id}/accept", friendsHandler.Accept)
			r.Post("/friends/requests/{id}/decline", friendsHandler.Decline)
			r.Delete("/friends/{userID}", friendsHandler.Remove)

			r.Post("/coupons", couponsHandler.Create)
			r.Get("/coupons", couponsHandler.List)
		})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
