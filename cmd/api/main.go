package main

import (
	"context"
	"log"
	"os"

	"dinepos/internal/auth"
	"dinepos/internal/booking"
	"dinepos/internal/cart"
	"dinepos/internal/catalog"
	"dinepos/internal/db"
	"dinepos/internal/middleware"
	"dinepos/internal/order"
	"dinepos/internal/router"
	"dinepos/internal/schedule"
	"dinepos/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)

	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		if err := authService.EnsureAdmin("Administrator", email, os.Getenv("ADMIN_PASSWORD")); err != nil {
			log.Fatal("❌ Admin seed failed:", err)
		}
		log.Println("✅ Admin account ready")
	}

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(authService)

	// ───────────────────────── REPOS ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	bookingRepo := booking.NewPostgresRepository(pgDB)
	scheduleRepo := schedule.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(catalogRepo, r2Client)
	cartSessions := cart.NewSessionManager()
	orderService := order.NewService(orderRepo, cartSessions)
	bookingService := booking.NewService(bookingRepo)
	scheduleService := schedule.NewService(scheduleRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartSessions, catalogService)
	orderHandler := order.NewHandler(orderService)
	bookingHandler := booking.NewHandler(bookingService)
	scheduleHandler := schedule.NewHandler(scheduleService)

	// ───────────────────────── GUEST ROUTES ─────────────────────────
	carts := r.Group("/cart/sessions")
	{
		carts.POST("", cartHandler.CreateSession)
		carts.GET("/:id", cartHandler.GetCart)
		carts.POST("/:id/items", cartHandler.AddItem)
		carts.PATCH("/:id/items/:lineID", cartHandler.UpdateQuantity)
		carts.DELETE("/:id/items/:lineID", cartHandler.RemoveLine)
		carts.DELETE("/:id/items", cartHandler.Clear)
		carts.POST("/:id/toggle", cartHandler.ToggleVisibility)
	}

	menu := r.Group("/menu")
	{
		menu.GET("/products", catalogHandler.ListProducts)
		menu.GET("/products/:id", catalogHandler.GetProduct)
		menu.GET("/combos", catalogHandler.ListCombos)
		menu.GET("/tags", catalogHandler.ListTags)
	}

	r.POST("/bookings", bookingHandler.CreateBooking)
	r.POST("/orders", orderHandler.Checkout)

	// ───────────────────────── STAFF ROUTES ─────────────────────────
	staff := r.Group("/")
	staff.Use(middleware.AuthMiddleware())
	{
		staff.GET("/orders", orderHandler.List)
		staff.GET("/orders/:id", orderHandler.Get)
		staff.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

		staff.GET("/tables", bookingHandler.ListTables)
		staff.GET("/bookings", bookingHandler.ListByDay)
		staff.POST("/bookings/:id/cancel", bookingHandler.Cancel)

		staff.GET("/shifts", scheduleHandler.ListShifts)
		staff.POST("/leave", scheduleHandler.RequestLeave)
		staff.GET("/leave", scheduleHandler.ListLeave)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		// Catalog
		admin.POST("/products", catalogHandler.CreateProduct)
		admin.PUT("/products/:id", catalogHandler.UpdateProduct)
		admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
		admin.POST("/products/:id/image", catalogHandler.UploadProductImage)
		admin.POST("/products/:id/variants", catalogHandler.CreateVariant)
		admin.DELETE("/variants/:variantID", catalogHandler.DeleteVariant)
		admin.POST("/combos", catalogHandler.CreateCombo)
		admin.DELETE("/combos/:id", catalogHandler.DeleteCombo)
		admin.POST("/tags", catalogHandler.CreateTag)
		admin.DELETE("/tags/:id", catalogHandler.DeleteTag)
		admin.POST("/products/:id/tags/:tagID", catalogHandler.AssignTag)
		admin.DELETE("/products/:id/tags/:tagID", catalogHandler.UnassignTag)

		// Tables
		admin.POST("/tables", bookingHandler.CreateTable)
		admin.PUT("/tables/:id", bookingHandler.UpdateTable)
		admin.DELETE("/tables/:id", bookingHandler.DeleteTable)

		// Scheduling
		admin.POST("/shifts", scheduleHandler.CreateShift)
		admin.DELETE("/shifts/:id", scheduleHandler.DeleteShift)
		admin.POST("/leave/:id/decision", scheduleHandler.DecideLeave)
	}

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
