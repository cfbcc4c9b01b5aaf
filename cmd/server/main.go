package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/auth"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/cache"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/config"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/database"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/db"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/handlers"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/health"
	h "github.com/Spyboss/tmr-tradinglanka-sub000/internal/http"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/middleware"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/monitoring"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/repositories"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/services"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/storage"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis cache is optional - graceful fallback if unavailable
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (serving from database only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	// Monitoring side server for the ops dashboard
	go monitoring.NewMonitoringServer(pool, 9090).Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Object storage for logo uploads
	uploader, err := storage.NewUploader(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to configure object storage: %v", err)
	}
	if !uploader.Enabled() {
		log.Println("[Storage] Object storage disabled, logo uploads unavailable")
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	billRepo := repositories.NewBillRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	quotationRepo := repositories.NewQuotationRepository(pool)
	settingRepo := repositories.NewSettingRepository(pool)
	loginLogRepo := repositories.NewLoginLogRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	billService := services.NewBillService(billRepo, inventoryRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	quotationService := services.NewQuotationService(quotationRepo, billService)
	brandingService := services.NewBrandingService(settingRepo, uploader)
	pdfService := services.NewPDFService(brandingService)
	totpService := services.NewTOTPService(userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, loginLogRepo)
	billHandler := handlers.NewBillHandler(billService, pdfService, uploader)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	quotationHandler := handlers.NewQuotationHandler(quotationService, pdfService)
	brandingHandler := handlers.NewBrandingHandler(brandingService)
	userHandler := handlers.NewUserHandler(userService)
	totpHandler := handlers.NewTOTPHandler(totpService, userService)
	loginLogHandler := handlers.NewLoginLogHandler(loginLogRepo)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)
	rateLimiter := middleware.NewRateLimiter(cfg)

	router := h.NewRouter(
		authHandler,
		billHandler,
		inventoryHandler,
		quotationHandler,
		brandingHandler,
		userHandler,
		totpHandler,
		loginLogHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			rateLimiter.Middleware(
				corsMiddleware(router),
			),
		),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
