package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"apotek-backend/internal/auth"
	"apotek-backend/internal/cache"
	"apotek-backend/internal/config"
	"apotek-backend/internal/database"
	"apotek-backend/internal/db"
	"apotek-backend/internal/handlers"
	"apotek-backend/internal/health"
	apihttp "apotek-backend/internal/http"
	"apotek-backend/internal/middleware"
	"apotek-backend/internal/monitoring"
	"apotek-backend/internal/repositories"
	"apotek-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}
	handlers.SetProduction(cfg.IsProduction())

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(cfg); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (login will use bcrypt only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Start monitoring dashboard server in background
	if cfg.Monitoring.Enabled {
		go monitoring.NewMonitoringServer(pool, cfg.Monitoring.Port).Start()
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	tokenRepo := repositories.NewRefreshTokenRepository(pool)
	barangRepo := repositories.NewBarangRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	karyawanRepo := repositories.NewKaryawanRepository(pool)
	masukRepo := repositories.NewTransaksiMasukRepository(pool)
	keluarRepo := repositories.NewTransaksiKeluarRepository(pool)
	logRepo := repositories.NewLogActivityRepository(pool)
	permissionRepo := repositories.NewPermissionRepository(pool)

	// Initialize services
	userService := services.NewUserService(userRepo, tokenRepo, jwtManager, cfg)
	barangService := services.NewBarangService(barangRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	karyawanService := services.NewKaryawanService(karyawanRepo)
	masukService := services.NewTransaksiMasukService(masukRepo)
	keluarService := services.NewTransaksiKeluarService(keluarRepo)
	logService := services.NewLogActivityService(logRepo)
	permissionService := services.NewPermissionService(permissionRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, logService)
	userHandler := handlers.NewUserHandler(userService, logService)
	barangHandler := handlers.NewBarangHandler(barangService, logService)
	supplierHandler := handlers.NewSupplierHandler(supplierService, logService)
	karyawanHandler := handlers.NewKaryawanHandler(karyawanService, logService)
	masukHandler := handlers.NewTransaksiMasukHandler(masukService, logService)
	keluarHandler := handlers.NewTransaksiKeluarHandler(keluarService, logService)
	logHandler := handlers.NewLogActivityHandler(logService)
	permissionHandler := handlers.NewPermissionHandler(permissionService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := apihttp.NewRouter(
		authHandler,
		userHandler,
		barangHandler,
		supplierHandler,
		karyawanHandler,
		masukHandler,
		keluarHandler,
		logHandler,
		permissionHandler,
		healthHandler,
		authMiddleware,
	)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s (env: %s)", addr, cfg.Env)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
