package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bedrijvengids.backend/internal/config"
	"bedrijvengids.backend/internal/infrastructure/jobs"
	"bedrijvengids.backend/internal/infrastructure/mail"
	"bedrijvengids.backend/internal/infrastructure/repositories"
	"bedrijvengids.backend/internal/interfaces/http/handlers"
	"bedrijvengids.backend/internal/interfaces/http/middleware"
	"bedrijvengids.backend/internal/usecases"
	"bedrijvengids.backend/pkg/jwt"
	"bedrijvengids.backend/pkg/logger"
	"bedrijvengids.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	codeRepo := repositories.NewVerificationCodeRepository(db)
	claimRepo := repositories.NewClaimRepository(db)
	facilityRepo := repositories.NewFacilityRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	embeddedReviewRepo := repositories.NewEmbeddedReviewRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize outgoing mail and the code attempt limiter
	mailSender := mail.NewSMTPSender(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)
	limiter := redis.NewAttemptLimiter(
		"verify-attempts",
		cfg.Verification.MaxAttempts,
		cfg.Verification.AttemptWindow,
	)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, codeRepo, uow, mailSender, jwtService, limiter, cfg.Verification.RegisterCodeTTL)
	claimUsecase := usecases.NewClaimUsecase(claimRepo, facilityRepo, codeRepo, uow, mailSender, limiter, cfg.Verification.ClaimCodeTTL)
	favoriteUsecase := usecases.NewFavoriteUsecase(favoriteRepo, facilityRepo)
	reviewUsecase := usecases.NewReviewUsecase(reviewRepo, embeddedReviewRepo, facilityRepo)
	facilityUsecase := usecases.NewFacilityUsecase(facilityRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	claimHandler := handlers.NewClaimHandler(claimUsecase)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteUsecase)
	reviewHandler := handlers.NewReviewHandler(reviewUsecase)
	facilityHandler := handlers.NewFacilityHandler(facilityUsecase, reviewUsecase)
	adminHandler := handlers.NewAdminHandler(claimUsecase, reviewUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewCodeExpiryJob(codeRepo, cfg.Verification.SweepInterval)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		claimHandler:    claimHandler,
		favoriteHandler: favoriteHandler,
		reviewHandler:   reviewHandler,
		facilityHandler: facilityHandler,
		adminHandler:    adminHandler,
		authMiddleware:  authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Bedrijvengids Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
