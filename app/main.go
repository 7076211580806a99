package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/uchkunrakhimow/edtech-platform/config"
	"github.com/uchkunrakhimow/edtech-platform/delivery"
	"github.com/uchkunrakhimow/edtech-platform/middleware"
	"github.com/uchkunrakhimow/edtech-platform/repository"
	"github.com/uchkunrakhimow/edtech-platform/service"
	"github.com/uchkunrakhimow/edtech-platform/utils"
)

func main() {
	envLoadErr := godotenv.Load()

	cfg, err := config.LoadAppConfig()
	if err != nil {
		utils.InitLogger(os.Getenv("APP_ENV"))
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	utils.InitLogger(cfg.Env)
	if envLoadErr != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	db, err := config.BootDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to obtain database handle")
	}

	redisClient, err := config.InitRedisDB(cfg.RedisAddr, cfg.RedisPassword, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if redisClient == nil {
		log.Warn().Msg("REDIS_ADDR not set, login rate limiting disabled")
	}

	jwtManager := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Init repositories
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	testRepo := repository.NewTestRepository(db)
	testResultRepo := repository.NewTestResultRepository(db)

	// Init services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	courseService := service.NewCourseService(courseRepo, userRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)
	testService := service.NewTestService(testRepo)
	testResultService := service.NewTestResultService(testResultRepo, userRepo, testRepo)

	app := gin.New()
	config.InitMiddleware(app, cfg)

	loginLimiter := middleware.NewFixedWindowLimiter(redisClient, "auth_login", cfg.LoginRateLimit, cfg.LoginWindow)

	delivery.NewHealthHandler(app, sqlDB)
	delivery.NewAuthHandler(app, authService, loginLimiter.Handler())

	api := app.Group("/api", config.AuthMiddleware(jwtManager))
	delivery.NewUserHandler(api, userService)
	delivery.NewCourseHandler(api, courseService)
	delivery.NewEnrollmentHandler(api, enrollmentService)
	delivery.NewTestHandler(api, testService)
	delivery.NewTestResultHandler(api, testResultService)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Msgf("Server running at http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	_ = sqlDB.Close()

	log.Info().Msg("Server exited gracefully")
}
