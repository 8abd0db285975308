package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendo/internal/api"
	"calendo/internal/app/notify"
	"calendo/internal/app/ratelimit"
	"calendo/internal/app/service"
	"calendo/internal/common/security"
	"calendo/internal/domain/repository"
	"calendo/internal/platform/cache"
	"calendo/internal/platform/config"
	"calendo/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT (fatal if no signing key is configured)
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	roleRepo := repository.NewPgRoleRepository(database.DB)
	otpRepo := repository.NewPgTwoFactorCodeRepository(database.DB)
	calendarRepo := repository.NewPgCalendarRepository(database.DB)
	eventRepo := repository.NewPgEventRepository(database.DB)
	reminderRepo := repository.NewPgReminderRepository(database.DB)

	// 6. Seed roles and the bootstrap admin (idempotent)
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := service.EnsureSeedData(seedCtx, userRepo, roleRepo, service.SeedAdmin{
		Username: config.AppConfig.SeedAdminUsername,
		Email:    config.AppConfig.SeedAdminEmail,
		Password: config.AppConfig.SeedAdminPassword,
	})
	seedCancel()
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	fmt.Println("Seed data ensured.")

	// 7. Initialize Services
	otpSender := notify.NewLogSender() // dev transport; swap for email/SMS in production
	limiter := ratelimit.NewRedisLimiter(cache.RDB, ratelimit.Config{
		Limit:  config.AppConfig.AuthRateLimit,
		Window: config.AppConfig.AuthRateLimitWindow,
	})
	authService := service.NewAuthService(userRepo, roleRepo, otpRepo, otpSender, limiter)
	userService := service.NewUserService(userRepo, roleRepo)
	calendarService := service.NewCalendarService(calendarRepo)
	eventService := service.NewEventService(eventRepo, calendarRepo)
	reminderService := service.NewReminderService(reminderRepo, eventRepo)

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(authService, userService, calendarService, eventService, reminderService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
