package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hr-management-backend/config"
	"hr-management-backend/internal/cache"
	"hr-management-backend/internal/mailer"
	"hr-management-backend/internal/middleware"
	"hr-management-backend/internal/routes"
	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("1. starting, loading .env")
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env not found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Println("2. connecting to database")
	db, err := config.ConnectDB(cfg.Database, cfg.IsProduction())
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	var store cache.Cache = cache.Nop{}
	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		redisCache = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.CacheTTL)
		store = redisCache
		log.Printf("cache: redis at %s", cfg.Redis.Addr)
	} else {
		log.Println("cache: disabled (REDIS_ADDR unset)")
	}

	var sender usecase.PayslipSender = mailer.LogMailer{}
	if cfg.Mail.Host != "" {
		sender = mailer.NewSMTPMailer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)
	}

	log.Println("3. database ready, registering routes")
	app := fiber.New(fiber.Config{
		AppName:      "hr-management-backend",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.App.CORSOrigins}))
	app.Use(logger.New())
	app.Use(middleware.Metrics())
	if cfg.App.RateLimitPerMin > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.App.RateLimitPerMin,
			Expiration: time.Minute,
		}))
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.Setup(app, routes.Deps{
		DB:     db,
		Cache:  store,
		Mailer: sender,
		Config: cfg,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("4. listening on :%s", cfg.App.Port)
	if err := serve(app, ":"+cfg.App.Port, quit); err != nil {
		if redisCache != nil {
			_ = redisCache.Close()
		}
		log.Fatalf("server: %v", err)
	}

	if redisCache != nil {
		_ = redisCache.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// serve runs app until a signal arrives on quit or the listener fails.
func serve(app *fiber.App, addr string, quit <-chan os.Signal) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen %s: %w", addr, err)
	case sig := <-quit:
		log.Printf("received %s, shutting down", sig)
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
