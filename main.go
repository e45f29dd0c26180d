package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"play-cards-store/controllers"
	"play-cards-store/database"
	"play-cards-store/models"
	"play-cards-store/repository"
	"play-cards-store/routes"
	"play-cards-store/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Config load failed", zap.Error(err))
	}

	ctx := context.Background()

	// --- Databases ---
	mongoClient, mongoDB, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("MongoDB connection failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal("Redis connection failed", zap.Error(err))
	}

	var couponDB *gorm.DB
	if cfg.PostgresEnabled() {
		couponDB, err = database.ConnectPostgres(cfg.PostgresDSN())
		if err != nil {
			logger.Fatal("Postgres connection failed", zap.Error(err))
		}
		if err := couponDB.AutoMigrate(&models.Coupon{}); err != nil {
			logger.Fatal("Coupon migration failed", zap.Error(err))
		}
	} else {
		logger.Info("Coupon database not configured, using built-in coupon table")
	}

	// --- Repositories ---
	productRepo := repository.NewMongoProductRepository(mongoDB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB)
	cartRepo := repository.NewRedisCartRepository(redisClient, cfg.CartTTL, cfg.PendingTTL)

	// --- Services ---
	pricing := services.NewPricingEngine(cfg.TaxRate, cfg.ShippingFee)

	var couponResolver services.CouponResolver = services.DefaultCouponResolver()
	var couponController *controllers.CouponController
	if couponDB != nil {
		couponRepo := repository.NewGormCouponRepository(couponDB)
		couponResolver = services.NewRepositoryCouponResolver(couponRepo, logger)
		couponController = controllers.NewCouponController(services.NewCouponService(couponRepo, logger))
	}

	productService := services.NewProductService(productRepo, logger)
	cartService := services.NewCartService(cartRepo, productRepo, logger)
	orderService := services.NewOrderService(orderRepo, cartRepo, cartService, pricing, couponResolver, logger)

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())

	// Structured HTTP request logging
	r.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		switch {
		case status >= 500:
			logger.Error("http_request", fields...)
		case status >= 400:
			logger.Warn("http_request", fields...)
		default:
			logger.Info("http_request", fields...)
		}
	})

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		reqCtx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(reqCtx)
		c.Next()
	})

	routes.Register(r,
		controllers.NewProductController(productService),
		controllers.NewCartController(cartService, pricing),
		controllers.NewOrderController(orderService),
		couponController,
	)

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Play Cards Store started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Redis close error", zap.Error(err))
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Error("MongoDB disconnect error", zap.Error(err))
	}
	if couponDB != nil {
		if err := database.ClosePostgres(couponDB); err != nil {
			logger.Error("Postgres close error", zap.Error(err))
		}
	}

	log.Println("Play Cards Store stopped gracefully")
}
