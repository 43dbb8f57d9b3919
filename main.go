package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Arnab1999india/bazaar/apperrors"
	"github.com/Arnab1999india/bazaar/controllers"
	"github.com/Arnab1999india/bazaar/database"
	"github.com/Arnab1999india/bazaar/logger"
	"github.com/Arnab1999india/bazaar/middleware"
	"github.com/Arnab1999india/bazaar/repository"
	"github.com/Arnab1999india/bazaar/routes"
	"github.com/Arnab1999india/bazaar/services"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := LoadConfig()

	log, err := logger.Initialize(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	mongoClient, db, err := database.Connect(cfg.MongoURL, cfg.DBName)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(mongoClient); err != nil {
			zap.L().Error("Failed to close MongoDB", zap.Error(err))
		}
	}()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Failed to parse REDIS_URL, falling back to default", zap.Error(err))
		redisOpts = &redis.Options{Addr: "localhost:6379"}
	}
	redisClient := redis.NewClient(redisOpts)

	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	dealRepo := repository.NewDealRepository(db)
	viewRepo := repository.NewViewRepository(db)
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	if err := productRepo.EnsureIndexes(context.Background()); err != nil {
		zap.L().Warn("Failed to ensure product indexes", zap.Error(err))
	}
	if err := dealRepo.EnsureIndexes(context.Background()); err != nil {
		zap.L().Warn("Failed to ensure deal indexes", zap.Error(err))
	}

	productService := services.NewProductService(productRepo, orderRepo, brandRepo, userRepo, reviewRepo)
	catalogService := services.NewCatalogService(categoryRepo, brandRepo, productRepo, orderRepo, dealRepo, viewRepo)

	cache := controllers.NewCacheManager(redisClient)
	productController := controllers.NewProductController(productService, cache)
	catalogController := controllers.NewCatalogController(catalogService, cache)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	r.Use(logger.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(apperrors.Middleware())

	routes.RegisterRoutes(r, productController, catalogController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Catalog service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down catalog service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}

	zap.L().Info("Catalog service stopped gracefully")
}
