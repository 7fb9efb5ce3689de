package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"snaccscore/database"
	"snaccscore/docs"
	"snaccscore/internal/cache"
	"snaccscore/internal/config"
	"snaccscore/internal/controllers"
	"snaccscore/internal/metrics"
	"snaccscore/internal/middleware"
	"snaccscore/internal/repository"
	"snaccscore/routes"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg := config.Load()

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Snacc Score API"
	docs.SwaggerInfo.Version = "1.0.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	stop := make(chan struct{})
	defer close(stop)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.RunCleanup(time.Minute, 3*time.Minute, stop)

	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	router.Use(middleware.RequestID(), middleware.Monitor(collector), limiter.Middleware())

	scoreController := controllers.NewScoreController(collector)
	routes.RegisterScoreRoutes(router, scoreController)
	routes.RegisterSwaggerRoutes(router)
	if cfg.MetricsEnabled {
		routes.RegisterMetricsRoutes(router, registry)
	}

	var cacheStatus routes.CacheStatus
	if cfg.HistoryEnabled {
		database.ConnectDatabase(cfg.Database)
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		database.MonitorDBConnections(10*time.Second, stop)

		var weeklyCache cache.WeeklyCache = cache.NoopCache{}
		if cfg.RedisURL != "" {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL, cfg.WeeklyCacheTTL)
			cancel()
			if err != nil {
				log.Printf("Warning: weekly score cache disabled: %v", err)
			} else {
				defer redisClient.Close()
				weeklyCache = redisClient
				cacheStatus = redisClient
				log.Printf("Weekly score cache enabled (ttl %v)", cfg.WeeklyCacheTTL)
			}
		}

		historyController := controllers.NewHistoryController(repository.NewScoreRepository(database.DB), weeklyCache, collector)
		routes.RegisterHistoryRoutes(router, historyController)
		log.Println("Score history enabled")
	}
	routes.RegisterHealthRoutes(router, docs.SwaggerInfo.Version, cfg.HistoryEnabled, cacheStatus)

	handler := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
	)(handlers.CompressHandler(router))

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)
		log.Printf("Using %d CPU cores", runtime.NumCPU())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
