package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contentcraft/contentcraft/backend/api/handlers"
	"github.com/contentcraft/contentcraft/backend/api/internal/config"
	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/handler"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/repository"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/service"
	"github.com/contentcraft/contentcraft/backend/api/internal/database"
	"github.com/contentcraft/contentcraft/backend/api/pkg/logger"
	"github.com/contentcraft/contentcraft/backend/api/pkg/metrics"
	"github.com/contentcraft/contentcraft/backend/api/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

var startTime = time.Now()

// deps are the runtime dependencies the router is built from.
type deps struct {
	cfg      *config.Config
	store    repository.Pinger
	redis    *redis.Client
	services handler.Services
	registry *prometheus.Registry
}

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: mongo=%v redis=%v rate_limit=%v minio=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.RateLimit.Enabled, cfg.MinIO.Endpoint != "")

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var redisClient *redis.Client
	if addr := cfg.Redis.Addr(); addr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", addr, err)
		} else {
			logger.Infof("Connected to Redis: %s", addr)
		}
		defer func() { _ = redisClient.Close() }()
	}

	d := deps{cfg: cfg, redis: redisClient, registry: prometheus.NewRegistry()}
	var client *mongo.Client
	if cfg.MongoDB.URI != "" {
		// Retry/backoff when connecting to MongoDB to tolerate startup races
		client, err = database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts, time.Second)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		d.services, d.store = mongoServices(client.Database(cfg.MongoDB.Database))
		logger.Infof("Using MongoDB database %q", cfg.MongoDB.Database)
	} else {
		logger.Warnf("MONGODB_URI not set: using in-memory collections, data is lost on restart")
		d.services, d.store = memoryServices()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      newRouter(d),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting ContentCraft API on %s (prefix %q)", srv.Addr, cfg.Server.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Fatalf("server failed: %v", err)
	case <-ctx.Done():
	}

	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

func mongoServices(db *mongo.Database) (handler.Services, repository.Pinger) {
	return handler.Services{
		Portfolio:    service.NewPortfolioService(repository.NewMongoCollection[content.PortfolioItem](db.Collection(content.CollectionPortfolio))),
		Testimonials: service.NewTestimonialService(repository.NewMongoCollection[content.Testimonial](db.Collection(content.CollectionTestimonials))),
		Stats:        service.NewStatsService(repository.NewMongoCollection[content.Stats](db.Collection(content.CollectionStats))),
		Inquiries:    service.NewInquiryService(repository.NewMongoCollection[content.ContactInquiry](db.Collection(content.CollectionInquiries))),
	}, repository.MongoPinger{Client: db.Client()}
}

func memoryServices() (handler.Services, repository.Pinger) {
	return handler.Services{
		Portfolio:    service.NewPortfolioService(repository.NewMemoryCollection[content.PortfolioItem](content.CollectionPortfolio)),
		Testimonials: service.NewTestimonialService(repository.NewMemoryCollection[content.Testimonial](content.CollectionTestimonials)),
		Stats:        service.NewStatsService(repository.NewMemoryCollection[content.Stats](content.CollectionStats)),
		Inquiries:    service.NewInquiryService(repository.NewMemoryCollection[content.ContactInquiry](content.CollectionInquiries)),
	}, repository.NopPinger{}
}

func newRouter(d deps) *gin.Engine {
	cfg := d.cfg
	r := gin.New()
	r.Use(
		middleware.CORS(cfg.Server.CORSOrigins),
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.RequestMetrics(),
		gin.Recovery(),
	)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint: 200 only when the document store (and Redis, when
	// the limiter depends on it) answers
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		ready := true
		status := map[string]bool{}

		status["store"] = d.store != nil && d.store.Ping(ctx) == nil
		ready = ready && status["store"]

		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			status["redis"] = d.redis != nil && d.redis.Ping(ctx).Err() == nil
			ready = ready && status["redis"]
		}

		body := gin.H{"status": "ready", "deps": status, "uptime": time.Since(startTime).String()}
		if !ready {
			body["status"] = "not_ready"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		c.JSON(http.StatusOK, body)
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(d.registry)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{})))

	handlers.RegisterSwagger(r, cfg.Server.APIPrefix)

	var guards []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && d.redis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			guards = append(guards, middleware.RedisRateLimitMiddleware(d.redis, "contact", cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			guards = append(guards, middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
		logger.Infof("rate limiting contact submissions: rps=%v burst=%d redis=%v", cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.UseRedis && d.redis != nil)
	}

	handler.RegisterContentRoutes(r.Group(cfg.Server.APIPrefix), d.services, guards...)
	return r
}
