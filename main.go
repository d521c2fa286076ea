package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/butterflyhouse/butterfly-api/handlers"
	"github.com/butterflyhouse/butterfly-api/internal/butterflies"
	"github.com/butterflyhouse/butterfly-api/internal/config"
	"github.com/butterflyhouse/butterfly-api/internal/database"
	"github.com/butterflyhouse/butterfly-api/internal/store"
	"github.com/butterflyhouse/butterfly-api/internal/users"
	"github.com/butterflyhouse/butterfly-api/pkg/logger"
	"github.com/butterflyhouse/butterfly-api/pkg/metrics"
	"github.com/butterflyhouse/butterfly-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: backend=%s redis=%v minio=%v", cfg.Store.Backend, cfg.Redis.Host != "", cfg.MinIO.Endpoint != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.RegisterRootRoutes(r)

	// Open the document store; MongoDB when selected and reachable, the JSON
	// file backend otherwise.
	ctx := context.Background()
	var backend store.Backend
	if cfg.Store.Backend == "mongo" && cfg.MongoDB.URI != "" {
		// Retry/backoff when connecting to MongoDB to tolerate startup races
		const maxAttempts = 5
		backoff := time.Second
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				col := client.Database(cfg.MongoDB.Database).Collection("document")
				backend = store.NewMongoBackend(col)
				defer func() { _ = client.Disconnect(ctx) }()
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if backend == nil {
			logger.Warnf("mongo backend unavailable, falling back to file backend at %s", cfg.Store.Path)
		}
	}
	if backend == nil {
		backend = store.NewFileBackend(cfg.Store.Path)
	}

	st, err := store.Open(ctx, backend)
	if err != nil {
		logger.Fatalf("failed to open document store: %v", err)
	}

	// Optional snapshot backups to object storage
	if cfg.MinIO.Endpoint != "" {
		backup, err := store.NewMinIOBackup(store.MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Bucket:    cfg.MinIO.Bucket,
		})
		if err != nil {
			logger.Warnf("snapshot backup disabled: %v", err)
		} else {
			st.SetBackup(backup)
			logger.Infof("snapshot backups enabled: bucket=%s", cfg.MinIO.Bucket)
		}
	}

	// readiness endpoint — 200 only when the store is open and Redis (when
	// required by the limiter) is reachable
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{"store": st != nil}
		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if redisClient == nil {
				ready = false
			}
		}
		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterButterflyRoutes(r, butterflies.NewService(st))
	handlers.RegisterUserRoutes(r, users.NewService(st))
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting butterfly API on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
