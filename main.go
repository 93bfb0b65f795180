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
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mycrmsystems/elatco-will-system/handlers"
	"github.com/mycrmsystems/elatco-will-system/internal/config"
	"github.com/mycrmsystems/elatco-will-system/internal/database"
	"github.com/mycrmsystems/elatco-will-system/internal/renders"
	"github.com/mycrmsystems/elatco-will-system/internal/sessions"
	"github.com/mycrmsystems/elatco-will-system/internal/storage"
	willhandler "github.com/mycrmsystems/elatco-will-system/internal/will/handler"
	"github.com/mycrmsystems/elatco-will-system/internal/will/repository"
	"github.com/mycrmsystems/elatco-will-system/internal/will/service"
	"github.com/mycrmsystems/elatco-will-system/pkg/logger"
	"github.com/mycrmsystems/elatco-will-system/pkg/metrics"
	"github.com/mycrmsystems/elatco-will-system/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", os.Getenv("MINIO_ENDPOINT") != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple; production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Disposition")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter and token blacklist can use it
	var importedRedis *redis.Client
	if cfg.Redis.Host != "" {
		importedRedis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := importedRedis.Ping(context.Background()).Err(); err == nil {
			// expose Redis client for access-token blacklist checks
			sessions.SetBlacklistClient(importedRedis)
			logger.Infof("Connected to Redis (early): %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis early (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			importedRedis = nil
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		// use Redis-backed limiter when configured and Redis client is available
		if cfg.RateLimit.UseRedis && importedRedis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(importedRedis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// shared runtime vars used by readiness
	var sessionsSvc *sessions.Service
	var willRepo repository.Repository
	var artifacts storage.Storage
	var mongoOK bool

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint: return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		// records readiness: a repository is always wired (memory fallback),
		// but when Mongo was configured we report whether it actually connected
		if cfg.MongoDB.URI != "" {
			deps["mongodb"] = mongoOK
			if !mongoOK {
				ready = false
			}
		} else {
			deps["mongodb"] = true
		}

		deps["sessions"] = sessionsSvc != nil
		if sessionsSvc == nil {
			ready = false
		}
		deps["storage"] = artifacts != nil

		// Redis readiness when used for rate-limiter or sessions
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = importedRedis != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
	})

	ctx := context.Background()

	// Prefer Redis-based sessions when available (fast, in-memory)
	if importedRedis != nil {
		srepo := sessions.NewRedisRepository(importedRedis, "session:")
		sessionsSvc = sessions.NewService(srepo)
		logger.Infof("Using Redis for session storage (early connection)")
	}

	// MongoDB-backed stores (will records, render history, sessions fallback)
	var rendersStore renders.Store
	if cfg.MongoDB.URI != "" {
		// Retry/backoff when connecting to MongoDB to tolerate startup races
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			db := client.Database(cfg.MongoDB.Database)
			willRepo = repository.NewMongoRepo(db)
			rendersStore = renders.NewMongoStore(db.Collection("renders"))
			mongoOK = true

			// only create Mongo-backed session repo when a session service isn't already set
			if sessionsSvc == nil {
				srepo := sessions.NewMongoRepository(db.Collection("sessions"))
				sessionsSvc = sessions.NewService(srepo)
			}
		}
	}
	if willRepo == nil {
		logger.Warnf("using memory-backed will repository (records are lost on restart)")
		willRepo = repository.NewMemoryRepo()
	}
	if rendersStore == nil {
		rendersStore = renders.NewMemoryStore()
	}

	// MinIO-backed artifact storage with memory fallback for dev/test
	if mcfg := storage.LoadMinIOConfig(); mcfg.Endpoint != "" {
		ms, err := storage.NewMinIOStorage(mcfg)
		if err != nil {
			logger.Warnf("failed to initialize MinIO storage (%s): %v", mcfg.Endpoint, err)
		} else {
			artifacts = ms
			logger.Infof("Using MinIO artifact storage: %s/%s", mcfg.Endpoint, mcfg.Bucket)
		}
	}
	if artifacts == nil {
		logger.Warnf("using memory-backed artifact storage (PDFs are regenerated on demand)")
		artifacts = storage.NewMemoryStorage()
	}

	// Register auth handlers if the session service is available
	if sessionsSvc != nil {
		h := handlers.NewAuthHandler(cfg, sessionsSvc)
		h.Register(r.Group("/"))
	} else {
		logger.Warnf("auth handlers not registered because the session service is unavailable")
	}

	// Register minimal Swagger UI + JSON for API documentation
	handlers.RegisterSwagger(r)

	// Will form intake, record access and PDF download
	willSvc := service.New(willRepo, artifacts, rendersStore, cfg.Document.ArtifactPrefix)
	willhandler.RegisterWillRoutes(r, willSvc, middleware.RequireAdmin(cfg))

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	// brief runtime configuration summary to help with debugging early exits
	logger.Infof("Config summary: mongo=%v redis=%v jwt_secret_set=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.JWT.Secret != "")
	logger.Infof("Starting will service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
