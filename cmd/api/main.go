package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/awa-app/awa-backend/internal/adapters/cache"
	adapterHTTP "github.com/awa-app/awa-backend/internal/adapters/handler/http"
	"github.com/awa-app/awa-backend/internal/adapters/localstore"
	"github.com/awa-app/awa-backend/internal/adapters/repository"
	"github.com/awa-app/awa-backend/internal/config"
	"github.com/awa-app/awa-backend/internal/content"
	"github.com/awa-app/awa-backend/internal/core/domain"
	"github.com/awa-app/awa-backend/internal/core/services"
	"github.com/awa-app/awa-backend/internal/core/workers"
)

func main() {
	startTime := time.Now()

	cfg := config.Load()

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	// Caching and rate limiting degrade gracefully when Redis is down.
	rdb, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Printf("Warning: Redis unavailable, running without cache and rate limiting: %v", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	local, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		log.Fatalf("Critical: Failed to open local store: %v", err)
	}
	defer local.Close()

	userRepo := repository.NewPostgresUserRepository(db.DB)
	streakRepo := repository.NewPostgresStreakRepository(db)
	sessionRepo := repository.NewPostgresSessionRepository(db)
	likeRepo := repository.NewPostgresLikeRepository(db)
	contentRepo := repository.NewPostgresContentRepository(db)

	prayerRepo := repository.NewPostgresPrayerRepository(db)

	// With Redis present, every prayer write goes through the cache decorator,
	// including the worker's like-count updates, so invalidation is uniform.
	var prayerStore domain.PrayerRepository = prayerRepo
	var remoteContent domain.ContentRepository = contentRepo
	if rdb != nil {
		prayerStore = repository.NewCachedPrayerRepository(prayerRepo, rdb)
		remoteContent = repository.NewCachedContentRepository(contentRepo, rdb)
	}

	analyticsWorker := workers.NewAnalyticsWorker(prayerStore, likeRepo)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	analyticsWorker.Start(workerCtx)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTDuration, userRepo)
	identityResolver := services.NewIdentityResolver(tokenService, local)
	streakService := services.NewStreakService(streakRepo, sessionRepo)
	authService := services.NewAuthService(userRepo, streakService)
	userService := services.NewUserService(userRepo, rdb)
	contentService := services.NewContentService(remoteContent, content.NewStaticProvider())
	prayerService := services.NewPrayerService(prayerStore)
	likeService := services.NewLikeService(likeRepo, prayerStore, analyticsWorker)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:    adapterHTTP.NewAuthHandler(authService, tokenService),
		StreakHandler:  adapterHTTP.NewStreakHandler(streakService),
		PrayerHandler:  adapterHTTP.NewPrayerHandler(prayerService),
		LikeHandler:    adapterHTTP.NewLikeHandler(likeService),
		ContentHandler: adapterHTTP.NewContentHandler(contentService),
		UserHandler:    adapterHTTP.NewUserHandler(userService),
		Identity:       identityResolver,
		DB:             db,
		Redis:          rdb,
		StartTime:      startTime,

		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Awa backend running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
