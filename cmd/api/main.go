package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/sohans1092004/Youtube-Backend-project/internal/api/handler"
	"github.com/sohans1092004/Youtube-Backend-project/internal/api/middleware"
	"github.com/sohans1092004/Youtube-Backend-project/internal/config"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/cache"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/mongodb"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/queue"
	"github.com/sohans1092004/Youtube-Backend-project/internal/infrastructure/storage"
	"github.com/sohans1092004/Youtube-Backend-project/internal/media"
	"github.com/sohans1092004/Youtube-Backend-project/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// handlers groups every HTTP handler mounted by the router.
type handlers struct {
	health        *handler.HealthHandler
	videos        *handler.VideoHandler
	comments      *handler.CommentHandler
	likes         *handler.LikeHandler
	playlists     *handler.PlaylistHandler
	subscriptions *handler.SubscriptionHandler
	dashboard     *handler.DashboardHandler
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.Media.TempDir, 0o755); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	// Initialize infrastructure clients
	mongoClient, err := mongodb.NewClient(ctx, mongodb.DefaultClientConfig(cfg.Mongo.URI, cfg.Mongo.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer mongoClient.Close(context.Background())
	logger.Info("connected to MongoDB")

	if err := mongoClient.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	storageClient, err := storage.NewClient(ctx, storage.ClientConfig{
		Endpoint:      cfg.MinIO.Endpoint,
		AccessKey:     cfg.MinIO.AccessKey,
		SecretKey:     cfg.MinIO.SecretKey,
		Bucket:        cfg.MinIO.Bucket,
		UseSSL:        cfg.MinIO.UseSSL,
		PublicBaseURL: cfg.MinIO.PublicBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	logger.Info("connected to MinIO")

	queueCfg := queue.DefaultClientConfig(cfg.RabbitMQ.URL())
	queueCfg.Prefetch = cfg.RabbitMQ.Prefetch
	queueClient, err := queue.NewClient(ctx, queueCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to Redis")

	// Initialize repositories
	videos := mongoClient.Collection(mongodb.CollectionVideos)
	users := mongoClient.Collection(mongodb.CollectionUsers)
	videoRepo := mongodb.NewVideoRepository(videos, users)
	userRepo := mongodb.NewUserRepository(users)
	commentRepo := mongodb.NewCommentRepository(mongoClient.Collection(mongodb.CollectionComments))
	likeRepo := mongodb.NewLikeRepository(mongoClient.Collection(mongodb.CollectionLikes))
	playlistRepo := mongodb.NewPlaylistRepository(mongoClient.Collection(mongodb.CollectionPlaylists))
	subscriptions := mongoClient.Collection(mongodb.CollectionSubscriptions)
	subscriptionRepo := mongodb.NewSubscriptionRepository(subscriptions)
	dashboardRepo := mongodb.NewDashboardRepository(videos, subscriptions)

	// Initialize services
	uploader := media.NewUploader(
		media.Config{KeyPrefix: cfg.Media.KeyPrefix},
		storageClient,
		media.NewFFprobe(media.FFprobeConfig{FFprobePath: cfg.Media.FFprobePath}),
	)
	videoCache := cache.NewRedisVideoCache(redisClient)

	baseVideoSvc := usecase.NewVideoService(videoRepo, userRepo, uploader, queueClient)
	videoSvc := usecase.NewCachedVideoService(baseVideoSvc, videoCache, usecase.CachedVideoServiceConfig{
		CacheTTL: cfg.Cache.VideoTTL,
	})

	h := handlers{
		health: handler.NewHealthHandler(map[string]handler.Pinger{
			"mongodb": mongoClient,
			"redis":   videoCache,
			"minio":   storageClient,
		}),
		videos: handler.NewVideoHandler(videoSvc, handler.VideoHandlerConfig{
			TempDir:        cfg.Media.TempDir,
			MaxUploadBytes: cfg.Media.MaxUploadBytes,
		}),
		comments:      handler.NewCommentHandler(usecase.NewCommentService(commentRepo, videoRepo, likeRepo)),
		likes:         handler.NewLikeHandler(usecase.NewLikeService(likeRepo, videoRepo, videoCache)),
		playlists:     handler.NewPlaylistHandler(usecase.NewPlaylistService(playlistRepo)),
		subscriptions: handler.NewSubscriptionHandler(usecase.NewSubscriptionService(subscriptionRepo)),
		dashboard:     handler.NewDashboardHandler(usecase.NewDashboardService(dashboardRepo)),
	}

	r := setupRouter(logger, []byte(cfg.Auth.AccessTokenSecret), h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func setupRouter(logger *slog.Logger, secret []byte, h handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Metrics)

	r.Get("/health", h.health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(secret))

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", h.videos.List)
			r.Post("/", h.videos.Publish)
			r.Get("/{videoId}", h.videos.Get)
			r.Patch("/{videoId}", h.videos.Update)
			r.Delete("/{videoId}", h.videos.Delete)
			r.Patch("/toggle/publish/{videoId}", h.videos.TogglePublish)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/{videoId}", h.comments.List)
			r.Post("/{videoId}", h.comments.Add)
			r.Patch("/c/{commentId}", h.comments.Update)
			r.Delete("/c/{commentId}", h.comments.Delete)
		})

		r.Route("/likes", func(r chi.Router) {
			r.Post("/toggle/v/{videoId}", h.likes.ToggleVideo)
			r.Post("/toggle/c/{commentId}", h.likes.ToggleComment)
			r.Post("/toggle/t/{tweetId}", h.likes.ToggleTweet)
			r.Get("/videos", h.likes.LikedVideos)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Post("/", h.playlists.Create)
			r.Get("/user/{userId}", h.playlists.ListByUser)
			r.Get("/{playlistId}", h.playlists.Get)
			r.Patch("/{playlistId}", h.playlists.Update)
			r.Delete("/{playlistId}", h.playlists.Delete)
			r.Patch("/add/{videoId}/{playlistId}", h.playlists.AddVideo)
			r.Patch("/remove/{videoId}/{playlistId}", h.playlists.RemoveVideo)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Post("/c/{channelId}", h.subscriptions.Toggle)
			r.Get("/c/{channelId}", h.subscriptions.Subscribers)
			r.Get("/u/{subscriberId}", h.subscriptions.SubscribedChannels)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", h.dashboard.Stats)
			r.Get("/videos", h.dashboard.Videos)
		})
	})

	return r
}
