package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sohans1092004/Youtube-Backend-project/internal/config"
	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
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

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := mongodb.NewClient(ctx, mongodb.DefaultClientConfig(cfg.Mongo.URI, cfg.Mongo.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer mongoClient.Close(context.Background())

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

	queueCfg := queue.DefaultClientConfig(cfg.RabbitMQ.URL())
	queueCfg.Prefetch = cfg.RabbitMQ.Prefetch
	queueClient, err := queue.NewClient(ctx, queueCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()

	logger.Info("worker dependencies ready",
		slog.String("database", cfg.Mongo.Database),
		slog.String("bucket", cfg.MinIO.Bucket),
		slog.String("queue", queueCfg.QueueName),
	)

	cleanupSvc := newCleanupService(cfg, mongoClient, storageClient)

	// Tasks run on their own context so a signal stops intake without
	// interrupting a cascade halfway.
	taskCtx, cancelTasks := context.WithCancel(context.Background())
	defer cancelTasks()

	var inFlight sync.WaitGroup
	handle := func(_ context.Context, task repository.CleanupTask) error {
		inFlight.Add(1)
		defer inFlight.Done()

		logger.Info("processing cleanup task",
			slog.String("video_id", task.VideoID.Hex()),
			slog.Int("retry_count", task.RetryCount),
			slog.Int("media_keys", len(task.MediaKeys)),
		)
		return cleanupSvc.ProcessTask(taskCtx, task)
	}

	logger.Info("consuming cleanup tasks")
	if err := queueClient.ConsumeCleanupTasks(ctx, handle); err != nil && ctx.Err() == nil {
		return fmt.Errorf("consumer error: %w", err)
	}

	logger.Info("shutting down worker")
	if !drain(&inFlight, cfg.Worker.ShutdownTimeout) {
		logger.Warn("shutdown timeout exceeded, cancelling in-flight cleanup")
		cancelTasks()
	}

	logger.Info("worker stopped")
	return nil
}

func newCleanupService(cfg *config.Config, mc *mongodb.Client, objects repository.ObjectStorage) usecase.CleanupService {
	// Deleting objects needs no probing.
	uploader := media.NewUploader(media.Config{KeyPrefix: cfg.Media.KeyPrefix}, objects, nil)

	return usecase.NewCleanupService(
		mongodb.NewCommentRepository(mc.Collection(mongodb.CollectionComments)),
		mongodb.NewLikeRepository(mc.Collection(mongodb.CollectionLikes)),
		mongodb.NewPlaylistRepository(mc.Collection(mongodb.CollectionPlaylists)),
		uploader,
		usecase.CleanupServiceConfig{MaxRetries: cfg.Worker.MaxRetries},
	)
}

// drain waits for in-flight tasks and reports whether they finished in time.
func drain(wg *sync.WaitGroup, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
