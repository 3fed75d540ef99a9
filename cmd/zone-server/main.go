// cmd/zone-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"zone-platform/internal/chat/gateway"
	chatsession "zone-platform/internal/chat/session"
	"zone-platform/internal/chat/store"
	"zone-platform/internal/common/config"
	"zone-platform/internal/common/database"
	"zone-platform/internal/common/logger"
	"zone-platform/internal/common/observability"
	"zone-platform/internal/interview/catalog"
	interviewsession "zone-platform/internal/interview/session"
	"zone-platform/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting zone server...",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("zone-server")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Question bank ---
	cat, err := catalog.LoadOrDefault(cfg.Interview.RegistryPath)
	if err != nil {
		zapLog.Warn("question bank registry rejected, using built-in bank",
			zap.String("path", cfg.Interview.RegistryPath),
			zap.Error(err),
		)
	}
	zapLog.Info("question bank loaded", zap.Int("questions", cat.QuestionCount()))

	// --- Services ---
	gw := gateway.New(&gateway.Config{
		BaseURL:       cfg.APIs.GenAI.BaseURL,
		APIKey:        cfg.APIs.GenAI.APIKey,
		Model:         cfg.APIs.GenAI.Model,
		Timeout:       time.Duration(cfg.APIs.GenAI.Timeout) * time.Millisecond,
		MaxRetries:    cfg.APIs.GenAI.MaxRetries,
		HistoryWindow: cfg.Chat.HistoryWindow,
	}, log)

	chatStore := store.New(redis.Client, log)
	chatMgr := chatsession.NewManager(chatStore, gw, chatsession.Config{
		WindowWidth:    cfg.Chat.WindowWidth,
		WindowHeight:   cfg.Chat.WindowHeight,
		ViewportWidth:  cfg.Chat.ViewportWidth,
		ViewportHeight: cfg.Chat.ViewportHeight,
	}, log)

	interviews := interviewsession.NewController(
		cat,
		interviewsession.NewStore(time.Duration(cfg.Interview.SessionTTL)*time.Millisecond),
		time.Duration(cfg.Interview.AdvanceDelay)*time.Millisecond,
		log,
	)

	srv := server.New(cfg, server.Deps{
		Chat:          chatMgr,
		Interviews:    interviews,
		Catalog:       cat,
		Gateway:       gw,
		Observability: obs,
	}, log)

	go func() {
		if err := srv.Start(); err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}
	zapLog.Info("zone server stopped")
}
