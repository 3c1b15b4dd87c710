package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vjstudio/career-api/internal/config"
	v1 "github.com/vjstudio/career-api/internal/handlers/api/v1"
	"github.com/vjstudio/career-api/internal/orchestrators/progress"
	"github.com/vjstudio/career-api/internal/redis"
	"github.com/vjstudio/career-api/internal/repositories/save"
	"github.com/vjstudio/career-api/internal/rules/achievement"
	"github.com/vjstudio/career-api/internal/rules/equipment"
	"github.com/vjstudio/career-api/internal/rules/skill"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the career game API server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	setupLogging(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		PoolSize:        cfg.RedisPoolSize,
		MinIdleConns:    cfg.RedisMinIdleConns,
		ConnMaxIdleTime: cfg.RedisConnMaxIdleTime,
		UseTLS:          cfg.RedisUseTLS,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			slog.Warn("failed to close redis client", "error", closeErr.Error())
		}
	}()

	saveRepo, err := save.NewRedis(&save.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}

	progressService, err := progress.NewOrchestrator(&progress.Config{
		SaveRepo:           saveRepo,
		SkillService:       skill.New(),
		EquipmentService:   equipment.New(),
		AchievementService: achievement.New(),
	})
	if err != nil {
		return err
	}

	// Restore the autosave slot if one exists
	loadOut, err := progressService.LoadGame(ctx, &progress.LoadGameInput{Slot: save.AutosaveSlot})
	if err != nil {
		return err
	}
	if loadOut.Success {
		slog.Info("restored autosave", "playtime", loadOut.Snapshot.TotalPlaytime)
	}

	handler, err := v1.NewHandler(&v1.Config{
		ProgressService: progressService,
		CORSOrigins:     cfg.CORSOrigins,
	})
	if err != nil {
		return err
	}

	app := handler.NewApp()

	go runAutoSave(ctx, progressService, cfg.AutoSaveInterval)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr(), "environment", cfg.Environment)
		if serveErr := app.Listen(cfg.ListenAddr()); serveErr != nil {
			errChan <- serveErr
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")
		if shutdownErr := app.ShutdownWithTimeout(cfg.ShutdownTimeout); shutdownErr != nil {
			slog.Error("shutdown failed", "error", shutdownErr.Error())
			return shutdownErr
		}

		// Final autosave before exit
		saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer saveCancel()
		autoSaveOnce(saveCtx, progressService)

		slog.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}

// runAutoSave periodically folds playtime and writes the autosave slot
// while the autosave flag is on.
func runAutoSave(ctx context.Context, svc progress.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			autoSaveOnce(ctx, svc)
		}
	}
}

func autoSaveOnce(ctx context.Context, svc progress.Service) {
	snapOut, err := svc.GetSnapshot(ctx, &progress.GetSnapshotInput{})
	if err != nil {
		slog.Warn("autosave skipped, snapshot failed", "error", err.Error())
		return
	}
	if !snapOut.Snapshot.AutoSaveEnabled {
		return
	}

	if _, err := svc.UpdatePlaytime(ctx, &progress.UpdatePlaytimeInput{}); err != nil {
		slog.Warn("autosave playtime update failed", "error", err.Error())
	}
	if _, err := svc.SaveGame(ctx, &progress.SaveGameInput{Slot: save.AutosaveSlot}); err != nil {
		slog.Warn("autosave failed", "error", err.Error())
	}
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
