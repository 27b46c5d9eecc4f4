// Package main запускает формирование отчёта о пополнениях токенов.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmeshcher/topup-report/internal/config"
	"github.com/mmeshcher/topup-report/internal/repository"
	"github.com/mmeshcher/topup-report/internal/service"
)

func main() {
	boot, _ := zap.NewProduction()

	cfg, logger := setup(boot)
	defer logger.Sync()

	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := repository.NewFileRepository(cfg.UsersPath, cfg.CompaniesPath, cfg.OutputPath)
	svc := service.NewService(repo, logger)

	summary, err := svc.Run(ctx)
	if err != nil {
		sugar.Fatalw("report generation failed", "error", err.Error())
	}

	sugar.Infow("report written",
		"path", cfg.OutputPath,
		"companies", summary.Companies,
		"users", summary.UsersLoaded,
		"reported", summary.UsersReported,
		"unresolved", summary.UsersUnresolved,
		"total_top_up", summary.TotalTopUp,
	)
}

// setup читает конфигурацию и строит логгер запуска. Ошибки пишутся через boot и завершают процесс.
func setup(boot *zap.Logger) (*config.Config, *zap.Logger) {
	cfg, err := config.Parse()
	if err != nil {
		boot.Sugar().Fatalw("configuration error", "error", err.Error())
		return nil, nil
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		boot.Sugar().Fatalw("logger initialization error", "error", err.Error())
		return nil, nil
	}

	return cfg, logger.With(zap.String("run_id", uuid.NewString()))
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}
