// Package service реализует конвейер формирования отчёта о пополнениях.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mmeshcher/topup-report/internal/ledger"
	"github.com/mmeshcher/topup-report/internal/model"
	"github.com/mmeshcher/topup-report/internal/report"
)

// Repository описывает контракт доступа к входным данным и месту записи отчёта.
type Repository interface {
	LoadUsers(ctx context.Context) ([]model.User, error)
	LoadCompanies(ctx context.Context) ([]model.Company, error)
	SaveReport(ctx context.Context, report string) error
}

// Summary содержит итоги одного запуска.
type Summary struct {
	Companies       int
	UsersLoaded     int
	UsersReported   int
	UsersUnresolved int
	TotalTopUp      int64
}

// Service связывает загрузку, расчёт балансов, фильтрацию и запись отчёта.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService создаёт новый сервис с указанным репозиторием и логгером.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Run выполняет один проход конвейера. Отчёт записывается только если все предыдущие шаги успешны.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	companies, err := s.repo.LoadCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load companies: %w", err)
	}

	s.logger.Debug("input loaded",
		zap.Int("users", len(users)),
		zap.Int("companies", len(companies)),
	)

	dir := ledger.NewDirectory(companies)
	balances := ledger.ComputeBalances(users, dir)
	totals := ledger.TotalTopUps(users, dir)

	unresolved := 0
	for _, b := range balances {
		if b.Resolved {
			continue
		}
		unresolved++
		s.logger.Warn("user references unknown company",
			zap.Int64("user_id", b.User.ID),
			zap.Int64("company_id", b.User.CompanyID),
		)
	}

	active := ledger.FilterActive(balances)
	members := ledger.GroupByCompany(active)

	out := report.Render(companies, members, totals)

	if err := s.repo.SaveReport(ctx, out); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	return &Summary{
		Companies:       len(companies),
		UsersLoaded:     len(users),
		UsersReported:   len(active),
		UsersUnresolved: unresolved,
		TotalTopUp:      totals.Sum(),
	}, nil
}
