package statsservice

import (
	"context"
	stderrors "errors"

	"goyard/internal/domain"
	apperror "goyard/internal/errors"
	"goyard/internal/pkg/logger"
)

// StatsRepository define a fonte dos contadores do painel.
type StatsRepository interface {
	GetSystemStats(ctx context.Context) (domain.SystemStats, error)
}

type Service struct {
	repo   StatsRepository
	logger logger.Logger
}

func NewService(repo StatsRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetSystemStats devolve os contadores de armazéns e pátios.
func (s *Service) GetSystemStats(ctx context.Context) (domain.SystemStats, error) {
	s.logger.Debug("Iniciando cálculo de estatísticas no serviço.", nil)

	stats, err := s.repo.GetSystemStats(ctx)
	if err != nil {
		var appErr apperror.AppError
		if stderrors.As(err, &appErr) {
			return domain.SystemStats{}, err
		}
		s.logger.Error("Falha ao obter estatísticas.", err)
		return domain.SystemStats{}, apperror.NewInternalError("Falha interna ao calcular estatísticas.", err)
	}

	return stats, nil
}
