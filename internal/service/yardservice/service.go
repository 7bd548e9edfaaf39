package yardservice

import (
	"context"
	stderrors "errors"

	"goyard/internal/domain"
	apperror "goyard/internal/errors"
	"goyard/internal/pkg/logger"
)

// YardRepository define o contrato que o Serviço de Pátios espera da camada de Persistência.
type YardRepository interface {
	CreateYard(ctx context.Context, input domain.NewYard) (domain.Yard, error)
	GetYardByID(ctx context.Context, id int64) (domain.Yard, error)
	GetAllYards(ctx context.Context, filter domain.YardFilter) ([]domain.Yard, error)
	UpdateYard(ctx context.Context, id int64, patch domain.YardPatch) (domain.Yard, error)
	DeleteYard(ctx context.Context, id int64) error
}

// StatsInvalidator descarta os contadores do painel após uma escrita.
type StatsInvalidator interface {
	Invalidate(ctx context.Context)
}

// Service orquestra as regras de pátios. A referência ao armazém não é verificada:
// um pátio pode apontar para um armazém que não existe mais.
type Service struct {
	repo   YardRepository
	stats  StatsInvalidator
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Pátios.
func NewService(repo YardRepository, stats StatsInvalidator, logger logger.Logger) *Service {
	return &Service{repo: repo, stats: stats, logger: logger}
}

func (s *Service) CreateYard(ctx context.Context, input domain.NewYard) (domain.Yard, error) {
	s.logger.Debug("Iniciando criação de pátio no serviço.", map[string]interface{}{"code": input.Code})

	created, err := s.repo.CreateYard(ctx, input)
	if err != nil {
		return domain.Yard{}, s.translate(err, "Falha interna ao criar pátio.")
	}

	s.stats.Invalidate(ctx)
	s.logger.Info("Pátio criado com sucesso.", map[string]interface{}{"id": created.ID, "code": created.Code})
	return created, nil
}

func (s *Service) GetYardByID(ctx context.Context, id int64) (domain.Yard, error) {
	s.logger.Debug("Iniciando busca de pátio por ID no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return domain.Yard{}, err
	}

	yard, err := s.repo.GetYardByID(ctx, id)
	if err != nil {
		return domain.Yard{}, s.translate(err, "Falha interna ao buscar pátio.")
	}
	return yard, nil
}

func (s *Service) GetAllYards(ctx context.Context, filter domain.YardFilter) ([]domain.Yard, error) {
	s.logger.Debug("Iniciando busca de todos os pátios no serviço.", map[string]interface{}{"search": filter.Search})

	if filter.WarehouseID != nil && *filter.WarehouseID <= 0 {
		s.logger.Warn("Filtro warehouseId inválido.", map[string]interface{}{"warehouseId": *filter.WarehouseID})
		return nil, apperror.NewFieldValidationError("warehouseId", "O filtro warehouseId deve ser um inteiro positivo.")
	}

	yards, err := s.repo.GetAllYards(ctx, filter)
	if err != nil {
		return nil, s.translate(err, "Falha interna ao buscar pátios.")
	}
	if yards == nil {
		yards = []domain.Yard{}
	}

	s.logger.Info("Pátios listados com sucesso.", map[string]interface{}{"count": len(yards)})
	return yards, nil
}

func (s *Service) UpdateYard(ctx context.Context, id int64, patch domain.YardPatch) (domain.Yard, error) {
	s.logger.Debug("Iniciando atualização de pátio no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return domain.Yard{}, err
	}

	updated, err := s.repo.UpdateYard(ctx, id, patch)
	if err != nil {
		return domain.Yard{}, s.translate(err, "Falha interna ao atualizar pátio.")
	}

	if !patch.IsEmpty() {
		s.stats.Invalidate(ctx)
	}
	s.logger.Info("Pátio atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

func (s *Service) DeleteYard(ctx context.Context, id int64) error {
	s.logger.Debug("Iniciando exclusão de pátio no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return err
	}

	if err := s.repo.DeleteYard(ctx, id); err != nil {
		return s.translate(err, "Falha interna ao deletar pátio.")
	}

	s.stats.Invalidate(ctx)
	s.logger.Info("Pátio deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (s *Service) validateID(id int64) error {
	if id <= 0 {
		s.logger.Warn("ID de pátio inválido fornecido.", map[string]interface{}{"id": id})
		return apperror.NewFieldValidationError("id", "O ID do pátio deve ser um inteiro positivo.")
	}
	return nil
}

func (s *Service) translate(err error, msg string) error {
	var appErr apperror.AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	s.logger.Error(msg, err)
	return apperror.NewInternalError(msg, err)
}
