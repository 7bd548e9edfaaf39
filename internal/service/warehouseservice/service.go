package warehouseservice

import (
	"context"
	stderrors "errors"

	"goyard/internal/domain"
	apperror "goyard/internal/errors"
	"goyard/internal/pkg/logger"
)

// WarehouseRepository define o contrato que o Serviço de Armazéns espera da camada de Persistência.
type WarehouseRepository interface {
	CreateWarehouse(ctx context.Context, input domain.NewWarehouse) (domain.Warehouse, error)
	GetWarehouseByID(ctx context.Context, id int64) (domain.Warehouse, error)
	GetAllWarehouses(ctx context.Context, filter domain.WarehouseFilter) ([]domain.Warehouse, error)
	UpdateWarehouse(ctx context.Context, id int64, patch domain.WarehousePatch) (domain.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id int64) error
}

// StatsInvalidator descarta os contadores do painel após uma escrita.
type StatsInvalidator interface {
	Invalidate(ctx context.Context)
}

// Service orquestra as regras de armazéns entre o Handler e o Repositório.
type Service struct {
	repo   WarehouseRepository
	stats  StatsInvalidator
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Armazéns.
func NewService(repo WarehouseRepository, stats StatsInvalidator, logger logger.Logger) *Service {
	return &Service{repo: repo, stats: stats, logger: logger}
}

// CreateWarehouse persiste um armazém já validado pelo schema.
func (s *Service) CreateWarehouse(ctx context.Context, input domain.NewWarehouse) (domain.Warehouse, error) {
	s.logger.Debug("Iniciando criação de armazém no serviço.", map[string]interface{}{"code": input.Code})

	created, err := s.repo.CreateWarehouse(ctx, input)
	if err != nil {
		return domain.Warehouse{}, s.translate(err, "Falha interna ao criar armazém.")
	}

	s.stats.Invalidate(ctx)
	s.logger.Info("Armazém criado com sucesso.", map[string]interface{}{"id": created.ID, "code": created.Code})
	return created, nil
}

// GetWarehouseByID busca um armazém pelo ID.
func (s *Service) GetWarehouseByID(ctx context.Context, id int64) (domain.Warehouse, error) {
	s.logger.Debug("Iniciando busca de armazém por ID no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return domain.Warehouse{}, err
	}

	warehouse, err := s.repo.GetWarehouseByID(ctx, id)
	if err != nil {
		return domain.Warehouse{}, s.translate(err, "Falha interna ao buscar armazém.")
	}

	return warehouse, nil
}

// GetAllWarehouses lista os armazéns, opcionalmente filtrados por busca textual.
func (s *Service) GetAllWarehouses(ctx context.Context, filter domain.WarehouseFilter) ([]domain.Warehouse, error) {
	s.logger.Debug("Iniciando busca de todos os armazéns no serviço.", map[string]interface{}{"search": filter.Search})

	warehouses, err := s.repo.GetAllWarehouses(ctx, filter)
	if err != nil {
		return nil, s.translate(err, "Falha interna ao buscar armazéns.")
	}
	if warehouses == nil {
		warehouses = []domain.Warehouse{}
	}

	s.logger.Info("Armazéns listados com sucesso.", map[string]interface{}{"count": len(warehouses)})
	return warehouses, nil
}

// UpdateWarehouse aplica uma atualização parcial. Id inexistente resulta em NotFoundError.
func (s *Service) UpdateWarehouse(ctx context.Context, id int64, patch domain.WarehousePatch) (domain.Warehouse, error) {
	s.logger.Debug("Iniciando atualização de armazém no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return domain.Warehouse{}, err
	}

	updated, err := s.repo.UpdateWarehouse(ctx, id, patch)
	if err != nil {
		return domain.Warehouse{}, s.translate(err, "Falha interna ao atualizar armazém.")
	}

	if !patch.IsEmpty() {
		s.stats.Invalidate(ctx)
	}
	s.logger.Info("Armazém atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// DeleteWarehouse remove um armazém. A operação é idempotente.
func (s *Service) DeleteWarehouse(ctx context.Context, id int64) error {
	s.logger.Debug("Iniciando exclusão de armazém no serviço.", map[string]interface{}{"id": id})

	if err := s.validateID(id); err != nil {
		return err
	}

	if err := s.repo.DeleteWarehouse(ctx, id); err != nil {
		return s.translate(err, "Falha interna ao deletar armazém.")
	}

	s.stats.Invalidate(ctx)
	s.logger.Info("Armazém deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (s *Service) validateID(id int64) error {
	if id <= 0 {
		s.logger.Warn("ID de armazém inválido fornecido.", map[string]interface{}{"id": id})
		return apperror.NewFieldValidationError("id", "O ID do armazém deve ser um inteiro positivo.")
	}
	return nil
}

// translate preserva erros já tipados (NotFound, ConstraintViolation, DB) e encapsula o resto.
func (s *Service) translate(err error, msg string) error {
	var appErr apperror.AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	s.logger.Error(msg, err)
	return apperror.NewInternalError(msg, err)
}
