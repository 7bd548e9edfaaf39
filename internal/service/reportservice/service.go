package reportservice

import (
	"context"
	"time"

	"goyard/internal/domain"
	apperror "goyard/internal/errors"
	"goyard/internal/pkg/logger"
	"goyard/internal/pkg/report"
)

// Source agrega as leituras necessárias para a exportação.
type Source interface {
	GetAllWarehouses(ctx context.Context, filter domain.WarehouseFilter) ([]domain.Warehouse, error)
	GetAllYards(ctx context.Context, filter domain.YardFilter) ([]domain.Yard, error)
	GetSystemStats(ctx context.Context) (domain.SystemStats, error)
}

// WarehouseLister, YardLister e StatsReader permitem compor Source a partir dos serviços existentes.
type WarehouseLister interface {
	GetAllWarehouses(ctx context.Context, filter domain.WarehouseFilter) ([]domain.Warehouse, error)
}

type YardLister interface {
	GetAllYards(ctx context.Context, filter domain.YardFilter) ([]domain.Yard, error)
}

type StatsReader interface {
	GetSystemStats(ctx context.Context) (domain.SystemStats, error)
}

type compositeSource struct {
	WarehouseLister
	YardLister
	StatsReader
}

// NewSource combina os três leitores em uma Source.
func NewSource(w WarehouseLister, y YardLister, s StatsReader) Source {
	return compositeSource{WarehouseLister: w, YardLister: y, StatsReader: s}
}

type Service struct {
	source Source
	now    func() time.Time
	logger logger.Logger
}

func NewService(source Source, logger logger.Logger) *Service {
	return &Service{source: source, now: time.Now, logger: logger}
}

// ExportFacilities gera a planilha XLSX com o resumo, os armazéns e os pátios.
func (s *Service) ExportFacilities(ctx context.Context) ([]byte, error) {
	s.logger.Debug("Iniciando exportação de instalações.", nil)

	warehouses, err := s.source.GetAllWarehouses(ctx, domain.WarehouseFilter{})
	if err != nil {
		return nil, err
	}
	yards, err := s.source.GetAllYards(ctx, domain.YardFilter{})
	if err != nil {
		return nil, err
	}
	stats, err := s.source.GetSystemStats(ctx)
	if err != nil {
		return nil, err
	}

	content, err := report.BuildFacilitiesWorkbook(report.Facilities{
		Stats:       stats,
		Warehouses:  warehouses,
		Yards:       yards,
		GeneratedAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("Falha ao gerar planilha de instalações.", err)
		return nil, apperror.NewInternalError("Falha interna ao gerar relatório.", err)
	}

	s.logger.Info("Planilha de instalações gerada.", map[string]interface{}{
		"warehouses": len(warehouses),
		"yards":      len(yards),
		"bytes":      len(content),
	})
	return content, nil
}
