// Package seed popula um banco recém-migrado com dados de demonstração.
package seed

import (
	"context"
	"fmt"

	"goyard/internal/domain"
	"goyard/internal/pkg/logger"
)

// WarehouseStore é o subconjunto do repositório de armazéns usado pelo seed.
type WarehouseStore interface {
	GetAllWarehouses(ctx context.Context, filter domain.WarehouseFilter) ([]domain.Warehouse, error)
	CreateWarehouse(ctx context.Context, input domain.NewWarehouse) (domain.Warehouse, error)
}

// YardStore é o subconjunto do repositório de pátios usado pelo seed.
type YardStore interface {
	CreateYard(ctx context.Context, input domain.NewYard) (domain.Yard, error)
}

// StatsInvalidator descarta os contadores em cache depois que o seed grava.
type StatsInvalidator interface {
	Invalidate(ctx context.Context)
}

func str(s string) *string { return &s }

// Warehouses são os armazéns de demonstração, na ordem de inserção.
var Warehouses = []domain.NewWarehouse{
	{
		Code: "KHO-01", Name: "Kho Trung Tâm", Address: "123 Đường ABC, Quận 1, TP.HCM",
		Area: 5000, Capacity: 10000, Status: domain.StatusActive, Manager: "Nguyễn Văn A", Notes: str("Kho chính"),
	},
	{
		Code: "KHO-02", Name: "Kho Phía Bắc", Address: "456 Đường XYZ, Hà Nội",
		Area: 3000, Capacity: 6000, Status: domain.StatusActive, Manager: "Trần Thị B", Notes: str("Kho lạnh"),
	},
}

// Yards são os pátios de demonstração. WarehouseID é preenchido com o id do armazém
// de mesmo índice em Warehouses.
var Yards = []domain.NewYard{
	{
		Code: "BAI-A1", Name: "Bãi Container A1", Area: 1000, Type: "Container",
		Status: domain.StatusActive, Notes: str("Khu vực hàng nhập"),
	},
	{
		Code: "BAI-B1", Name: "Bãi Xe Tải B1", Area: 800, Type: "Xe tải",
		Status: domain.StatusInactive, Notes: str("Đang sửa chữa"),
	},
}

// Run insere os dados de demonstração se a tabela de armazéns estiver vazia.
// Devolve false quando já existiam dados e nada foi feito.
func Run(ctx context.Context, warehouses WarehouseStore, yards YardStore, stats StatsInvalidator, log logger.Logger) (bool, error) {
	existing, err := warehouses.GetAllWarehouses(ctx, domain.WarehouseFilter{})
	if err != nil {
		return false, fmt.Errorf("seed: listar armazéns: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Seed ignorado: já existem armazéns.", map[string]interface{}{"count": len(existing)})
		return false, nil
	}

	log.Info("Populando banco de dados...", nil)

	ids := make([]int64, 0, len(Warehouses))
	for _, input := range Warehouses {
		w, err := warehouses.CreateWarehouse(ctx, input)
		if err != nil {
			return false, fmt.Errorf("seed: armazém %s: %w", input.Code, err)
		}
		ids = append(ids, w.ID)
	}

	for i, input := range Yards {
		if i < len(ids) {
			id := ids[i]
			input.WarehouseID = &id
		}
		if _, err := yards.CreateYard(ctx, input); err != nil {
			return false, fmt.Errorf("seed: pátio %s: %w", input.Code, err)
		}
	}

	stats.Invalidate(ctx)

	log.Info("Banco de dados populado.", map[string]interface{}{"warehouses": len(Warehouses), "yards": len(Yards)})
	return true, nil
}
