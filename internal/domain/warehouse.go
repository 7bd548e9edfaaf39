package domain

import (
	"time"
)

// Status é o estado operacional de um armazém ou pátio.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid informa se o status pertence à enumeração aceita pela aplicação.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Warehouse representa um armazém físico gerenciado pelo sistema.
type Warehouse struct {
	ID        int64     `json:"id" example:"1"`
	Code      string    `json:"code" example:"KHO-01"`
	Name      string    `json:"name" example:"Kho Trung Tâm"`
	Address   string    `json:"address"`
	Area      int       `json:"area" example:"5000"`
	Capacity  int       `json:"capacity" example:"10000"`
	Status    Status    `json:"status" example:"active"`
	Manager   string    `json:"manager"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewWarehouse é o payload de criação (InsertWarehouse): a entidade sem id e createdAt.
type NewWarehouse struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Area     int     `json:"area"`
	Capacity int     `json:"capacity"`
	Status   Status  `json:"status,omitempty"`
	Manager  string  `json:"manager"`
	Notes    *string `json:"notes"`
}

// WarehousePatch é uma atualização parcial: apenas os campos presentes são aplicados.
type WarehousePatch struct {
	Code     *string          `json:"code,omitempty"`
	Name     *string          `json:"name,omitempty"`
	Address  *string          `json:"address,omitempty"`
	Area     *int             `json:"area,omitempty"`
	Capacity *int             `json:"capacity,omitempty"`
	Status   *Status          `json:"status,omitempty"`
	Manager  *string          `json:"manager,omitempty"`
	Notes    Optional[string] `json:"notes,omitzero"`
}

// IsEmpty informa se a atualização não altera nenhum campo.
func (p WarehousePatch) IsEmpty() bool {
	return p.Code == nil && p.Name == nil && p.Address == nil && p.Area == nil &&
		p.Capacity == nil && p.Status == nil && p.Manager == nil && !p.Notes.Set
}

// WarehouseFilter define os parâmetros de busca da listagem.
type WarehouseFilter struct {
	Search string // Busca sem distinção de maiúsculas em nome ou código
}
