package domain

import "time"

// Yard representa um pátio de armazenagem. WarehouseID é uma referência fraca:
// o armazém pode não existir mais e o pátio continua válido.
type Yard struct {
	ID          int64     `json:"id" example:"1"`
	Code        string    `json:"code" example:"BAI-A1"`
	Name        string    `json:"name"`
	WarehouseID *int64    `json:"warehouseId"`
	Area        int       `json:"area" example:"1000"`
	Type        string    `json:"type" example:"Container"`
	Status      Status    `json:"status" example:"active"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewYard é o payload de criação (InsertYard).
type NewYard struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	WarehouseID *int64  `json:"warehouseId"`
	Area        int     `json:"area"`
	Type        string  `json:"type"`
	Status      Status  `json:"status,omitempty"`
	Notes       *string `json:"notes"`
}

// YardPatch é uma atualização parcial de pátio.
type YardPatch struct {
	Code        *string          `json:"code,omitempty"`
	Name        *string          `json:"name,omitempty"`
	WarehouseID Optional[int64]  `json:"warehouseId,omitzero"`
	Area        *int             `json:"area,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Status      *Status          `json:"status,omitempty"`
	Notes       Optional[string] `json:"notes,omitzero"`
}

// IsEmpty informa se a atualização não altera nenhum campo.
func (p YardPatch) IsEmpty() bool {
	return p.Code == nil && p.Name == nil && !p.WarehouseID.Set && p.Area == nil &&
		p.Type == nil && p.Status == nil && !p.Notes.Set
}

// YardFilter define os parâmetros de busca da listagem de pátios.
type YardFilter struct {
	Search      string
	WarehouseID *int64
}
