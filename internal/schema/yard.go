package schema

import (
	"goyard/internal/domain"
)

type yardPayload struct {
	Code        *string                 `json:"code" create:"required,notblank,nonul" update:"omitempty,notblank,nonul"`
	Name        *string                 `json:"name" create:"required,notblank,nonul" update:"omitempty,notblank,nonul"`
	WarehouseID domain.Optional[int64]  `json:"warehouseId" create:"-" update:"-"`
	Area        *int                    `json:"area" create:"required,min=0,max=2147483647" update:"omitempty,min=0,max=2147483647"`
	Type        *string                 `json:"type" create:"required,notblank,nonul" update:"omitempty,notblank,nonul"`
	Status      *string                 `json:"status" create:"omitempty,status" update:"omitempty,status"`
	Notes       domain.Optional[string] `json:"notes" create:"omitempty,nonul" update:"omitempty,nonul"`
}

// ValidateYardCreate valida um payload de criação de pátio.
func ValidateYardCreate(payload []byte) (domain.NewYard, error) {
	var p yardPayload
	if err := decode(payload, &p); err != nil {
		return domain.NewYard{}, err
	}
	if err := check(createValidator, p); err != nil {
		return domain.NewYard{}, err
	}

	return domain.NewYard{
		Code:        *p.Code,
		Name:        *p.Name,
		WarehouseID: p.WarehouseID.Ptr(),
		Area:        *p.Area,
		Type:        *p.Type,
		Status:      statusOrDefault(p.Status),
		Notes:       p.Notes.Ptr(),
	}, nil
}

// ValidateYardUpdate valida um payload de atualização parcial de pátio.
// warehouseId: null desvincula o pátio do armazém.
func ValidateYardUpdate(payload []byte) (domain.YardPatch, error) {
	var p yardPayload
	if err := decode(payload, &p); err != nil {
		return domain.YardPatch{}, err
	}
	if err := check(updateValidator, p); err != nil {
		return domain.YardPatch{}, err
	}

	return domain.YardPatch{
		Code:        p.Code,
		Name:        p.Name,
		WarehouseID: p.WarehouseID,
		Area:        p.Area,
		Type:        p.Type,
		Status:      statusPtr(p.Status),
		Notes:       p.Notes,
	}, nil
}
