package schema

import (
	"goyard/internal/domain"
)

// warehousePayload espelha InsertWarehouse com todos os campos opcionais no nível do Go;
// a obrigatoriedade vem das tags create/update. A ordem dos campos define qual erro é o primeiro.
// id e createdAt não fazem parte do payload e são descartados pelo decoder.
type warehousePayload struct {
	Code     *string                 `json:"code" create:"required,notblank,nonul" update:"omitempty,notblank,nonul"`
	Name     *string                 `json:"name" create:"required,notblank,nonul" update:"omitempty,notblank,nonul"`
	Address  *string                 `json:"address" create:"required,notblank,nonul" update:"omitempty,notblank,nonul"`
	Area     *int                    `json:"area" create:"required,min=0,max=2147483647" update:"omitempty,min=0,max=2147483647"`
	Capacity *int                    `json:"capacity" create:"required,min=0,max=2147483647" update:"omitempty,min=0,max=2147483647"`
	Status   *string                 `json:"status" create:"omitempty,status" update:"omitempty,status"`
	Manager  *string                 `json:"manager" create:"required,notblank,nonul" update:"omitempty,notblank,nonul"`
	Notes    domain.Optional[string] `json:"notes" create:"omitempty,nonul" update:"omitempty,nonul"`
}

// ValidateWarehouseCreate valida um payload de criação e devolve o registro tipado.
// O status ausente assume "active".
func ValidateWarehouseCreate(payload []byte) (domain.NewWarehouse, error) {
	var p warehousePayload
	if err := decode(payload, &p); err != nil {
		return domain.NewWarehouse{}, err
	}
	if err := check(createValidator, p); err != nil {
		return domain.NewWarehouse{}, err
	}

	return domain.NewWarehouse{
		Code:     *p.Code,
		Name:     *p.Name,
		Address:  *p.Address,
		Area:     *p.Area,
		Capacity: *p.Capacity,
		Status:   statusOrDefault(p.Status),
		Manager:  *p.Manager,
		Notes:    p.Notes.Ptr(),
	}, nil
}

// ValidateWarehouseUpdate valida um payload de atualização parcial; só os campos
// presentes são verificados e devolvidos.
func ValidateWarehouseUpdate(payload []byte) (domain.WarehousePatch, error) {
	var p warehousePayload
	if err := decode(payload, &p); err != nil {
		return domain.WarehousePatch{}, err
	}
	if err := check(updateValidator, p); err != nil {
		return domain.WarehousePatch{}, err
	}

	return domain.WarehousePatch{
		Code:     p.Code,
		Name:     p.Name,
		Address:  p.Address,
		Area:     p.Area,
		Capacity: p.Capacity,
		Status:   statusPtr(p.Status),
		Manager:  p.Manager,
		Notes:    p.Notes,
	}, nil
}
