package warehouse

import (
	"context"
	"net/http"

	"goyard/internal/api/respond"
	"goyard/internal/contract"
	"goyard/internal/domain"
	"goyard/internal/pkg/logger"
	"goyard/internal/schema"
)

// WarehouseService define o contrato que o Handler espera da camada de Serviço.
type WarehouseService interface {
	CreateWarehouse(ctx context.Context, input domain.NewWarehouse) (domain.Warehouse, error)
	GetWarehouseByID(ctx context.Context, id int64) (domain.Warehouse, error)
	GetAllWarehouses(ctx context.Context, filter domain.WarehouseFilter) ([]domain.Warehouse, error)
	UpdateWarehouse(ctx context.Context, id int64, patch domain.WarehousePatch) (domain.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id int64) error
}

// Handler agrupa todos os métodos de Handler de armazéns.
type Handler struct {
	Service WarehouseService
	Logger  logger.Logger
	resp    *respond.Writer
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc WarehouseService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
		resp:    respond.NewWriter(log),
	}
}

// GetAllWarehousesHandler lida com GET /api/warehouses[?search=].
func (h *Handler) GetAllWarehousesHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.WarehouseFilter{Search: r.URL.Query().Get("search")}

	warehouses, err := h.Service.GetAllWarehouses(r.Context(), filter)
	h.resp.Handle(w, r, warehouses, err, contract.API.Warehouses.List.SuccessStatus())
}

// GetWarehouseByIDHandler lida com GET /api/warehouses/{id}.
func (h *Handler) GetWarehouseByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	warehouse, err := h.Service.GetWarehouseByID(r.Context(), id)
	h.resp.Handle(w, r, warehouse, err, contract.API.Warehouses.Get.SuccessStatus())
}

// CreateWarehouseHandler lida com POST /api/warehouses.
// O corpo passa pelo schema antes de qualquer chamada ao serviço.
func (h *Handler) CreateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	body, err := respond.ReadBody(w, r)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	input, err := schema.ValidateWarehouseCreate(body)
	if err != nil {
		h.Logger.Warn("Payload de armazém rejeitado.", map[string]interface{}{"error": err.Error()})
		h.resp.Error(w, r, err)
		return
	}

	created, err := h.Service.CreateWarehouse(r.Context(), input)
	h.resp.Handle(w, r, created, err, contract.API.Warehouses.Create.SuccessStatus())
}

// UpdateWarehouseHandler lida com PUT /api/warehouses/{id} (atualização parcial).
func (h *Handler) UpdateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	body, err := respond.ReadBody(w, r)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	patch, err := schema.ValidateWarehouseUpdate(body)
	if err != nil {
		h.Logger.Warn("Atualização de armazém rejeitada.", map[string]interface{}{"id": id, "error": err.Error()})
		h.resp.Error(w, r, err)
		return
	}

	updated, err := h.Service.UpdateWarehouse(r.Context(), id, patch)
	h.resp.Handle(w, r, updated, err, contract.API.Warehouses.Update.SuccessStatus())
}

// DeleteWarehouseHandler lida com DELETE /api/warehouses/{id}. Responde 204 mesmo se o id não existir.
func (h *Handler) DeleteWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	err = h.Service.DeleteWarehouse(r.Context(), id)
	h.resp.Handle(w, r, nil, err, contract.API.Warehouses.Delete.SuccessStatus())
}
