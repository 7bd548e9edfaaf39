package yard

import (
	"context"
	"net/http"

	"goyard/internal/api/respond"
	"goyard/internal/contract"
	"goyard/internal/domain"
	"goyard/internal/pkg/logger"
	"goyard/internal/schema"
)

// YardService define o contrato que o Handler espera da camada de Serviço.
type YardService interface {
	CreateYard(ctx context.Context, input domain.NewYard) (domain.Yard, error)
	GetYardByID(ctx context.Context, id int64) (domain.Yard, error)
	GetAllYards(ctx context.Context, filter domain.YardFilter) ([]domain.Yard, error)
	UpdateYard(ctx context.Context, id int64, patch domain.YardPatch) (domain.Yard, error)
	DeleteYard(ctx context.Context, id int64) error
}

// Handler agrupa os handlers de pátios.
type Handler struct {
	Service YardService
	Logger  logger.Logger
	resp    *respond.Writer
}

func NewHandler(svc YardService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
		resp:    respond.NewWriter(log),
	}
}

// GetAllYardsHandler lida com GET /api/yards[?search=&warehouseId=].
func (h *Handler) GetAllYardsHandler(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := respond.QueryID(r, "warehouseId")
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	filter := domain.YardFilter{
		Search:      r.URL.Query().Get("search"),
		WarehouseID: warehouseID,
	}

	yards, err := h.Service.GetAllYards(r.Context(), filter)
	h.resp.Handle(w, r, yards, err, contract.API.Yards.List.SuccessStatus())
}

func (h *Handler) GetYardByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	yard, err := h.Service.GetYardByID(r.Context(), id)
	h.resp.Handle(w, r, yard, err, contract.API.Yards.Get.SuccessStatus())
}

func (h *Handler) CreateYardHandler(w http.ResponseWriter, r *http.Request) {
	body, err := respond.ReadBody(w, r)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	input, err := schema.ValidateYardCreate(body)
	if err != nil {
		h.Logger.Warn("Payload de pátio rejeitado.", map[string]interface{}{"error": err.Error()})
		h.resp.Error(w, r, err)
		return
	}

	created, err := h.Service.CreateYard(r.Context(), input)
	h.resp.Handle(w, r, created, err, contract.API.Yards.Create.SuccessStatus())
}

func (h *Handler) UpdateYardHandler(w http.ResponseWriter, r *http.Request) {
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

	patch, err := schema.ValidateYardUpdate(body)
	if err != nil {
		h.Logger.Warn("Atualização de pátio rejeitada.", map[string]interface{}{"id": id, "error": err.Error()})
		h.resp.Error(w, r, err)
		return
	}

	updated, err := h.Service.UpdateYard(r.Context(), id, patch)
	h.resp.Handle(w, r, updated, err, contract.API.Yards.Update.SuccessStatus())
}

func (h *Handler) DeleteYardHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	err = h.Service.DeleteYard(r.Context(), id)
	h.resp.Handle(w, r, nil, err, contract.API.Yards.Delete.SuccessStatus())
}
