package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
	"goarmazem/internal/pkg/input"
	"goarmazem/internal/pkg/logger"
	"goarmazem/internal/service/warehouseservice"
)

// WarehouseService define o contrato que o Handler espera da camada de Serviço.
type WarehouseService interface {
	PlaceItem(ctx context.Context, req warehouseservice.PlaceRequest) (warehouseservice.PlaceResult, error)
	RemoveAt(ctx context.Context, loc domain.Location) (warehouseservice.RemoveResult, error)
	ListItems() []domain.Record
	KnownNames() []warehouseservice.NamedID
	SearchByID(id int) domain.SearchResult
	SearchByName(name string) (domain.SearchResult, error)
	LocationsByID(id int) ([]domain.Record, error)
	FindExpiring(date string) ([]domain.ExpiringRecord, error)
	Dimensions() domain.Dimensions
	Grid() domain.GridSnapshot
	Movements(ctx context.Context, limit int) ([]domain.Movement, error)
}

// Handler agrupa todos os métodos de Handler da grade.
type Handler struct {
	Service WarehouseService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc WarehouseService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// PlaceItemHandler lida com a requisição POST /v1/items.
// @Summary Coloca um item na grade
// @Description Escolhe os locais conforme a estratégia de alocação e grava o item em todos eles.
// @Tags items
// @Accept json
// @Produce json
// @Param item body warehouseservice.PlaceRequest true "Item a colocar"
// @Success 201 {object} warehouseservice.PlaceResult "Item armazenado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Sem capacidade"
// @Failure 422 {object} domain.ErrorResponse "Restrição inválida"
// @Security ApiKeyAuth
// @Router /items [post]
func (h *Handler) PlaceItemHandler(w http.ResponseWriter, r *http.Request) {
	var req warehouseservice.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewInvalidInputError("Payload inválido. Verifique o formato JSON."), http.StatusBadRequest)
		return
	}

	result, err := h.Service.PlaceItem(r.Context(), req)
	h.handleServiceResponse(w, r, result, err, http.StatusCreated)
}

// RemoveItemHandler lida com a requisição DELETE /v1/locations/{row}/{shelf}/{level}/{zone}.
// @Summary Remove o item de um local
// @Description Remove o registro que ocupa o local; itens oversized saem de todas as zonas.
// @Tags items
// @Produce json
// @Param row path int true "Fileira"
// @Param shelf path int true "Prateleira"
// @Param level path int true "Nível"
// @Param zone path int true "Zona"
// @Success 200 {object} warehouseservice.RemoveResult "Item removido"
// @Failure 400 {object} domain.ErrorResponse "Local inválido"
// @Failure 404 {object} domain.ErrorResponse "Local vazio"
// @Security ApiKeyAuth
// @Router /locations/{row}/{shelf}/{level}/{zone} [delete]
func (h *Handler) RemoveItemHandler(w http.ResponseWriter, r *http.Request) {
	loc, err := input.ParseLocation(
		r.PathValue("row"), r.PathValue("shelf"), r.PathValue("level"), r.PathValue("zone"),
		h.Service.Dimensions(),
	)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	result, err := h.Service.RemoveAt(r.Context(), loc)
	h.handleServiceResponse(w, r, result, err, http.StatusOK)
}

// ListItemsHandler lida com a requisição GET /v1/items.
// @Summary Lista os itens armazenados
// @Description Um registro por item lógico, ordenado por nome, com todos os locais.
// @Tags items
// @Produce json
// @Success 200 {array} domain.Record "Itens armazenados"
// @Router /items [get]
func (h *Handler) ListItemsHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, nonNil(h.Service.ListItems()), nil, http.StatusOK)
}

// KnownNamesHandler lida com a requisição GET /v1/items/names.
// @Summary Lista os nomes conhecidos
// @Tags items
// @Produce json
// @Success 200 {array} warehouseservice.NamedID "Nomes e IDs"
// @Router /items/names [get]
func (h *Handler) KnownNamesHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Service.KnownNames(), nil, http.StatusOK)
}

// SearchHandler lida com a requisição GET /v1/items/search?id=|name=.
// @Summary Busca quantidade total por ID ou nome
// @Tags items
// @Produce json
// @Param id query int false "ID do item"
// @Param name query string false "Nome exato do item"
// @Success 200 {object} domain.SearchResult "Resultado da busca"
// @Failure 400 {object} domain.ErrorResponse "Parâmetros inválidos"
// @Router /items/search [get]
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	idStr, name := q.Get("id"), q.Get("name")

	switch {
	case idStr != "" && name != "":
		h.handleServiceResponse(w, r, nil, apperror.NewInvalidInputError("informe id ou name, não ambos"), http.StatusOK)
	case idStr != "":
		id, err := input.ParseNonNegativeInt("ID", idStr)
		if err != nil {
			h.handleServiceResponse(w, r, nil, err, http.StatusOK)
			return
		}
		h.handleServiceResponse(w, r, h.Service.SearchByID(id), nil, http.StatusOK)
	default:
		result, err := h.Service.SearchByName(name)
		h.handleServiceResponse(w, r, result, err, http.StatusOK)
	}
}

// LocationsByIDHandler lida com a requisição GET /v1/items/{id}/locations.
// @Summary Lista os locais de um ID
// @Tags items
// @Produce json
// @Param id path int true "ID do item"
// @Success 200 {array} domain.Record "Registros com o ID"
// @Failure 404 {object} domain.ErrorResponse "ID fora da grade"
// @Router /items/{id}/locations [get]
func (h *Handler) LocationsByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := input.ParseNonNegativeInt("ID", r.PathValue("id"))
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	records, err := h.Service.LocationsByID(id)
	h.handleServiceResponse(w, r, records, err, http.StatusOK)
}

// ExpiringHandler lida com a requisição GET /v1/expiring?date=DD-MM-YYYY.
// @Summary Itens frágeis vencidos ou a vencer
// @Description Sem data, usa o dia atual do servidor.
// @Tags expiry
// @Produce json
// @Param date query string false "Data de referência (DD-MM-YYYY)"
// @Success 200 {array} domain.ExpiringRecord "Itens vencidos ou a vencer em até 3 dias"
// @Failure 400 {object} domain.ErrorResponse "Data inválida"
// @Router /expiring [get]
func (h *Handler) ExpiringHandler(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.FindExpiring(r.URL.Query().Get("date"))
	h.handleServiceResponse(w, r, records, err, http.StatusOK)
}

// GridHandler lida com a requisição GET /v1/grid.
// @Summary Instantâneo da grade
// @Tags grid
// @Produce json
// @Success 200 {object} domain.GridSnapshot "Células ocupadas e contadores de uso"
// @Router /grid [get]
func (h *Handler) GridHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Service.Grid(), nil, http.StatusOK)
}

// MovementsHandler lida com a requisição GET /v1/movements?limit=.
// @Summary Diário de movimentos
// @Tags grid
// @Produce json
// @Param limit query int false "Máximo de entradas (padrão 50, teto 500)"
// @Success 200 {array} domain.Movement "Movimentos, mais recentes primeiro"
// @Failure 500 {object} domain.ErrorResponse "Falha no diário"
// @Router /movements [get]
func (h *Handler) MovementsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := strings.TrimSpace(r.URL.Query().Get("limit")); s != "" {
		n, err := input.ParsePositiveInt("limit", s)
		if err != nil {
			h.handleServiceResponse(w, r, nil, err, http.StatusOK)
			return
		}
		limit = n
	}

	movements, err := h.Service.Movements(r.Context(), limit)
	h.handleServiceResponse(w, r, movements, err, http.StatusOK)
}

func nonNil(records []domain.Record) []domain.Record {
	if records == nil {
		return []domain.Record{}
	}
	return records
}
