package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
	"goarmazem/internal/pkg/logger"
)

// AuthService define o contrato para o login do operador.
type AuthService interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
}

// Handler agrupa os métodos de Handler de autenticação.
type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		json.NewEncoder(w).Encode(data)
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	// Log apenas de erros graves
	if status >= 500 {
		h.Logger.Error("Erro interno no serviço de autenticação:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}

// LoginHandler lida com a requisição POST /v1/auth/login.
// @Summary Autentica o operador
// @Description Confere email e senha do operador configurado e devolve um JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Email e senha"
// @Success 200 {object} domain.LoginResponse "Token emitido"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, nil, apperror.NewInvalidInputError("Payload inválido. Verifique o formato JSON."), http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Login(r.Context(), req)
	h.handleServiceResponse(w, resp, err, http.StatusOK)
}
