package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do armazém.
// Ela permite que o código externo (Handler, CLI) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "NO_CAPACITY", "NOT_FOUND", "INTERNAL_ERROR")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Erros de Alocação e Colocação ---

// NoCapacityError indica que a alocação percorreu todo o espaço de busca sem encontrar lugar.
type NoCapacityError struct {
	Msg string
}

func (e *NoCapacityError) Error() string    { return fmt.Sprintf("Sem capacidade: %s", e.Msg) }
func (e *NoCapacityError) Category() string { return "NO_CAPACITY" }
func (e *NoCapacityError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *NoCapacityError) Unwrap() error    { return nil }

// NewNoCapacityError cria um novo erro de falta de capacidade.
func NewNoCapacityError(msg string) AppError {
	return &NoCapacityError{Msg: msg}
}

// InvalidConstraintError representa um parâmetro de qualidade malformado ou fora do intervalo
// (e.g., zonas contíguas zero ou maiores que a grade).
type InvalidConstraintError struct {
	Msg string
}

func (e *InvalidConstraintError) Error() string    { return fmt.Sprintf("Restrição inválida: %s", e.Msg) }
func (e *InvalidConstraintError) Category() string { return "INVALID_CONSTRAINT" }
func (e *InvalidConstraintError) HTTPStatus() int  { return http.StatusUnprocessableEntity } // 422
func (e *InvalidConstraintError) Unwrap() error    { return nil }

// NewInvalidConstraintError cria um novo erro de restrição inválida.
func NewInvalidConstraintError(msg string) AppError {
	return &InvalidConstraintError{Msg: msg}
}

// ConstraintViolationError é retornado quando a reverificação após a alocação falha.
// Não deveria acontecer com uma estratégia correta.
type ConstraintViolationError struct {
	Msg string
}

func (e *ConstraintViolationError) Error() string    { return fmt.Sprintf("Violação de restrição: %s", e.Msg) }
func (e *ConstraintViolationError) Category() string { return "CONSTRAINT_VIOLATION" }
func (e *ConstraintViolationError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *ConstraintViolationError) Unwrap() error    { return nil }

// NewConstraintViolationError cria um novo erro de violação de restrição.
func NewConstraintViolationError(msg string) AppError {
	return &ConstraintViolationError{Msg: msg}
}

// --- Erros de Entrada e Busca ---

// InvalidInputError representa falhas de validação de dados de entrada.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string    { return fmt.Sprintf("Entrada inválida: %s", e.Msg) }
func (e *InvalidInputError) Category() string { return "INVALID_INPUT" }
func (e *InvalidInputError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *InvalidInputError) Unwrap() error    { return nil }

// NewInvalidInputError cria um novo erro de entrada inválida.
func NewInvalidInputError(msg string) AppError {
	return &InvalidInputError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// UnauthorizedError representa credenciais ausentes ou inválidas.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autorização.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError representa um operador autenticado sem o papel exigido.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("Acesso negado: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden } // 403
func (e *ForbiddenError) Unwrap() error    { return nil }

// NewForbiddenError cria um novo erro de permissão.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// RateLimitError representa um cliente acima do limite de requisições.
type RateLimitError struct {
	Msg string
}

func (e *RateLimitError) Error() string    { return e.Msg }
func (e *RateLimitError) Category() string { return "RATE_LIMITED" }
func (e *RateLimitError) HTTPStatus() int  { return http.StatusTooManyRequests } // 429
func (e *RateLimitError) Unwrap() error    { return nil }

// NewRateLimitError cria um novo erro de rate limit.
func NewRateLimitError(msg string) AppError {
	return &RateLimitError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratado como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}

// CategoryOf retorna a categoria de um erro tipado, ou "" para erros comuns.
func CategoryOf(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Category()
	}
	return ""
}
