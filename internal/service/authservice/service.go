// Package authservice autentica o operador configurado e emite o JWT usado
// pelas rotas de escrita.
package authservice

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
	"goarmazem/internal/pkg/logger"
)

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(email string, role string) (string, error)
}

// Service autentica contra um único operador vindo da configuração.
type Service struct {
	operator domain.Operator
	tokenSvc TokenService
	logger   logger.Logger
}

// NewService cria o serviço. Um operador sem hash de senha recusa todo login.
func NewService(operator domain.Operator, tokenSvc TokenService, logger logger.Logger) *Service {
	if operator.Role == "" {
		operator.Role = domain.RoleOperator
	}
	return &Service{operator: operator, tokenSvc: tokenSvc, logger: logger}
}

// HashPassword gera o hash bcrypt usado em OPERATOR_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}
	return string(hash), nil
}

// Login confere email e senha e devolve um JWT.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Email e senha são obrigatórios.")
	}

	if s.operator.PasswordHash == "" {
		s.logger.Warn("Login recusado: nenhum operador configurado.", map[string]interface{}{"email": email})
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	// Email diferente e senha errada dão a mesma resposta.
	if !strings.EqualFold(email, s.operator.Email) {
		s.logger.Warn("Login recusado: email desconhecido.", map[string]interface{}{"email": email})
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login recusado: senha incorreta.", map[string]interface{}{"email": email})
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	tokenString, err := s.tokenSvc.GenerateToken(s.operator.Email, string(s.operator.Role))
	if err != nil {
		s.logger.Error("Falha ao gerar token de autenticação.", err)
		return domain.LoginResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Operador autenticado.", map[string]interface{}{"email": s.operator.Email})
	return domain.LoginResponse{Token: tokenString}, nil
}
