package domain

// Operator é a pessoa autorizada a mover itens na grade.
type Operator struct {
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Oculta o hash da senha no JSON de resposta
	Role         OperatorRole `json:"role"`
}

// OperatorRole é um tipo string para representar o papel do operador.
type OperatorRole string

const (
	RoleOperator OperatorRole = "operator"
	RoleViewer   OperatorRole = "viewer"
)

// LoginRequest representa o payload de entrada para o login.
type LoginRequest struct {
	Email    string `json:"email" example:"operador@armazem.local"`
	Password string `json:"password" example:"segredo"`
}

// LoginResponse devolve o token emitido.
type LoginResponse struct {
	Token string `json:"token"`
}
