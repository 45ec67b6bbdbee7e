package domain

import "fmt"

// Record é um item lógico com todos os locais que ocupa, em ordem lexicográfica.
type Record struct {
	Item      Item       `json:"item"`
	Locations []Location `json:"locations"`
}

// ExpiryWindowDays é a janela, em dias, em que um item ainda válido é reportado.
const ExpiryWindowDays = 3

// ExpiryState distingue itens vencidos dos que vencem em breve.
type ExpiryState string

const (
	ExpiryExpired  ExpiryState = "expired"
	ExpiryExpiring ExpiryState = "expiring"
)

// ExpiryStatus é o resultado da varredura de validade para um registro.
// DaysLeft só é significativo quando State é ExpiryExpiring.
type ExpiryStatus struct {
	State    ExpiryState `json:"state" example:"expiring"`
	DaysLeft int         `json:"days_left" example:"2"`
}

// Expired monta o status de item vencido.
func Expired() ExpiryStatus {
	return ExpiryStatus{State: ExpiryExpired}
}

// ExpiresInDays monta o status de item que vence em n dias.
func ExpiresInDays(n int) ExpiryStatus {
	return ExpiryStatus{State: ExpiryExpiring, DaysLeft: n}
}

func (s ExpiryStatus) String() string {
	if s.State == ExpiryExpired {
		return "Expirado"
	}
	return fmt.Sprintf("Expira em %d dias", s.DaysLeft)
}

// ExpiringRecord associa um registro ao seu status de validade.
type ExpiringRecord struct {
	Record
	Status ExpiryStatus `json:"status"`
}

// SearchResult é a resposta das buscas por ID ou nome.
type SearchResult struct {
	Found         bool `json:"found"`
	TotalQuantity int  `json:"total_quantity"`
}
