// Package allocation decide em quais locais da grade um item pode ser colocado.
//
// Duas estratégias atendem às mesmas restrições por qualidade:
//   - UsageBalanced (padrão): escolhe o candidato livre com menor soma de uso
//     histórico, desempatando pela ordem lexicográfica do primeiro local.
//   - RoundRobin: varre a grade a partir de um cursor e pega o primeiro
//     candidato livre, espalhando as colocações em ordem de endereço.
//
// Nenhuma estratégia altera o estado da grade; o RoundRobin só move o próprio cursor.
package allocation

import (
	"fmt"

	"goarmazem/internal/domain"
)

// Nomes aceitos em ALLOCATION_STRATEGY.
const (
	StrategyUsage      = "usage"
	StrategyRoundRobin = "roundrobin"
)

// GridView é a visão somente leitura da grade de que uma estratégia precisa.
type GridView interface {
	Dimensions() domain.Dimensions
	IsOccupied(loc domain.Location) bool
	Usage(loc domain.Location) int
}

// Strategy calcula o conjunto ordenado de locais a preencher para um item.
type Strategy interface {
	Name() string
	FindSpot(view GridView, item domain.Item) ([]domain.Location, error)
}

// New devolve a estratégia correspondente ao nome configurado.
func New(name string) (Strategy, error) {
	switch name {
	case "", StrategyUsage:
		return UsageBalanced{}, nil
	case StrategyRoundRobin:
		return NewRoundRobin(), nil
	default:
		return nil, fmt.Errorf("estratégia de alocação desconhecida: %q", name)
	}
}
