// Package warehouse guarda o estado da grade e aplica colocações e remoções.
//
// O Store é o único dono do mapa local -> item e dos contadores de uso. Colocações
// e remoções tomam o lock de escrita durante toda a janela "ler candidatos, depois
// gravar"; consultas e a varredura de validade tomam o lock de leitura.
package warehouse

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"goarmazem/internal/allocation"
	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
)

// Store é o estado em memória da grade.
type Store struct {
	mu       sync.RWMutex
	dims     domain.Dimensions
	items    map[domain.Location]domain.Item
	usage    map[domain.Location]int
	strategy allocation.Strategy
	now      func() time.Time
}

// Option ajusta um Store na construção.
type Option func(*Store)

// WithStrategy troca a estratégia de alocação (padrão: UsageBalanced).
func WithStrategy(s allocation.Strategy) Option {
	return func(st *Store) { st.strategy = s }
}

// WithClock troca o relógio usado para CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(st *Store) { st.now = now }
}

// NewStore cria uma grade vazia com limites fixos.
func NewStore(dims domain.Dimensions, opts ...Option) (*Store, error) {
	if err := dims.Validate(); err != nil {
		return nil, apperror.NewInvalidInputError(err.Error())
	}
	st := &Store{
		dims:     dims,
		items:    make(map[domain.Location]domain.Item),
		usage:    make(map[domain.Location]int),
		strategy: allocation.UsageBalanced{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(st)
	}
	return st, nil
}

// Dimensions devolve os limites da grade.
func (s *Store) Dimensions() domain.Dimensions {
	return s.dims
}

// StrategyName devolve o nome da estratégia em uso.
func (s *Store) StrategyName() string {
	return s.strategy.Name()
}

// Place aloca e grava o item em todos os locais devolvidos pela estratégia, ou em nenhum.
// Devolve o item como gravado (com CreatedAt e InstanceID) e os locais em ordem.
func (s *Store) Place(item domain.Item) (domain.Item, []domain.Location, error) {
	if err := validateItem(item); err != nil {
		return domain.Item{}, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view := lockedView{s}
	locs, err := s.strategy.FindSpot(view, item)
	if err != nil {
		return domain.Item{}, nil, err
	}
	if err := allocation.Verify(view, item, locs); err != nil {
		return domain.Item{}, nil, err
	}

	if item.CreatedAt.IsZero() {
		item.CreatedAt = s.now()
	}
	item.InstanceID = uuid.New()

	for _, loc := range locs {
		s.items[loc] = item
		s.usage[loc]++
	}

	placed := append([]domain.Location(nil), locs...)
	domain.SortLocations(placed)
	return item, placed, nil
}

// Remove esvazia o local. Um item Oversized sai de todas as células do seu
// registro lógico. Os contadores de uso não são decrementados.
func (s *Store) Remove(loc domain.Location) ([]domain.Item, []domain.Location, error) {
	if !s.dims.Contains(loc) {
		return nil, nil, apperror.NewInvalidInputError(fmt.Sprintf("localização %s excede as dimensões do armazém", loc))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[loc]
	if !ok {
		return nil, nil, apperror.NewNotFoundError(fmt.Sprintf("nenhum item encontrado na localização %s", loc))
	}

	targets := []domain.Location{loc}
	if item.Quality.Kind == domain.QualityOversized {
		key := item.Key()
		targets = targets[:0]
		for l, it := range s.items {
			if it.Key() == key {
				targets = append(targets, l)
			}
		}
		domain.SortLocations(targets)
	}

	removed := make([]domain.Item, 0, len(targets))
	for _, l := range targets {
		removed = append(removed, s.items[l])
		delete(s.items, l)
	}
	return removed, targets, nil
}

// Usage devolve o contador histórico de ocupação do local.
func (s *Store) Usage(loc domain.Location) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usage[loc]
}

// ItemAt devolve o item que ocupa o local, se houver.
func (s *Store) ItemAt(loc domain.Location) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[loc]
	return it, ok
}

func validateItem(item domain.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return apperror.NewInvalidInputError("nome não pode estar vazio")
	}
	if item.Quantity <= 0 {
		return apperror.NewInvalidInputError("quantidade deve ser positiva")
	}
	if item.ID < 0 {
		return apperror.NewInvalidInputError("ID não pode ser negativo")
	}
	return nil
}

// lockedView expõe a grade às estratégias enquanto o lock já está tomado.
type lockedView struct {
	s *Store
}

func (v lockedView) Dimensions() domain.Dimensions { return v.s.dims }

func (v lockedView) IsOccupied(loc domain.Location) bool {
	_, ok := v.s.items[loc]
	return ok
}

func (v lockedView) Usage(loc domain.Location) int { return v.s.usage[loc] }
