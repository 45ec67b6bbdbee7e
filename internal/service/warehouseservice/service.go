package warehouseservice

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
	"goarmazem/internal/pkg/input"
	"goarmazem/internal/pkg/logger"
	"goarmazem/internal/pkg/metrics"
	"goarmazem/internal/warehouse"
)

// MovementJournal define o contrato que o Serviço espera do diário de movimentos.
type MovementJournal interface {
	Record(ctx context.Context, m domain.Movement) error
	List(ctx context.Context, limit int) ([]domain.Movement, error)
}

const (
	DefaultMovementsLimit = 50
	MaxMovementsLimit     = 500
)

// PlaceRequest é o pedido de colocação. ID nil reaproveita o ID já associado ao
// nome ou atribui o próximo livre. ExpiryDate vem no formato DD-MM-YYYY.
type PlaceRequest struct {
	ID         *int           `json:"id,omitempty" example:"1"`
	Name       string         `json:"name" example:"Taças de cristal"`
	Quantity   int            `json:"quantity" example:"12"`
	Quality    domain.Quality `json:"quality"`
	ExpiryDate string         `json:"expiry_date,omitempty" example:"25-12-2025"`
}

// PlaceResult descreve o registro gravado.
type PlaceResult struct {
	Item      domain.Item       `json:"item"`
	Locations []domain.Location `json:"locations"`
}

// RemoveResult descreve o registro retirado da grade.
type RemoveResult struct {
	Item      domain.Item       `json:"item"`
	Locations []domain.Location `json:"locations"`
}

// Service coordena o Store, o registro nome -> ID, o diário e as métricas.
type Service struct {
	store   *warehouse.Store
	journal MovementJournal
	logger  logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	// mu serializa a resolução de ID com a colocação para que dois nomes novos
	// concorrentes não recebam o mesmo ID.
	mu     sync.Mutex
	names  map[string]int
	nextID int
}

// Option ajusta o Service na construção.
type Option func(*Service)

// WithMetrics liga a publicação de métricas.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock troca o relógio usado como data de referência padrão e nos movimentos.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService cria e retorna uma nova instância do Serviço de Armazém.
func NewService(store *warehouse.Store, journal MovementJournal, logger logger.Logger, opts ...Option) *Service {
	s := &Service{
		store:   store,
		journal: journal,
		logger:  logger,
		now:     time.Now,
		names:   make(map[string]int),
		nextID:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics != nil {
		s.metrics.Capacity.Set(float64(store.Dimensions().Capacity()))
	}
	return s
}

// PlaceItem valida o pedido, resolve o ID e grava o item na grade.
func (s *Service) PlaceItem(ctx context.Context, req PlaceRequest) (PlaceResult, error) {
	s.logger.Debug("Iniciando colocação de item no serviço.", map[string]interface{}{"name": req.Name, "quality": req.Quality.Kind})

	item, err := s.buildItem(req)
	if err != nil {
		s.logger.Warn("Pedido de colocação inválido.", map[string]interface{}{"name": req.Name, "error": err.Error()})
		s.countPlaceError(err)
		return PlaceResult{}, err
	}

	s.mu.Lock()
	item.ID = s.resolveID(item.Name, req.ID)
	placed, locs, err := s.store.Place(item)
	if err == nil {
		s.register(placed.Name, placed.ID)
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("Falha ao colocar item.", map[string]interface{}{"name": item.Name, "category": apperror.CategoryOf(err), "error": err.Error()})
		s.countPlaceError(err)
		return PlaceResult{}, err
	}

	s.record(ctx, domain.NewMovement(domain.MovementPlace, placed, locs, s.now()))
	if s.metrics != nil {
		s.metrics.Placements.WithLabelValues(string(placed.Quality.Kind)).Inc()
		s.metrics.OccupiedCell.Add(float64(len(locs)))
	}

	s.logger.Info("Item armazenado com sucesso.", map[string]interface{}{
		"id": placed.ID, "name": placed.Name, "locations": locationStrings(locs),
	})
	return PlaceResult{Item: placed, Locations: locs}, nil
}

// RemoveAt retira o registro que ocupa loc (todas as células, se Oversized).
func (s *Service) RemoveAt(ctx context.Context, loc domain.Location) (RemoveResult, error) {
	s.logger.Debug("Iniciando remoção no serviço.", map[string]interface{}{"location": loc.String()})

	items, locs, err := s.store.Remove(loc)
	if err != nil {
		s.logger.Warn("Falha ao remover item.", map[string]interface{}{"location": loc.String(), "error": err.Error()})
		return RemoveResult{}, err
	}

	removed := items[0]
	s.record(ctx, domain.NewMovement(domain.MovementRemove, removed, locs, s.now()))
	if s.metrics != nil {
		s.metrics.Removals.Inc()
		s.metrics.OccupiedCell.Sub(float64(len(locs)))
	}

	s.logger.Info("Item removido com sucesso.", map[string]interface{}{
		"id": removed.ID, "name": removed.Name, "locations": locationStrings(locs),
	})
	return RemoveResult{Item: removed, Locations: locs}, nil
}

// ListItems devolve os registros ordenados por nome; empates seguem o primeiro local.
func (s *Service) ListItems() []domain.Record {
	records := s.store.GroupedItems()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Item.Name < records[j].Item.Name
	})
	return records
}

// KnownNames devolve, em ordem alfabética, os nomes já vistos com o ID associado.
func (s *Service) KnownNames() []NamedID {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]NamedID, 0, len(s.names))
	for name, id := range s.names {
		out = append(out, NamedID{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// NamedID é uma entrada do registro nome -> ID.
type NamedID struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Taças de cristal"`
}

// SearchByID soma as quantidades dos registros com o ID.
func (s *Service) SearchByID(id int) domain.SearchResult {
	return s.store.SearchByID(id)
}

// SearchByName soma as quantidades dos registros com o nome exato.
func (s *Service) SearchByName(name string) (domain.SearchResult, error) {
	if strings.TrimSpace(name) == "" {
		return domain.SearchResult{}, apperror.NewInvalidInputError("nome não pode ser vazio")
	}
	return s.store.SearchByName(name), nil
}

// LocationsByID devolve os registros do ID com seus locais; NotFound se não houver nenhum.
func (s *Service) LocationsByID(id int) ([]domain.Record, error) {
	records := s.store.SearchLocationsByID(id)
	if len(records) == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("item com ID %d não está na grade", id))
	}
	return records, nil
}

// FindExpiring varre a grade na data informada (DD-MM-YYYY) ou hoje, se vazia.
func (s *Service) FindExpiring(date string) ([]domain.ExpiringRecord, error) {
	ref := s.now()
	if strings.TrimSpace(date) != "" {
		d, err := input.ParseDate(date)
		if err != nil {
			return nil, err
		}
		ref = d
	}

	found := s.store.FindExpiring(ref)
	if found == nil {
		found = []domain.ExpiringRecord{}
	}

	if s.metrics != nil {
		var expired, expiring int
		for _, r := range found {
			if r.Status.State == domain.ExpiryExpired {
				expired++
			} else {
				expiring++
			}
		}
		s.metrics.Expiring.WithLabelValues(string(domain.ExpiryExpired)).Set(float64(expired))
		s.metrics.Expiring.WithLabelValues(string(domain.ExpiryExpiring)).Set(float64(expiring))
	}
	return found, nil
}

// Dimensions devolve os limites da grade.
func (s *Service) Dimensions() domain.Dimensions {
	return s.store.Dimensions()
}

// Grid devolve o instantâneo da grade.
func (s *Service) Grid() domain.GridSnapshot {
	return s.store.Snapshot()
}

// Movements lista o diário, mais recentes primeiro. limit <= 0 usa o padrão.
func (s *Service) Movements(ctx context.Context, limit int) ([]domain.Movement, error) {
	switch {
	case limit <= 0:
		limit = DefaultMovementsLimit
	case limit > MaxMovementsLimit:
		limit = MaxMovementsLimit
	}

	movements, err := s.journal.List(ctx, limit)
	if err != nil {
		s.logger.Error("Falha ao listar movimentos.", err)
		return nil, apperror.NewInternalError("Falha interna ao listar movimentos.", err)
	}
	return movements, nil
}

func (s *Service) buildItem(req PlaceRequest) (domain.Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Item{}, apperror.NewInvalidInputError("nome do item não pode ser vazio")
	}
	if req.Quantity <= 0 {
		return domain.Item{}, apperror.NewInvalidInputError("quantidade deve ser maior que zero")
	}
	if req.ID != nil && *req.ID < 0 {
		return domain.Item{}, apperror.NewInvalidInputError("ID do item não pode ser negativo")
	}

	item := domain.Item{Name: name, Quantity: req.Quantity, Quality: req.Quality}
	if strings.TrimSpace(req.ExpiryDate) != "" {
		d, err := input.ParseDate(req.ExpiryDate)
		if err != nil {
			return domain.Item{}, err
		}
		item.ExpiryDate = &d
	}
	return item, nil
}

// resolveID deve ser chamado com s.mu tomado.
func (s *Service) resolveID(name string, explicit *int) int {
	if explicit != nil {
		return *explicit
	}
	if id, ok := s.names[name]; ok {
		return id
	}
	return s.nextID
}

// register deve ser chamado com s.mu tomado.
func (s *Service) register(name string, id int) {
	if _, ok := s.names[name]; !ok {
		s.names[name] = id
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

// record grava no diário fora do lock do Store. Falhas não desfazem a operação.
func (s *Service) record(ctx context.Context, m domain.Movement) {
	if err := s.journal.Record(ctx, m); err != nil {
		s.logger.Warn("Falha ao registrar movimento no diário.", map[string]interface{}{
			"kind": m.Kind, "item_id": m.ItemID, "error": err.Error(),
		})
	}
}

func (s *Service) countPlaceError(err error) {
	if s.metrics == nil {
		return
	}
	category := apperror.CategoryOf(err)
	if category == "" {
		category = "UNKNOWN"
	}
	s.metrics.PlaceErrors.WithLabelValues(category).Inc()
}

func locationStrings(locs []domain.Location) []string {
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.String()
	}
	return out
}
