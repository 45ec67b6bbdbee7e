// Package journalrepo guarda o diário de movimentos da grade. O diário é só
// auditoria: a grade não é reconstruída a partir dele.
package journalrepo

import (
	"context"
	"sync"

	"goarmazem/internal/domain"
)

// MemoryJournal é o diário usado quando DATABASE_URL não está definido.
// Mantém no máximo capacity movimentos, descartando os mais antigos.
type MemoryJournal struct {
	mu        sync.Mutex
	movements []domain.Movement
	capacity  int
}

// DefaultMemoryCapacity limita o diário em memória.
const DefaultMemoryCapacity = 10000

// NewMemoryJournal cria um diário em memória; capacity <= 0 usa DefaultMemoryCapacity.
func NewMemoryJournal(capacity int) *MemoryJournal {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryJournal{capacity: capacity}
}

func (j *MemoryJournal) Record(ctx context.Context, m domain.Movement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	j.movements = append(j.movements, m)
	if over := len(j.movements) - j.capacity; over > 0 {
		j.movements = append([]domain.Movement(nil), j.movements[over:]...)
	}
	return nil
}

// List devolve os movimentos mais recentes primeiro, até limit.
func (j *MemoryJournal) List(ctx context.Context, limit int) ([]domain.Movement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	n := len(j.movements)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Movement, 0, n)
	for i := len(j.movements) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, j.movements[i])
	}
	return out, nil
}
