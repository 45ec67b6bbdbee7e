package journalrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"goarmazem/internal/domain"
	"goarmazem/internal/errors"
	"goarmazem/internal/pkg/logger"
)

// PostgresJournal grava o diário de movimentos na tabela movements.
type PostgresJournal struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewPostgresJournal cria e retorna uma nova instância do journal em PostgreSQL.
func NewPostgresJournal(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *PostgresJournal {
	return &PostgresJournal{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Record insere um movimento.
func (r *PostgresJournal) Record(ctx context.Context, m domain.Movement) error {
	r.logger.Debug("Iniciando Record no journal.", map[string]interface{}{"kind": m.Kind, "item_id": m.ItemID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	locs, err := json.Marshal(m.Locations)
	if err != nil {
		return errors.NewInternalError("Falha ao serializar locais do movimento", err)
	}

	query := `
        INSERT INTO movements (id, kind, item_id, name, quantity, quality, instance_id, locations, occurred_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.DB.ExecContext(ctxTimeout, query,
		m.ID, string(m.Kind), m.ItemID, m.Name, m.Quantity, string(m.Quality), m.InstanceID, locs, m.OccurredAt,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir movimento no DB.", err)
		return errors.NewDBError("Falha ao registrar movimento", err)
	}

	r.logger.Debug("Movimento registrado.", map[string]interface{}{"id": m.ID.String()})
	return nil
}

// List devolve os movimentos mais recentes primeiro, até limit.
func (r *PostgresJournal) List(ctx context.Context, limit int) ([]domain.Movement, error) {
	r.logger.Debug("Iniciando List no journal.", map[string]interface{}{"limit": limit})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, kind, item_id, name, quantity, quality, instance_id, locations, occurred_at
        FROM movements
        ORDER BY occurred_at DESC
        LIMIT $1`

	rows, err := r.DB.QueryContext(ctxTimeout, query, limit)
	if err != nil {
		r.logger.Error("Falha ao executar List query.", err)
		return nil, errors.NewDBError("Falha ao buscar movimentos", err)
	}
	defer rows.Close()

	movements := []domain.Movement{}
	for rows.Next() {
		var (
			m       domain.Movement
			kind    string
			quality string
			locs    []byte
		)
		err := rows.Scan(&m.ID, &kind, &m.ItemID, &m.Name, &m.Quantity, &quality, &m.InstanceID, &locs, &m.OccurredAt)
		if err != nil {
			r.logger.Error("Falha ao mapear movimento na iteração de List.", err)
			return nil, errors.NewDBError("Falha ao mapear movimentos do DB", err)
		}
		if err := json.Unmarshal(locs, &m.Locations); err != nil {
			return nil, errors.NewDBError("Locais do movimento corrompidos", err)
		}
		m.Kind = domain.MovementKind(kind)
		m.Quality = domain.QualityKind(quality)
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de movimentos.", err)
		return nil, errors.NewDBError("Erro após iteração de movimentos", err)
	}

	return movements, nil
}
