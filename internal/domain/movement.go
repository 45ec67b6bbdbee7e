package domain

import (
	"time"

	"github.com/google/uuid"
)

// MovementKind classifica uma entrada do diário de movimentos.
type MovementKind string

const (
	MovementPlace  MovementKind = "PLACE"
	MovementRemove MovementKind = "REMOVE"
)

// Movement é uma entrada do diário: o que entrou ou saiu da grade e onde.
type Movement struct {
	ID         uuid.UUID    `json:"id"`
	Kind       MovementKind `json:"kind" example:"PLACE"`
	ItemID     int          `json:"item_id" example:"1"`
	Name       string       `json:"name" example:"Taças de cristal"`
	Quantity   int          `json:"quantity" example:"12"`
	Quality    QualityKind  `json:"quality" example:"fragile"`
	InstanceID uuid.UUID    `json:"instance_id"`
	Locations  []Location   `json:"locations"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// NewMovement monta um movimento a partir do registro afetado.
func NewMovement(kind MovementKind, item Item, locs []Location, at time.Time) Movement {
	return Movement{
		ID:         uuid.New(),
		Kind:       kind,
		ItemID:     item.ID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		Quality:    item.Quality.Kind,
		InstanceID: item.InstanceID,
		Locations:  locs,
		OccurredAt: at,
	}
}
