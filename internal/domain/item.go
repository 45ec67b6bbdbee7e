package domain

import (
	"time"

	"github.com/google/uuid"
)

// QualityKind é o discriminador da união fechada de qualidades de item.
type QualityKind string

// Variantes conhecidas. Qualquer outro valor é rejeitado como restrição inválida.
const (
	QualityNormal    QualityKind = "normal"
	QualityFragile   QualityKind = "fragile"
	QualityOversized QualityKind = "oversized"
)

// Quality carrega a variante e os parâmetros dela. MaxLevel só tem sentido para
// Fragile; RequiredZones só para Oversized.
type Quality struct {
	Kind          QualityKind `json:"kind" example:"fragile"`
	MaxLevel      *int        `json:"max_level,omitempty" example:"2"`
	RequiredZones int         `json:"required_zones,omitempty" example:"0"`
}

// Normal cria a qualidade sem restrições.
func Normal() Quality {
	return Quality{Kind: QualityNormal}
}

// Fragile cria a qualidade frágil; maxLevel nil significa sem limite de nível.
func Fragile(maxLevel *int) Quality {
	return Quality{Kind: QualityFragile, MaxLevel: maxLevel}
}

// Oversized cria a qualidade que exige zonas contíguas.
func Oversized(requiredZones int) Quality {
	return Quality{Kind: QualityOversized, RequiredZones: requiredZones}
}

// Item é a entidade colocada na grade. Um item Oversized ocupa várias células,
// todas guardando cópias iguais do mesmo Item.
type Item struct {
	ID         int        `json:"id" example:"1"`
	Name       string     `json:"name" example:"Taças de cristal"`
	Quantity   int        `json:"quantity" example:"12"`
	Quality    Quality    `json:"quality"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	InstanceID uuid.UUID  `json:"instance_id"`
}

// GroupKey identifica um registro lógico na grade.
type GroupKey struct {
	ID         int
	Name       string
	CreatedAt  int64
	InstanceID uuid.UUID
}

// Key devolve a chave de agrupamento do item.
func (i Item) Key() GroupKey {
	return GroupKey{ID: i.ID, Name: i.Name, CreatedAt: i.CreatedAt.UnixNano(), InstanceID: i.InstanceID}
}

// IntPtr é um atalho para montar parâmetros opcionais como MaxLevel.
func IntPtr(v int) *int {
	return &v
}
