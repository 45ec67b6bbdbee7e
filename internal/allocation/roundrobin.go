package allocation

import (
	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
)

// RoundRobin varre a grade a partir do sucessor da última alocação, com no
// máximo uma volta completa. Não é seguro para uso concorrente: o chamador
// deve serializar as chamadas (o Store faz isso sob o lock de escrita).
type RoundRobin struct {
	last *domain.Location
}

// NewRoundRobin cria a estratégia com o cursor ainda não posicionado; a
// primeira varredura começa em (0,0,0,0).
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

func (r *RoundRobin) Name() string { return StrategyRoundRobin }

// Cursor devolve o último local alocado, se houver.
func (r *RoundRobin) Cursor() (domain.Location, bool) {
	if r.last == nil {
		return domain.Location{}, false
	}
	return *r.last, true
}

func (r *RoundRobin) FindSpot(view GridView, item domain.Item) ([]domain.Location, error) {
	dims := view.Dimensions()
	if err := CheckQuality(item.Quality, dims); err != nil {
		return nil, err
	}

	current := domain.Location{}
	if r.last != nil && dims.Contains(*r.last) {
		current = dims.Next(*r.last)
	}
	ceiling := levelCeiling(item.Quality, dims)

	for attempt := 0; attempt < dims.Capacity(); attempt++ {
		loc := current
		current = dims.Next(current)

		if view.IsOccupied(loc) {
			continue
		}

		var claimed []domain.Location
		switch item.Quality.Kind {
		case domain.QualityNormal:
			claimed = []domain.Location{loc}
		case domain.QualityFragile:
			if loc.Level > ceiling {
				continue
			}
			claimed = []domain.Location{loc}
		case domain.QualityOversized:
			// Não atravessa a fronteira de (row, shelf, level); se falhar, segue da próxima zona.
			claimed = freeRun(view, loc, item.Quality.RequiredZones)
			if claimed == nil {
				continue
			}
		default:
			return nil, apperror.NewInvalidConstraintError("qualidade desconhecida")
		}

		last := claimed[len(claimed)-1]
		r.last = &last
		return claimed, nil
	}

	return nil, apperror.NewNoCapacityError("nenhuma localização disponível encontrada")
}
