package allocation

import (
	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
)

// UsageBalanced escolhe o candidato livre de menor uso acumulado. Espalha o
// desgaste pela grade em vez de encher sempre os endereços mais baixos.
type UsageBalanced struct{}

func (UsageBalanced) Name() string { return StrategyUsage }

// FindSpot percorre os candidatos em ordem lexicográfica e só troca o melhor
// quando a pontuação é estritamente menor, o que desempata pelo primeiro local.
func (UsageBalanced) FindSpot(view GridView, item domain.Item) ([]domain.Location, error) {
	dims := view.Dimensions()
	if err := CheckQuality(item.Quality, dims); err != nil {
		return nil, err
	}

	switch item.Quality.Kind {
	case domain.QualityNormal, domain.QualityFragile:
		return bestCell(view, levelCeiling(item.Quality, dims), item.Quality.Kind)
	case domain.QualityOversized:
		return bestRun(view, item.Quality.RequiredZones)
	default:
		return nil, apperror.NewInvalidConstraintError("qualidade desconhecida")
	}
}

func bestCell(view GridView, ceiling int, kind domain.QualityKind) ([]domain.Location, error) {
	dims := view.Dimensions()
	var (
		best      domain.Location
		bestScore int
		found     bool
	)
	for row := 0; row < dims.Rows; row++ {
		for shelf := 0; shelf < dims.Shelves; shelf++ {
			for level := 0; level <= ceiling; level++ {
				for zone := 0; zone < dims.Zones; zone++ {
					loc := domain.NewLocation(row, shelf, level, zone)
					if view.IsOccupied(loc) {
						continue
					}
					if score := view.Usage(loc); !found || score < bestScore {
						best, bestScore, found = loc, score, true
					}
				}
			}
		}
	}

	if !found {
		if kind == domain.QualityFragile {
			return nil, apperror.NewNoCapacityError("nenhuma localização disponível encontrada para item frágil")
		}
		return nil, apperror.NewNoCapacityError("nenhuma localização disponível encontrada")
	}
	return []domain.Location{best}, nil
}

func bestRun(view GridView, length int) ([]domain.Location, error) {
	dims := view.Dimensions()
	var (
		best      []domain.Location
		bestScore int
	)
	for row := 0; row < dims.Rows; row++ {
		for shelf := 0; shelf < dims.Shelves; shelf++ {
			for level := 0; level < dims.Levels; level++ {
				for start := 0; start+length <= dims.Zones; start++ {
					run := freeRun(view, domain.NewLocation(row, shelf, level, start), length)
					if run == nil {
						continue
					}
					score := 0
					for _, loc := range run {
						score += view.Usage(loc)
					}
					if best == nil || score < bestScore {
						best, bestScore = run, score
					}
				}
			}
		}
	}

	if best == nil {
		return nil, apperror.NewNoCapacityError("não há zonas contíguas suficientes para o item oversized")
	}
	return best, nil
}
