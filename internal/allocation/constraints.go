package allocation

import (
	"fmt"

	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
)

// CheckQuality valida os parâmetros da qualidade contra as dimensões da grade.
func CheckQuality(q domain.Quality, dims domain.Dimensions) error {
	switch q.Kind {
	case domain.QualityNormal:
		return nil
	case domain.QualityFragile:
		if q.MaxLevel != nil && *q.MaxLevel < 0 {
			return apperror.NewInvalidConstraintError(fmt.Sprintf("nível máximo %d inválido para item frágil", *q.MaxLevel))
		}
		return nil
	case domain.QualityOversized:
		if q.RequiredZones <= 0 {
			return apperror.NewInvalidConstraintError("número de zonas contíguas inválido para item oversized")
		}
		if q.RequiredZones > dims.Zones {
			return apperror.NewInvalidConstraintError(fmt.Sprintf("item oversized requer %d zonas contíguas, mas cada nível tem %d", q.RequiredZones, dims.Zones))
		}
		return nil
	default:
		return apperror.NewInvalidConstraintError(fmt.Sprintf("qualidade desconhecida %q", q.Kind))
	}
}

// levelCeiling é o maior nível que a qualidade admite.
func levelCeiling(q domain.Quality, dims domain.Dimensions) int {
	ceiling := dims.Levels - 1
	if q.Kind == domain.QualityFragile && q.MaxLevel != nil && *q.MaxLevel < ceiling {
		ceiling = *q.MaxLevel
	}
	return ceiling
}

// footprint é o número exato de locais que um item da qualidade ocupa.
func footprint(q domain.Quality) int {
	if q.Kind == domain.QualityOversized {
		return q.RequiredZones
	}
	return 1
}

// freeRun devolve os `length` locais a partir de start na mesma (row, shelf, level)
// se todos estiverem livres, ou nil.
func freeRun(view GridView, start domain.Location, length int) []domain.Location {
	if start.Zone+length > view.Dimensions().Zones {
		return nil
	}
	run := make([]domain.Location, 0, length)
	for z := start.Zone; z < start.Zone+length; z++ {
		loc := domain.NewLocation(start.Row, start.Shelf, start.Level, z)
		if view.IsOccupied(loc) {
			return nil
		}
		run = append(run, loc)
	}
	return run
}

// Verify reconfere um conjunto de locais devolvido por uma estratégia antes do commit.
// Qualquer falha vira ConstraintViolationError.
func Verify(view GridView, item domain.Item, locs []domain.Location) error {
	dims := view.Dimensions()
	if err := CheckQuality(item.Quality, dims); err != nil {
		return err
	}

	if want := footprint(item.Quality); len(locs) != want {
		return apperror.NewConstraintViolationError(fmt.Sprintf("item %s requer %d locais, mas foram alocados %d", item.Quality.Kind, want, len(locs)))
	}

	ceiling := levelCeiling(item.Quality, dims)
	seen := make(map[domain.Location]struct{}, len(locs))
	for _, loc := range locs {
		if !dims.Contains(loc) {
			return apperror.NewConstraintViolationError(fmt.Sprintf("local %s fora das dimensões do armazém", loc))
		}
		if _, dup := seen[loc]; dup {
			return apperror.NewConstraintViolationError(fmt.Sprintf("local %s alocado mais de uma vez", loc))
		}
		seen[loc] = struct{}{}
		if view.IsOccupied(loc) {
			return apperror.NewConstraintViolationError(fmt.Sprintf("local %s já está ocupado", loc))
		}
		if loc.Level > ceiling {
			return apperror.NewConstraintViolationError(fmt.Sprintf("não é possível armazenar item frágil acima do nível máximo %d", ceiling))
		}
	}

	if item.Quality.Kind == domain.QualityOversized {
		sorted := append([]domain.Location(nil), locs...)
		domain.SortLocations(sorted)
		for i := 1; i < len(sorted); i++ {
			if !sorted[i].SameBay(sorted[0]) || sorted[i].Zone != sorted[i-1].Zone+1 {
				return apperror.NewConstraintViolationError("zonas do item oversized não são contíguas")
			}
		}
	}
	return nil
}
