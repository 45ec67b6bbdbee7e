package warehouse_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goarmazem/internal/allocation"
	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
	"goarmazem/internal/warehouse"
)

var fixedNow = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

func newStore(t *testing.T, dims domain.Dimensions, opts ...warehouse.Option) *warehouse.Store {
	t.Helper()
	opts = append([]warehouse.Option{warehouse.WithClock(func() time.Time { return fixedNow })}, opts...)
	st, err := warehouse.NewStore(dims, opts...)
	require.NoError(t, err)
	return st
}

func dims(r, s, l, z int) domain.Dimensions {
	return domain.Dimensions{Rows: r, Shelves: s, Levels: l, Zones: z}
}

func loc(r, s, l, z int) domain.Location { return domain.NewLocation(r, s, l, z) }

func TestNewStore_InvalidDimensions(t *testing.T) {
	_, err := warehouse.NewStore(dims(0, 1, 1, 1))
	assert.IsType(t, &apperror.InvalidInputError{}, err)
}

// Exemplo completo numa grade (2,2,2,2).
func TestStore_WorkedExample(t *testing.T) {
	st := newStore(t, dims(2, 2, 2, 2))

	a, locsA, err := st.Place(domain.Item{ID: 1, Name: "A", Quantity: 5, Quality: domain.Normal()})
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 0, 0)}, locsA)
	assert.Equal(t, fixedNow, a.CreatedAt)

	_, locsB, err := st.Place(domain.Item{ID: 2, Name: "B", Quantity: 1, Quality: domain.Oversized(2)})
	require.NoError(t, err)
	require.Len(t, locsB, 2)
	assert.True(t, locsB[0].SameBay(locsB[1]))
	assert.Equal(t, 0, locsB[0].Zone)
	assert.Equal(t, 1, locsB[1].Zone)
	assert.NotContains(t, locsB, loc(0, 0, 0, 0))

	_, _, err = st.Place(domain.Item{ID: 3, Name: "C", Quantity: 1, Quality: domain.Oversized(3)})
	assert.IsType(t, &apperror.InvalidConstraintError{}, err)

	removed, vacated, err := st.Remove(locsB[1])
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	assert.Equal(t, locsB, vacated)
	for _, l := range locsB {
		_, occupied := st.ItemAt(l)
		assert.False(t, occupied)
	}
	_, stillThere := st.ItemAt(loc(0, 0, 0, 0))
	assert.True(t, stillThere)

	exp := fixedNow.AddDate(0, 0, 2)
	_, _, err = st.Place(domain.Item{ID: 4, Name: "Vidro", Quantity: 3, Quality: domain.Fragile(nil), ExpiryDate: &exp})
	require.NoError(t, err)
	expiring := st.FindExpiring(fixedNow)
	require.Len(t, expiring, 1)
	assert.Equal(t, domain.ExpiresInDays(2), expiring[0].Status)
}

func TestStore_PlaceValidatesInput(t *testing.T) {
	st := newStore(t, dims(1, 1, 1, 2))

	_, _, err := st.Place(domain.Item{ID: 1, Name: "  ", Quantity: 1, Quality: domain.Normal()})
	assert.IsType(t, &apperror.InvalidInputError{}, err)

	_, _, err = st.Place(domain.Item{ID: 1, Name: "x", Quantity: 0, Quality: domain.Normal()})
	assert.IsType(t, &apperror.InvalidInputError{}, err)

	assert.Empty(t, st.GroupedItems())
}

func TestStore_PlaceNoCapacity(t *testing.T) {
	st := newStore(t, dims(1, 1, 1, 1))

	_, _, err := st.Place(domain.Item{ID: 1, Name: "x", Quantity: 1, Quality: domain.Normal()})
	require.NoError(t, err)
	_, _, err = st.Place(domain.Item{ID: 2, Name: "y", Quantity: 1, Quality: domain.Normal()})
	assert.IsType(t, &apperror.NoCapacityError{}, err)
}

// brokenStrategy ignora as restrições para provar que o Store reconfere antes de gravar.
type brokenStrategy struct {
	locs []domain.Location
}

func (b brokenStrategy) Name() string { return "broken" }
func (b brokenStrategy) FindSpot(allocation.GridView, domain.Item) ([]domain.Location, error) {
	return b.locs, nil
}

func TestStore_PlaceRejectsViolatingStrategyWithoutWriting(t *testing.T) {
	st := newStore(t, dims(1, 1, 3, 3), warehouse.WithStrategy(brokenStrategy{
		locs: []domain.Location{loc(0, 0, 2, 0)},
	}))

	_, _, err := st.Place(domain.Item{ID: 1, Name: "taça", Quantity: 1, Quality: domain.Fragile(domain.IntPtr(1))})
	assert.IsType(t, &apperror.ConstraintViolationError{}, err)
	assert.Empty(t, st.GroupedItems())
	assert.Equal(t, 0, st.Usage(loc(0, 0, 2, 0)))

	st = newStore(t, dims(1, 1, 3, 3), warehouse.WithStrategy(brokenStrategy{
		locs: []domain.Location{loc(0, 0, 0, 0), loc(0, 0, 1, 1)},
	}))
	_, _, err = st.Place(domain.Item{ID: 2, Name: "sofá", Quantity: 1, Quality: domain.Oversized(2)})
	assert.IsType(t, &apperror.ConstraintViolationError{}, err)
	assert.Empty(t, st.GroupedItems())
	assert.Equal(t, 0, st.Usage(loc(0, 0, 0, 0)))
}

func TestStore_UsageNeverDecrements(t *testing.T) {
	st := newStore(t, dims(1, 1, 1, 2))

	_, locs, err := st.Place(domain.Item{ID: 1, Name: "x", Quantity: 1, Quality: domain.Normal()})
	require.NoError(t, err)
	assert.Equal(t, 1, st.Usage(locs[0]))

	_, _, err = st.Remove(locs[0])
	require.NoError(t, err)
	assert.Equal(t, 1, st.Usage(locs[0]))

	// Com (0,0,0,0) já usado uma vez, a próxima colocação vai para a célula menos gasta.
	_, next, err := st.Place(domain.Item{ID: 1, Name: "x", Quantity: 1, Quality: domain.Normal()})
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 0, 1)}, next)
}

func TestStore_Remove(t *testing.T) {
	st := newStore(t, dims(1, 1, 2, 3))

	_, _, err := st.Remove(loc(0, 0, 0, 0))
	assert.IsType(t, &apperror.NotFoundError{}, err)

	_, _, err = st.Remove(loc(0, 0, 5, 0))
	assert.IsType(t, &apperror.InvalidInputError{}, err)

	_, normal, err := st.Place(domain.Item{ID: 1, Name: "n", Quantity: 1, Quality: domain.Normal()})
	require.NoError(t, err)
	_, bigA, err := st.Place(domain.Item{ID: 2, Name: "big", Quantity: 1, Quality: domain.Oversized(2)})
	require.NoError(t, err)
	_, bigB, err := st.Place(domain.Item{ID: 2, Name: "big", Quantity: 1, Quality: domain.Oversized(2)})
	require.NoError(t, err)

	removed, vacated, err := st.Remove(bigA[0])
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	assert.Equal(t, bigA, vacated)

	// O outro registro com o mesmo ID, nome e instante continua na grade.
	for _, l := range append(normal, bigB...) {
		_, ok := st.ItemAt(l)
		assert.True(t, ok, "local %s deveria continuar ocupado", l)
	}

	removed, _, err = st.Remove(normal[0])
	require.NoError(t, err)
	assert.Len(t, removed, 1)
	assert.Equal(t, "n", removed[0].Name)
}

func TestStore_PropertiesUnderRandomishLoad(t *testing.T) {
	for _, strategy := range []allocation.Strategy{allocation.UsageBalanced{}, allocation.NewRoundRobin()} {
		t.Run(strategy.Name(), func(t *testing.T) {
			st := newStore(t, dims(2, 2, 3, 4), warehouse.WithStrategy(strategy))
			qualities := []domain.Quality{
				domain.Normal(),
				domain.Fragile(domain.IntPtr(1)),
				domain.Oversized(3),
				domain.Oversized(2),
				domain.Fragile(domain.IntPtr(0)),
			}

			for i := 0; i < 40; i++ {
				q := qualities[i%len(qualities)]
				placed, locs, err := st.Place(domain.Item{ID: i % 4, Name: "lote", Quantity: 1, Quality: q})
				if err != nil {
					assert.IsType(t, &apperror.NoCapacityError{}, err)
					continue
				}
				switch q.Kind {
				case domain.QualityFragile:
					require.Len(t, locs, 1)
					assert.LessOrEqual(t, locs[0].Level, *q.MaxLevel)
				case domain.QualityOversized:
					require.Len(t, locs, q.RequiredZones)
					for j := 1; j < len(locs); j++ {
						assert.True(t, locs[j].SameBay(locs[0]))
						assert.Equal(t, locs[j-1].Zone+1, locs[j].Zone)
					}
				}
				for _, l := range locs {
					got, ok := st.ItemAt(l)
					require.True(t, ok)
					assert.Equal(t, placed.InstanceID, got.InstanceID)
				}
				if i%7 == 6 {
					_, _, err := st.Remove(locs[0])
					require.NoError(t, err)
				}
			}

			seen := map[domain.Location]bool{}
			for _, rec := range st.GroupedItems() {
				for _, l := range rec.Locations {
					assert.False(t, seen[l], "local %s em mais de um registro", l)
					seen[l] = true
				}
			}
		})
	}
}

func TestStore_ConcurrentPlacementsNeverOverlap(t *testing.T) {
	st := newStore(t, dims(2, 2, 2, 4))

	var wg sync.WaitGroup
	results := make(chan []domain.Location, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q := domain.Normal()
			if i%3 == 0 {
				q = domain.Oversized(2)
			}
			_, locs, err := st.Place(domain.Item{ID: i, Name: "c", Quantity: 1, Quality: q})
			if err == nil {
				results <- locs
			}
		}(i)
	}
	wg.Wait()
	close(results)

	seen := map[domain.Location]bool{}
	for locs := range results {
		for _, l := range locs {
			assert.False(t, seen[l])
			seen[l] = true
		}
	}
	assert.LessOrEqual(t, len(seen), 32)
}
