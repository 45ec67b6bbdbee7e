package allocation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goarmazem/internal/allocation"
	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
)

// fakeGrid é uma GridView mínima para exercitar as estratégias isoladamente.
type fakeGrid struct {
	dims     domain.Dimensions
	occupied map[domain.Location]bool
	usage    map[domain.Location]int
}

func newFakeGrid(rows, shelves, levels, zones int) *fakeGrid {
	return &fakeGrid{
		dims:     domain.Dimensions{Rows: rows, Shelves: shelves, Levels: levels, Zones: zones},
		occupied: map[domain.Location]bool{},
		usage:    map[domain.Location]int{},
	}
}

func (g *fakeGrid) Dimensions() domain.Dimensions         { return g.dims }
func (g *fakeGrid) IsOccupied(loc domain.Location) bool { return g.occupied[loc] }
func (g *fakeGrid) Usage(loc domain.Location) int       { return g.usage[loc] }

func (g *fakeGrid) fill(locs ...domain.Location) {
	for _, l := range locs {
		g.occupied[l] = true
	}
}

func loc(r, s, l, z int) domain.Location { return domain.NewLocation(r, s, l, z) }

func item(q domain.Quality) domain.Item {
	return domain.Item{ID: 1, Name: "caixa", Quantity: 1, Quality: q}
}

func TestNew(t *testing.T) {
	s, err := allocation.New("")
	require.NoError(t, err)
	assert.Equal(t, allocation.StrategyUsage, s.Name())

	s, err = allocation.New(allocation.StrategyRoundRobin)
	require.NoError(t, err)
	assert.Equal(t, allocation.StrategyRoundRobin, s.Name())

	_, err = allocation.New("nearest")
	assert.Error(t, err)
}

// --- UsageBalanced ---

func TestUsageBalanced_NormalPicksLowestUsageThenLexicographic(t *testing.T) {
	g := newFakeGrid(2, 2, 2, 2)

	locs, err := allocation.UsageBalanced{}.FindSpot(g, item(domain.Normal()))
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 0, 0)}, locs)

	g.usage[loc(0, 0, 0, 0)] = 2
	g.usage[loc(0, 0, 0, 1)] = 1
	locs, err = allocation.UsageBalanced{}.FindSpot(g, item(domain.Normal()))
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 1, 0)}, locs)
}

func TestUsageBalanced_SkipsOccupied(t *testing.T) {
	g := newFakeGrid(1, 1, 1, 3)
	g.fill(loc(0, 0, 0, 0), loc(0, 0, 0, 1))

	locs, err := allocation.UsageBalanced{}.FindSpot(g, item(domain.Normal()))
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 0, 2)}, locs)
}

func TestUsageBalanced_FragileRespectsMaxLevel(t *testing.T) {
	g := newFakeGrid(1, 1, 3, 1)
	g.usage[loc(0, 0, 0, 0)] = 5
	g.usage[loc(0, 0, 1, 0)] = 5

	locs, err := allocation.UsageBalanced{}.FindSpot(g, item(domain.Fragile(domain.IntPtr(1))))
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 0, 0)}, locs)

	// Sem limite, o nível 2 (uso zero) vence.
	locs, err = allocation.UsageBalanced{}.FindSpot(g, item(domain.Fragile(nil)))
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 2, 0)}, locs)
}

func TestUsageBalanced_FragileNoCapacityBelowMaxLevel(t *testing.T) {
	g := newFakeGrid(1, 1, 2, 1)
	g.fill(loc(0, 0, 0, 0))

	_, err := allocation.UsageBalanced{}.FindSpot(g, item(domain.Fragile(domain.IntPtr(0))))
	assert.IsType(t, &apperror.NoCapacityError{}, err)
	assert.Contains(t, err.Error(), "frágil")
}

func TestUsageBalanced_OversizedPicksLowestUsageWindow(t *testing.T) {
	g := newFakeGrid(1, 1, 2, 4)
	g.usage[loc(0, 0, 0, 0)] = 3
	g.usage[loc(0, 0, 0, 1)] = 1
	g.fill(loc(0, 0, 1, 1))

	locs, err := allocation.UsageBalanced{}.FindSpot(g, item(domain.Oversized(2)))
	require.NoError(t, err)
	// Janelas com uso zero: (0,0,0,2..3) e (0,0,1,2..3); a primeira em ordem lexicográfica vence.
	assert.Equal(t, []domain.Location{loc(0, 0, 0, 2), loc(0, 0, 0, 3)}, locs)
}

func TestUsageBalanced_OversizedNeedsFullRunInOneBay(t *testing.T) {
	g := newFakeGrid(1, 1, 2, 3)
	g.fill(loc(0, 0, 0, 1), loc(0, 0, 1, 1))

	_, err := allocation.UsageBalanced{}.FindSpot(g, item(domain.Oversized(2)))
	assert.IsType(t, &apperror.NoCapacityError{}, err)
}

func TestUsageBalanced_InvalidConstraints(t *testing.T) {
	g := newFakeGrid(2, 2, 2, 2)

	cases := map[string]domain.Quality{
		"zonas zero":       domain.Oversized(0),
		"zonas demais":     domain.Oversized(3),
		"nível negativo":   domain.Fragile(domain.IntPtr(-1)),
		"tipo desconhecido": {Kind: "liquid"},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := allocation.UsageBalanced{}.FindSpot(g, item(q))
			assert.IsType(t, &apperror.InvalidConstraintError{}, err)
		})
	}
}

func TestUsageBalanced_FullGrid(t *testing.T) {
	g := newFakeGrid(1, 1, 1, 1)
	g.fill(loc(0, 0, 0, 0))

	_, err := allocation.UsageBalanced{}.FindSpot(g, item(domain.Normal()))
	assert.IsType(t, &apperror.NoCapacityError{}, err)
}

// --- RoundRobin ---

func TestRoundRobin_StartsAtOriginAndAdvances(t *testing.T) {
	g := newFakeGrid(1, 1, 2, 2)
	rr := allocation.NewRoundRobin()

	_, ok := rr.Cursor()
	assert.False(t, ok)

	first, err := rr.FindSpot(g, item(domain.Normal()))
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 0, 0)}, first)

	second, err := rr.FindSpot(g, item(domain.Normal()))
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 0, 1)}, second)

	cursor, ok := rr.Cursor()
	assert.True(t, ok)
	assert.Equal(t, loc(0, 0, 0, 1), cursor)
}

func TestRoundRobin_VisitsEveryFreeLocationOncePerSweep(t *testing.T) {
	g := newFakeGrid(2, 2, 2, 2)
	g.fill(loc(0, 1, 0, 1), loc(1, 0, 1, 0))
	rr := allocation.NewRoundRobin()

	free := g.dims.Capacity() - 2
	seen := map[domain.Location]bool{}
	for i := 0; i < free; i++ {
		locs, err := rr.FindSpot(g, item(domain.Normal()))
		require.NoError(t, err)
		require.Len(t, locs, 1)
		assert.False(t, seen[locs[0]], "local %s repetido antes de completar a volta", locs[0])
		assert.False(t, g.occupied[locs[0]])
		seen[locs[0]] = true
	}
	assert.Len(t, seen, free)

	// A próxima chamada recomeça a volta.
	again, err := rr.FindSpot(g, item(domain.Normal()))
	require.NoError(t, err)
	assert.Equal(t, loc(0, 0, 0, 0), again[0])
}

func TestRoundRobin_FragileSkipsHighLevels(t *testing.T) {
	g := newFakeGrid(1, 1, 3, 1)
	rr := allocation.NewRoundRobin()

	for i := 0; i < 4; i++ {
		locs, err := rr.FindSpot(g, item(domain.Fragile(domain.IntPtr(1))))
		require.NoError(t, err)
		assert.LessOrEqual(t, locs[0].Level, 1)
	}
}

func TestRoundRobin_OversizedDoesNotCrossBay(t *testing.T) {
	g := newFakeGrid(1, 1, 2, 3)
	g.fill(loc(0, 0, 0, 0))
	rr := allocation.NewRoundRobin()

	// (0,0,0,1..2) cabe; depois o cursor fica em (0,0,0,2).
	locs, err := rr.FindSpot(g, item(domain.Oversized(2)))
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 0, 1), loc(0, 0, 0, 2)}, locs)

	g.fill(locs...)
	// Próxima tentativa começa em (0,0,1,0), não em uma corrida que atravesse níveis.
	locs, err = rr.FindSpot(g, item(domain.Oversized(2)))
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{loc(0, 0, 1, 0), loc(0, 0, 1, 1)}, locs)
	g.fill(locs...)

	_, err = rr.FindSpot(g, item(domain.Oversized(2)))
	assert.IsType(t, &apperror.NoCapacityError{}, err)
}

func TestRoundRobin_OversizedTooLargeFailsImmediately(t *testing.T) {
	g := newFakeGrid(2, 2, 2, 2)
	rr := allocation.NewRoundRobin()

	_, err := rr.FindSpot(g, item(domain.Oversized(3)))
	assert.IsType(t, &apperror.InvalidConstraintError{}, err)
	_, ok := rr.Cursor()
	assert.False(t, ok)
}

// --- Verify ---

func TestVerify(t *testing.T) {
	g := newFakeGrid(1, 1, 3, 3)
	g.fill(loc(0, 0, 2, 2))

	assert.NoError(t, allocation.Verify(g, item(domain.Normal()), []domain.Location{loc(0, 0, 0, 0)}))
	assert.NoError(t, allocation.Verify(g, item(domain.Oversized(2)), []domain.Location{loc(0, 0, 1, 2), loc(0, 0, 1, 1)}))

	bad := []struct {
		name string
		item domain.Item
		locs []domain.Location
	}{
		{"quantidade errada", item(domain.Normal()), []domain.Location{loc(0, 0, 0, 0), loc(0, 0, 0, 1)}},
		{"fora da grade", item(domain.Normal()), []domain.Location{loc(0, 0, 3, 0)}},
		{"ocupado", item(domain.Normal()), []domain.Location{loc(0, 0, 2, 2)}},
		{"frágil alto", item(domain.Fragile(domain.IntPtr(0))), []domain.Location{loc(0, 0, 1, 0)}},
		{"não contíguo", item(domain.Oversized(2)), []domain.Location{loc(0, 0, 0, 0), loc(0, 0, 0, 2)}},
		{"níveis diferentes", item(domain.Oversized(2)), []domain.Location{loc(0, 0, 0, 2), loc(0, 0, 1, 0)}},
		{"duplicado", item(domain.Oversized(2)), []domain.Location{loc(0, 0, 0, 0), loc(0, 0, 0, 0)}},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			err := allocation.Verify(g, tc.item, tc.locs)
			assert.IsType(t, &apperror.ConstraintViolationError{}, err)
		})
	}
}
