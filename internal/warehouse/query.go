package warehouse

import (
	"sort"

	"goarmazem/internal/domain"
)

// GroupedItems reconstrói os registros lógicos a partir das células. Cada registro
// traz os locais em ordem lexicográfica; os registros saem ordenados pelo primeiro local.
func (s *Store) GroupedItems() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groupedLocked()
}

func (s *Store) groupedLocked() []domain.Record {
	index := make(map[domain.GroupKey]int)
	var records []domain.Record
	for loc, it := range s.items {
		key := it.Key()
		i, ok := index[key]
		if !ok {
			i = len(records)
			index[key] = i
			records = append(records, domain.Record{Item: it})
		}
		records[i].Locations = append(records[i].Locations, loc)
	}

	for i := range records {
		domain.SortLocations(records[i].Locations)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Locations[0].Less(records[j].Locations[0])
	})
	return records
}

// SearchByID soma a quantidade de todos os registros com o ID.
func (s *Store) SearchByID(id int) domain.SearchResult {
	return s.sum(func(it domain.Item) bool { return it.ID == id })
}

// SearchByName soma a quantidade de todos os registros com o nome.
func (s *Store) SearchByName(name string) domain.SearchResult {
	return s.sum(func(it domain.Item) bool { return it.Name == name })
}

func (s *Store) sum(match func(domain.Item) bool) domain.SearchResult {
	var res domain.SearchResult
	for _, rec := range s.GroupedItems() {
		if match(rec.Item) {
			res.Found = true
			res.TotalQuantity += rec.Item.Quantity
		}
	}
	return res
}

// SearchLocationsByID devolve cada registro com o ID e seus locais.
func (s *Store) SearchLocationsByID(id int) []domain.Record {
	var out []domain.Record
	for _, rec := range s.GroupedItems() {
		if rec.Item.ID == id {
			out = append(out, rec)
		}
	}
	return out
}

// Snapshot devolve a visão somente leitura da grade.
func (s *Store) Snapshot() domain.GridSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.GridSnapshot{
		Dimensions: s.dims,
		Occupied:   make([]domain.Cell, 0, len(s.items)),
		Usage:      make([]domain.UsageEntry, 0, len(s.usage)),
	}
	for loc, it := range s.items {
		snap.Occupied = append(snap.Occupied, domain.Cell{Location: loc, ItemID: it.ID, Name: it.Name, Quality: string(it.Quality.Kind)})
	}
	for loc, n := range s.usage {
		snap.Usage = append(snap.Usage, domain.UsageEntry{Location: loc, Count: n})
	}
	sort.Slice(snap.Occupied, func(i, j int) bool { return snap.Occupied[i].Location.Less(snap.Occupied[j].Location) })
	sort.Slice(snap.Usage, func(i, j int) bool { return snap.Usage[i].Location.Less(snap.Usage[j].Location) })
	return snap
}
