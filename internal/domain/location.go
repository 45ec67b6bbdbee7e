package domain

import (
	"fmt"
	"sort"
)

// Location é uma célula endereçável da grade (fileira, prateleira, nível, zona).
// É um tipo de valor imutável; a ordem lexicográfica entre locais é o critério
// de desempate determinístico da alocação.
type Location struct {
	Row   int `json:"row" example:"0"`
	Shelf int `json:"shelf" example:"1"`
	Level int `json:"level" example:"2"`
	Zone  int `json:"zone" example:"3"`
}

// NewLocation cria um Location a partir das quatro coordenadas.
func NewLocation(row, shelf, level, zone int) Location {
	return Location{Row: row, Shelf: shelf, Level: level, Zone: zone}
}

// Compare devolve -1, 0 ou 1 comparando (row, shelf, level, zone) lexicograficamente.
func (l Location) Compare(other Location) int {
	switch {
	case l.Row != other.Row:
		return sign(l.Row - other.Row)
	case l.Shelf != other.Shelf:
		return sign(l.Shelf - other.Shelf)
	case l.Level != other.Level:
		return sign(l.Level - other.Level)
	default:
		return sign(l.Zone - other.Zone)
	}
}

// Less indica se l vem antes de other na ordem lexicográfica.
func (l Location) Less(other Location) bool {
	return l.Compare(other) < 0
}

// SameBay indica se os dois locais compartilham (row, shelf, level).
func (l Location) SameBay(other Location) bool {
	return l.Row == other.Row && l.Shelf == other.Shelf && l.Level == other.Level
}

// String segue o formato usado nos registros de operação: (F0,P1,N2,Z3).
func (l Location) String() string {
	return fmt.Sprintf("(F%d,P%d,N%d,Z%d)", l.Row, l.Shelf, l.Level, l.Zone)
}

// SortLocations ordena a fatia no lugar pela ordem lexicográfica.
func SortLocations(locs []Location) {
	sort.Slice(locs, func(i, j int) bool { return locs[i].Less(locs[j]) })
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
