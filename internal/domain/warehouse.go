package domain

import "fmt"

// Dimensions guarda os limites da grade por eixo. Cada coordenada válida é
// estritamente menor que o limite do seu eixo.
type Dimensions struct {
	Rows    int `json:"rows" example:"5"`
	Shelves int `json:"shelves" example:"5"`
	Levels  int `json:"levels" example:"5"`
	Zones   int `json:"zones" example:"5"`
}

// Validate garante que todos os eixos tenham pelo menos uma posição.
func (d Dimensions) Validate() error {
	if d.Rows < 1 || d.Shelves < 1 || d.Levels < 1 || d.Zones < 1 {
		return fmt.Errorf("dimensões inválidas %v: todos os eixos devem ser >= 1", d)
	}
	return nil
}

// Contains indica se o local está dentro dos limites da grade.
func (d Dimensions) Contains(loc Location) bool {
	return loc.Row >= 0 && loc.Row < d.Rows &&
		loc.Shelf >= 0 && loc.Shelf < d.Shelves &&
		loc.Level >= 0 && loc.Level < d.Levels &&
		loc.Zone >= 0 && loc.Zone < d.Zones
}

// Capacity é o número total de células da grade.
func (d Dimensions) Capacity() int {
	return d.Rows * d.Shelves * d.Levels * d.Zones
}

// Next devolve o sucessor de loc avançando a zona e propagando o transporte
// para nível, prateleira e fileira, com volta ao início em cada eixo.
func (d Dimensions) Next(loc Location) Location {
	loc.Zone++
	if loc.Zone >= d.Zones {
		loc.Zone = 0
		loc.Level++
	}
	if loc.Level >= d.Levels {
		loc.Level = 0
		loc.Shelf++
	}
	if loc.Shelf >= d.Shelves {
		loc.Shelf = 0
		loc.Row++
	}
	if loc.Row >= d.Rows {
		loc.Row = 0
	}
	return loc
}

// Cell descreve uma célula ocupada num GridSnapshot.
type Cell struct {
	Location Location `json:"location"`
	ItemID   int      `json:"item_id"`
	Name     string   `json:"name"`
	Quality  string   `json:"quality"`
}

// UsageEntry é o contador histórico de ocupação de uma célula.
type UsageEntry struct {
	Location Location `json:"location"`
	Count    int      `json:"count"`
}

// GridSnapshot é a visão somente leitura da grade usada por renderizadores e métricas.
type GridSnapshot struct {
	Dimensions Dimensions   `json:"dimensions"`
	Occupied   []Cell       `json:"occupied"`
	Usage      []UsageEntry `json:"usage"`
}

// FreeCells devolve quantas células da grade estão livres.
func (s GridSnapshot) FreeCells() int {
	return s.Dimensions.Capacity() - len(s.Occupied)
}
