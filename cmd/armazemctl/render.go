package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goarmazem/internal/domain"
	"goarmazem/internal/pkg/input"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C"))

	qualityStyles = map[string]lipgloss.Style{
		string(domain.QualityNormal):    lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")),
		string(domain.QualityFragile):   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C")),
		string(domain.QualityOversized): lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")),
	}
)

// table é uma tabela estática alinhada por largura de coluna.
type table struct {
	title   string
	headers []string
	rows    [][]string
}

func newTable(title string, headers ...string) *table {
	return &table{title: title, headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render() string {
	var sb strings.Builder
	if t.title != "" {
		sb.WriteString(titleStyle.Render(t.title))
		sb.WriteString("\n")
	}
	if len(t.rows) == 0 {
		sb.WriteString(mutedStyle.Render("(vazio)"))
		sb.WriteString("\n")
		return sb.String()
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if i < len(widths) && lipgloss.Width(c) > widths[i] {
				widths[i] = lipgloss.Width(c)
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	sep := mutedStyle.Render("|")
	for i, h := range t.headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(t.headers)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(mutedStyle.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range t.rows {
		for i := range t.headers {
			c := ""
			if i < len(row) {
				c = row[i]
			}
			sb.WriteString(cellStyle.Width(widths[i]).Render(c))
			if i < len(t.headers)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func describeQuality(q domain.Quality) string {
	switch q.Kind {
	case domain.QualityFragile:
		if q.MaxLevel != nil {
			return fmt.Sprintf("fragile (nível ≤ %d)", *q.MaxLevel)
		}
		return "fragile"
	case domain.QualityOversized:
		return fmt.Sprintf("oversized (%d zonas)", q.RequiredZones)
	default:
		return string(q.Kind)
	}
}

func joinLocations(locs []domain.Location) string {
	parts := make([]string, len(locs))
	for i, l := range locs {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}

func expiryText(item domain.Item) string {
	if item.ExpiryDate == nil {
		return "-"
	}
	return input.FormatDate(*item.ExpiryDate)
}

func renderRecords(w io.Writer, title string, records []domain.Record) {
	t := newTable(title, "ID", "Nome", "Qtd", "Qualidade", "Validade", "Locais")
	for _, r := range records {
		t.addRow(
			strconv.Itoa(r.Item.ID),
			r.Item.Name,
			strconv.Itoa(r.Item.Quantity),
			describeQuality(r.Item.Quality),
			expiryText(r.Item),
			joinLocations(r.Locations),
		)
	}
	fmt.Fprint(w, t.render())
}

func renderExpiring(w io.Writer, records []domain.ExpiringRecord) {
	t := newTable("Itens vencidos ou a vencer", "ID", "Nome", "Validade", "Situação", "Locais")
	for _, r := range records {
		status := warnStyle.Render(r.Status.String())
		if r.Status.State == domain.ExpiryExpired {
			status = errorStyle.Render(r.Status.String())
		}
		t.addRow(strconv.Itoa(r.Item.ID), r.Item.Name, expiryText(r.Item), status, joinLocations(r.Locations))
	}
	fmt.Fprint(w, t.render())
}

func renderMovements(w io.Writer, movements []domain.Movement) {
	t := newTable("Movimentos", "Quando", "Tipo", "ID", "Nome", "Qtd", "Qualidade", "Locais")
	for _, m := range movements {
		t.addRow(
			m.OccurredAt.Format("02-01-2006 15:04:05"),
			string(m.Kind),
			strconv.Itoa(m.ItemID),
			m.Name,
			strconv.Itoa(m.Quantity),
			string(m.Quality),
			joinLocations(m.Locations),
		)
	}
	fmt.Fprint(w, t.render())
}

// renderGrid desenha um bloco por (fileira, prateleira): níveis de cima para
// baixo, zonas da esquerda para a direita. Células livres aparecem como ".".
func renderGrid(w io.Writer, snap domain.GridSnapshot) {
	cells := make(map[domain.Location]domain.Cell, len(snap.Occupied))
	width := 1
	for _, c := range snap.Occupied {
		cells[c.Location] = c
		if n := len(strconv.Itoa(c.ItemID)); n > width {
			width = n
		}
	}

	d := snap.Dimensions
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf(
		"Grade %dx%dx%dx%d: %d ocupadas, %d livres",
		d.Rows, d.Shelves, d.Levels, d.Zones, len(snap.Occupied), snap.FreeCells(),
	)))

	for row := 0; row < d.Rows; row++ {
		for shelf := 0; shelf < d.Shelves; shelf++ {
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("fileira %d, prateleira %d", row, shelf)))
			for level := d.Levels - 1; level >= 0; level-- {
				var sb strings.Builder
				sb.WriteString(mutedStyle.Render(fmt.Sprintf("  n%d ", level)))
				for zone := 0; zone < d.Zones; zone++ {
					c, ok := cells[domain.NewLocation(row, shelf, level, zone)]
					if !ok {
						sb.WriteString(mutedStyle.Render(fmt.Sprintf("[%*s]", width, ".")))
						continue
					}
					style, known := qualityStyles[c.Quality]
					if !known {
						style = cellStyle
					}
					sb.WriteString(style.Render(fmt.Sprintf("[%*d]", width, c.ItemID)))
				}
				fmt.Fprintln(w, sb.String())
			}
		}
	}

	renderLegend(w, snap.Occupied)
}

func renderLegend(w io.Writer, occupied []domain.Cell) {
	seen := make(map[int]string)
	for _, c := range occupied {
		if _, ok := seen[c.ItemID]; !ok {
			seen[c.ItemID] = c.Name
		}
	}
	if len(seen) == 0 {
		return
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	t := newTable("Legenda", "ID", "Nome")
	for _, id := range ids {
		t.addRow(strconv.Itoa(id), seen[id])
	}
	fmt.Fprint(w, t.render())
}
