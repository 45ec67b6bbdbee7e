package warehouse

import (
	"time"

	"goarmazem/internal/domain"
)

// FindExpiring reporta os registros frágeis com validade vencida antes de ref ou
// dentro de ExpiryWindowDays dias. Datas são comparadas como dias de calendário.
func (s *Store) FindExpiring(ref time.Time) []domain.ExpiringRecord {
	refDay := civilDay(ref)

	var out []domain.ExpiringRecord
	for _, rec := range s.GroupedItems() {
		if rec.Item.Quality.Kind != domain.QualityFragile || rec.Item.ExpiryDate == nil {
			continue
		}
		days := daysBetween(refDay, civilDay(*rec.Item.ExpiryDate))
		switch {
		case days < 0:
			out = append(out, domain.ExpiringRecord{Record: rec, Status: domain.Expired()})
		case days <= domain.ExpiryWindowDays:
			out = append(out, domain.ExpiringRecord{Record: rec, Status: domain.ExpiresInDays(days)})
		}
	}
	return out
}

// civilDay descarta o horário e fixa UTC, mantendo ano, mês e dia locais de t.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
