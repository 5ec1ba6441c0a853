package dashboard

import (
	"time"

	"github.com/regdesk/regdesk/internal/users"
)

const statsMonths = 12

// MonthlyCount is the number of registrations in one calendar month (UTC).
type MonthlyCount struct {
	Month         string `json:"month"`
	Year          int    `json:"year"`
	Registrations int    `json:"registrations"`
}

// Stats summarises the registered population.
type Stats struct {
	TotalUsers int            `json:"totalUsers"`
	Monthly    []MonthlyCount `json:"monthly"`
}

// ComputeStats counts registrations per month over the twelve months ending
// with the month of now, oldest first.
func ComputeStats(list []users.User, now time.Time) Stats {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(statsMonths - 1), 0)

	monthly := make([]MonthlyCount, statsMonths)
	for i := range monthly {
		m := first.AddDate(0, i, 0)
		monthly[i] = MonthlyCount{Month: m.Month().String()[:3], Year: m.Year()}
	}
	for _, u := range list {
		created := u.CreatedAt.UTC()
		idx := (created.Year()-first.Year())*12 + int(created.Month()) - int(first.Month())
		if idx < 0 || idx >= statsMonths {
			continue
		}
		monthly[idx].Registrations++
	}
	return Stats{TotalUsers: len(list), Monthly: monthly}
}
