package portfolio

import (
	"sort"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// Recent returns up to limit transactions ordered newest first.
// The input is not modified. The sort is stable, so transactions sharing a
// date keep their ledger order relative to each other.
func Recent(transactions []model.Transaction, limit int) []model.Transaction {
	if limit <= 0 {
		return []model.Transaction{}
	}

	recent := make([]model.Transaction, len(transactions))
	copy(recent, transactions)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})

	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}
