package quiz

import (
	"cmp"
	"slices"
	"time"
)

// ShortDateLayout is the default ranking date format (month/day hour:minute).
const ShortDateLayout = "01/02 15:04"

// FormatShortDate formats t with ShortDateLayout in t's location.
func FormatShortDate(t time.Time) string {
	return t.Format(ShortDateLayout)
}

// compareRanking orders entries by score descending, then most recent first.
func compareRanking(a, b RankingEntry) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return b.Timestamp.Compare(a.Timestamp)
}

// insertRanking adds e to entries and restores the ranking order. The new
// entry goes in front before a stable sort, so among equal keys the most
// recently inserted entry comes first.
func insertRanking(entries []RankingEntry, e RankingEntry) []RankingEntry {
	entries = slices.Insert(entries, 0, e)
	slices.SortStableFunc(entries, compareRanking)
	return entries
}

// IsRankingOrdered reports whether entries satisfy the ranking order.
func IsRankingOrdered(entries []RankingEntry) bool {
	for i := 1; i < len(entries); i++ {
		if compareRanking(entries[i-1], entries[i]) > 0 {
			return false
		}
	}
	return true
}
