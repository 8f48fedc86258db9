package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInsertRanking(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(m int) time.Time { return t0.Add(time.Duration(m) * time.Minute) }

	var entries []RankingEntry
	for _, e := range []RankingEntry{
		{RunID: "a", Score: 2, Timestamp: at(0)},
		{RunID: "b", Score: 4, Timestamp: at(1)},
		{RunID: "c", Score: 2, Timestamp: at(2)},
		{RunID: "d", Score: 4, Timestamp: at(-5)},
		{RunID: "e", Score: 2, Timestamp: at(2)},
	} {
		entries = insertRanking(entries, e)
		assert.True(t, IsRankingOrdered(entries))
	}

	var ids []string
	for _, e := range entries {
		ids = append(ids, e.RunID)
	}
	assert.Equal(t, []string{"b", "d", "e", "c", "a"}, ids)
}

func TestIsRankingOrdered(t *testing.T) {
	t0 := time.Now()
	assert.True(t, IsRankingOrdered(nil))
	assert.False(t, IsRankingOrdered([]RankingEntry{{Score: 1}, {Score: 2}}))
	assert.False(t, IsRankingOrdered([]RankingEntry{
		{Score: 1, Timestamp: t0},
		{Score: 1, Timestamp: t0.Add(time.Second)},
	}))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 66, RankingEntry{Score: 2, Total: 3}.Percent())
	assert.Equal(t, 0, RankingEntry{Score: 2}.Percent())
	assert.Equal(t, 100, QuizResult{Score: 5, Total: 5}.Percent())
}

func TestScreenString(t *testing.T) {
	for _, s := range AllScreens() {
		assert.NotContains(t, s.String(), "screen(")
	}
	assert.Equal(t, "screen(9)", Screen(9).String())
}
