package services

import (
	"sort"
	"time"

	"JATGo/models"
)

// StreakWindowDays bounds how far back the current-streak walk looks.
const StreakWindowDays = 365

// Streaks holds the two figures derived from a completion history.
type Streaks struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// ComputeStreaks derives current and longest streaks from a user's
// DailyCompletion history. Pure: today is passed in (YYYY-MM-DD) so the
// walk is deterministic under test.
//
// Current streak walks backward from today. A day at 100% extends the
// streak. Today being incomplete or unrecorded does not break the streak
// (the day is not over yet); any earlier miss does.
func ComputeStreaks(history []models.DailyCompletion, today string) Streaks {
	pctByDate := make(map[string]int, len(history))
	for _, c := range history {
		pctByDate[c.Date] = c.CompletionPercentage
	}

	day, err := time.Parse(models.DateLayout, today)
	if err != nil {
		return Streaks{}
	}

	current := 0
	for i := 0; i < StreakWindowDays; i++ {
		date := day.AddDate(0, 0, -i).Format(models.DateLayout)
		pct, ok := pctByDate[date]
		if ok && pct == 100 {
			current++
			continue
		}
		if i == 0 {
			// today may still be finished later
			continue
		}
		break
	}

	return Streaks{CurrentStreak: current, LongestStreak: longestStreak(history)}
}

// longestStreak scans the history in ascending date order, counting runs of
// consecutive calendar days at 100%. A sub-100% day, a zero-task day (its
// percentage is 0 by definition), or a gap in the dates resets the run.
func longestStreak(history []models.DailyCompletion) int {
	if len(history) == 0 {
		return 0
	}

	sorted := make([]models.DailyCompletion, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	longest, run := 0, 0
	var prev time.Time
	for _, c := range sorted {
		date, err := time.Parse(models.DateLayout, c.Date)
		if err != nil {
			continue
		}
		if c.CompletionPercentage != 100 {
			run = 0
			prev = date
			continue
		}
		if run > 0 && date.Sub(prev) != 24*time.Hour {
			run = 0
		}
		run++
		prev = date
		if run > longest {
			longest = run
		}
	}

	return longest
}
