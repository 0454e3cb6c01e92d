package domain

import (
	"time"
)

const DateLayout = "2006-01-02"

var weekDayNames = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// DayEntry marks one calendar day with at least one recorded prayer.
// Absence of an entry for a date means the day was not completed.
type DayEntry struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// StreakRecord is the per-identity engagement record. OwnerID is either an
// authenticated account id or a generated anonymous id.
type StreakRecord struct {
	OwnerID        string     `json:"owner_id" db:"owner_id"`
	DeviceID       string     `json:"device_id,omitempty" db:"device_id"`
	CurrentStreak  int        `json:"current_streak" db:"current_streak"`
	LongestStreak  int        `json:"longest_streak" db:"longest_streak"`
	LastPrayerDate string     `json:"last_prayer_date" db:"last_prayer_date"`
	History        []DayEntry `json:"history"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// DayProgress is one cell of the weekly progress strip.
type DayProgress struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	DayName   string `json:"day_name"`
}

// DayKey truncates a timestamp to its calendar date in the timestamp's own
// location.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}

// HasDay reports whether the history already holds an entry for the given
// calendar date.
func (r *StreakRecord) HasDay(day string) bool {
	for _, e := range r.History {
		if e.Date == day {
			return true
		}
	}
	return false
}

func (r *StreakRecord) clone() *StreakRecord {
	cp := *r
	cp.History = make([]DayEntry, len(r.History))
	copy(cp.History, r.History)
	return &cp
}

// AdvanceStreak applies a completion event to an existing record and returns
// the updated record. It is a pure function: the existing record is never
// mutated, and applying the same day twice returns the record unchanged.
//
// Rules:
//   - no existing record: streak starts at 1 with today as the only entry
//   - today already recorded: no-op
//   - last entry was yesterday: streak continues (+1)
//   - gap of two or more days: streak resets to 1
func AdvanceStreak(existing *StreakRecord, ownerID string, today time.Time) *StreakRecord {
	day := DayKey(today)

	if existing == nil {
		return &StreakRecord{
			OwnerID:        ownerID,
			CurrentStreak:  1,
			LongestStreak:  1,
			LastPrayerDate: day,
			History:        []DayEntry{{Date: day, Completed: true}},
			CreatedAt:      today.UTC(),
			UpdatedAt:      today.UTC(),
		}
	}

	if existing.HasDay(day) {
		return existing
	}

	yesterday := DayKey(today.AddDate(0, 0, -1))

	current := 1
	if existing.LastPrayerDate == yesterday {
		current = existing.CurrentStreak + 1
	}

	longest := existing.LongestStreak
	if current > longest {
		longest = current
	}

	updated := existing.clone()
	updated.CurrentStreak = current
	updated.LongestStreak = longest
	updated.LastPrayerDate = day
	updated.History = append(updated.History, DayEntry{Date: day, Completed: true})
	updated.UpdatedAt = today.UTC()

	return updated
}

// WeeklyProgress projects the record's history onto the Sunday-start week
// containing today. It always returns exactly 7 cells. A nil record yields a
// week with no completed days.
func WeeklyProgress(record *StreakRecord, today time.Time) []DayProgress {
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	completed := make(map[string]bool)
	if record != nil {
		for _, e := range record.History {
			if e.Completed {
				completed[e.Date] = true
			}
		}
	}

	progress := make([]DayProgress, 0, 7)
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		key := DayKey(d)
		progress = append(progress, DayProgress{
			Date:      key,
			Completed: completed[key],
			DayName:   weekDayNames[d.Weekday()],
		})
	}

	return progress
}
