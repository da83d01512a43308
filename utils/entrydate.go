package utils

import (
	"strings"
	"time"
)

// Phrases that turn a /parse-food request into an undo of the last entry
var UndoKeywords = []string{"undo", "revert", "delete last", "remove last", "cancel last", "oops"}

func IsUndoCommand(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, kw := range UndoKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Approximate hour/minute for each meal slot
var mealHours = map[string]struct{ hour, min int }{
	"breakfast": {8, 0},
	"lunch":     {12, 30},
	"dinner":    {19, 0},
	"snack":     {15, 0},
}

// CalculateEntryDate turns Claude's relative date hints into an absolute
// timestamp. offsetDays shifts the calendar date (0 or nil = today, -1 =
// yesterday); mealTime, when it names a known slot, overrides the
// time-of-day and zeroes seconds. With neither hint the result is now itself.
func CalculateEntryDate(now time.Time, offsetDays *int, mealTime *string) time.Time {
	date := now
	if offsetDays != nil && *offsetDays != 0 {
		date = date.AddDate(0, 0, *offsetDays)
	}
	if mealTime != nil {
		if hm, ok := mealHours[strings.ToLower(*mealTime)]; ok {
			date = time.Date(date.Year(), date.Month(), date.Day(), hm.hour, hm.min, 0, 0, date.Location())
		}
	}
	return date
}
