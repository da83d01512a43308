package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsUndoCommand(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"undo", true},
		{"UNDO", true},
		{"  please undo that  ", true},
		{"oops, wrong meal", true},
		{"revert my last log", true},
		{"delete last entry", true},
		{"remove last", true},
		{"cancel last one", true},
		{"two eggs and toast", false},
		{"chicken salad for lunch", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsUndoCommand(c.text), "text: %q", c.text)
	}
}

func TestCalculateEntryDate_NoHints(t *testing.T) {
	now := time.Date(2025, 3, 14, 22, 41, 7, 123456789, time.Local)
	assert.Equal(t, now, CalculateEntryDate(now, nil, nil))
}

func TestCalculateEntryDate_OffsetAndMeal(t *testing.T) {
	now := time.Date(2025, 3, 14, 22, 41, 7, 123456789, time.Local)

	offset := -1
	meal := "dinner"
	got := CalculateEntryDate(now, &offset, &meal)
	assert.Equal(t, time.Date(2025, 3, 13, 19, 0, 0, 0, time.Local), got)
}

func TestCalculateEntryDate_ZeroOffset(t *testing.T) {
	now := time.Date(2025, 3, 14, 6, 15, 0, 0, time.Local)

	offset := 0
	meal := "lunch"
	got := CalculateEntryDate(now, &offset, &meal)
	assert.Equal(t, time.Date(2025, 3, 14, 12, 30, 0, 0, time.Local), got)
}

func TestCalculateEntryDate_MealSlots(t *testing.T) {
	now := time.Date(2025, 3, 14, 22, 41, 7, 123456789, time.Local)

	cases := []struct {
		meal string
		hour int
		min  int
	}{
		{"breakfast", 8, 0},
		{"lunch", 12, 30},
		{"dinner", 19, 0},
		{"snack", 15, 0},
		{"Breakfast", 8, 0},
		{"DINNER", 19, 0},
	}
	for _, c := range cases {
		meal := c.meal
		got := CalculateEntryDate(now, nil, &meal)
		assert.Equal(t, c.hour, got.Hour(), "meal: %s", c.meal)
		assert.Equal(t, c.min, got.Minute(), "meal: %s", c.meal)
		assert.Zero(t, got.Second(), "meal: %s", c.meal)
		assert.Zero(t, got.Nanosecond(), "meal: %s", c.meal)
	}
}

func TestCalculateEntryDate_UnknownMealKeepsTime(t *testing.T) {
	now := time.Date(2025, 3, 14, 22, 41, 7, 123456789, time.Local)

	offset := -2
	meal := "brunch"
	got := CalculateEntryDate(now, &offset, &meal)
	assert.Equal(t, now.AddDate(0, 0, -2), got)
}

func TestCalculateEntryDate_OffsetCrossesMonth(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)

	offset := -1
	got := CalculateEntryDate(now, &offset, nil)
	assert.Equal(t, time.Date(2025, 2, 28, 9, 0, 0, 0, time.Local), got)
}
