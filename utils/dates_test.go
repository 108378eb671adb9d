package utils

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 4, 0, 1, 0, 0, time.UTC)

	if got := DaysBetween(start, end); got != 3 {
		t.Errorf("expected 3 days, got %d", got)
	}
	if got := DaysBetween(end, start); got != -3 {
		t.Errorf("expected -3 days, got %d", got)
	}
}

func TestDaysBetweenAcrossDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	// Clocks moved forward on 10 March 2024, so that day was 23 hours long.
	start := time.Date(2024, time.March, 9, 12, 0, 0, 0, loc)
	end := time.Date(2024, time.March, 11, 0, 30, 0, 0, loc)

	if got := DaysBetween(start, end); got != 2 {
		t.Errorf("expected 2 days, got %d", got)
	}

	fallBack := time.Date(2024, time.November, 3, 23, 0, 0, 0, loc)
	if got := DaysBetween(time.Date(2024, time.November, 2, 1, 0, 0, 0, loc), fallBack); got != 1 {
		t.Errorf("expected 1 day across the 25 hour day, got %d", got)
	}
}

func TestBeginningOfDay(t *testing.T) {
	got := BeginningOfDay(time.Date(2024, time.March, 1, 15, 4, 5, 6, time.UTC))
	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRelativeDay(t *testing.T) {
	today := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		visit time.Time
		want  string
	}{
		{today.Add(-2 * time.Hour), "Today"},
		{today.Add(3 * time.Hour), "Today"},
		{time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC), "Yesterday"},
		{time.Date(2024, time.March, 9, 11, 30, 0, 0, time.UTC), "23 days ago"},
	}
	for _, tt := range tests {
		if got := RelativeDay(tt.visit, today); got != tt.want {
			t.Errorf("RelativeDay(%v) = %q, want %q", tt.visit, got, tt.want)
		}
	}
}
