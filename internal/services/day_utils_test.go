package services

import (
	"testing"
	"time"
)

func TestDateAtLocation(t *testing.T) {
	t.Parallel()

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 23:30 UTC on June 1st is already June 2nd in Jakarta.
	instant := time.Date(2025, time.June, 1, 23, 30, 0, 0, time.UTC)
	got := DateAtLocation(instant, jakarta)
	want := time.Date(2025, time.June, 2, 0, 0, 0, 0, jakarta)
	if !got.Equal(want) {
		t.Errorf("date at location = %v, want %v", got, want)
	}

	if got := DateAtLocation(instant, nil); !got.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("nil location should fall back to UTC, got %v", got)
	}
}

func TestDayRange(t *testing.T) {
	t.Parallel()

	start, end := DayRange(time.Date(2025, time.June, 1, 15, 4, 5, 0, time.UTC), time.UTC)
	if !start.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("day start = %v", start)
	}
	if !end.Equal(time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("day end = %v", end)
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC),
			b:    time.Date(2025, time.June, 1, 22, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "whole days forward",
			a:    time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, time.June, 29, 0, 0, 0, 0, time.UTC),
			want: 28,
		},
		{
			name: "negative when reversed",
			a:    time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			want: -4,
		},
		{
			name: "time of day is ignored",
			a:    time.Date(2025, time.June, 1, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2025, time.June, 2, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := DaysBetween(testCase.a, testCase.b); got != testCase.want {
				t.Errorf("days between = %d, want %d", got, testCase.want)
			}
		})
	}
}
