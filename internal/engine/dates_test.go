package engine

import (
	"testing"
	"time"
)

func TestParseDateTimeLayouts(t *testing.T) {
	cases := []string{
		"2024-01-10",
		"2024-01-10 09:30",
		"2024-01-10 09:30:15",
		"2024-01-10T09:30:15",
		"2024-01-10T09:30:15Z",
	}
	for _, c := range cases {
		got, ok := ParseDateTime(c)
		if !ok {
			t.Fatalf("ParseDateTime(%q) ok=false", c)
		}
		if got.Year() != 2024 || got.Month() != time.January || got.Day() != 10 {
			t.Fatalf("ParseDateTime(%q)=%v, wrong date", c, got)
		}
	}
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	for _, c := range []string{"", "  ", "tomorrow", "10/01/2024"} {
		if _, ok := ParseDateTime(c); ok {
			t.Fatalf("ParseDateTime(%q) ok=true, want false", c)
		}
	}
}

func TestParseDateDropsClock(t *testing.T) {
	got, ok := ParseDate("2024-01-10 23:59")
	if !ok {
		t.Fatalf("ParseDate ok=false")
	}
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDate=%v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 11, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 1 {
		t.Fatalf("DaysBetween across midnight=%d, want 1", got)
	}
	if got := DaysBetween(b, a); got != -1 {
		t.Fatalf("DaysBetween reversed=%d, want -1", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Fatalf("DaysBetween same day=%d, want 0", got)
	}
}
