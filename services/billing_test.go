package services

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		end    string
		expect int
	}{
		// The convention: day count excludes the end date, so one billing
		// month runs 1st to 31st.
		{"one billing month", "2025-01-01", "2025-01-31", 30},
		{"half month", "2025-01-01", "2025-01-16", 15},
		{"same day is zero", "2025-01-01", "2025-01-01", 0},
		{"across month boundary", "2025-01-25", "2025-02-05", 11},
		{"across year boundary", "2024-12-25", "2025-01-05", 11},
		{"full year", "2025-01-01", "2026-01-01", 365},
		{"negative", "2025-02-01", "2025-01-01", -31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DurationDays(mustDate(t, tt.start), mustDate(t, tt.end))
			if got != tt.expect {
				t.Errorf("DurationDays(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.expect)
			}
		})
	}
}

func TestEndDateInvertsDuration(t *testing.T) {
	start := mustDate(t, "2025-01-01")
	for _, days := range []int{1, 15, 30, 45, 90, 365} {
		end := EndDate(start, days)
		if got := DurationDays(start, end); got != days {
			t.Errorf("DurationDays(start, EndDate(start, %d)) = %d", days, got)
		}
	}
}

func TestMonthsFromDays(t *testing.T) {
	tests := []struct {
		days   int
		expect float64
	}{
		{30, 1},
		{15, 0.5},
		{45, 1.5},
		{60, 2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := MonthsFromDays(tt.days); got != tt.expect {
			t.Errorf("MonthsFromDays(%d) = %v, want %v", tt.days, got, tt.expect)
		}
	}
}

func TestProRata(t *testing.T) {
	tests := []struct {
		name   string
		rate   float64
		days   int
		expect float64
	}{
		{"full cycle equals rate", 45000, 30, 45000},
		{"half cycle is half rate", 45000, 15, 22500},
		{"odd rate half cycle", 333.33, 15, 166.67},
		{"zero days", 45000, 0, 0},
		{"forty five days", 30000, 45, 45000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProRata(tt.rate, tt.days)
			if got != tt.expect {
				t.Errorf("ProRata(%v, %d) = %v, want %v", tt.rate, tt.days, got, tt.expect)
			}
		})
	}
}

func TestNewBillingPeriod(t *testing.T) {
	p, err := NewBillingPeriod("2025-01-01", "2025-01-31", BillingModeMonth)
	if err != nil {
		t.Fatalf("NewBillingPeriod: %v", err)
	}
	if p.Days() != 30 {
		t.Errorf("days = %d, want 30", p.Days())
	}
	if p.Months != 1 {
		t.Errorf("months = %v, want 1", p.Months)
	}
}

func TestNewBillingPeriodRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"same day", "2025-01-01", "2025-01-01"},
		{"end before start", "2025-02-01", "2025-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBillingPeriod(tt.start, tt.end, BillingModeDays)
			if !errors.Is(err, ErrNonPositiveDuration) {
				t.Errorf("expected ErrNonPositiveDuration, got %v", err)
			}
		})
	}
}

func TestNewBillingPeriodRejectsBadDate(t *testing.T) {
	if _, err := NewBillingPeriod("01/01/2025", "2025-01-31", BillingModeDays); err == nil {
		t.Error("expected parse error for non-ISO date")
	}
}

func TestBillingPeriodPrice(t *testing.T) {
	p, err := NewBillingPeriod("2025-01-01", "2025-01-16", BillingModeDays)
	if err != nil {
		t.Fatalf("NewBillingPeriod: %v", err)
	}
	if got := p.Price(45000); got != 22500 {
		t.Errorf("days mode price = %v, want 22500", got)
	}

	p = p.WithMode(BillingModeMonth)
	if p.Months != 0.5 {
		t.Errorf("months after mode switch = %v, want 0.5", p.Months)
	}
	if got := p.Price(45000); got != 22500 {
		t.Errorf("month mode price = %v, want 22500", got)
	}
}

// Switching MONTH -> DAYS -> MONTH must not drift.
func TestBillingModeRoundTrip(t *testing.T) {
	p, err := NewBillingPeriod("2025-01-01", "2025-01-31", BillingModeMonth)
	if err != nil {
		t.Fatalf("NewBillingPeriod: %v", err)
	}
	if p.Months != 1 {
		t.Fatalf("initial months = %v, want 1", p.Months)
	}

	p = p.WithMode(BillingModeDays)
	if p.Days() != 30 {
		t.Errorf("days after switch = %d, want 30", p.Days())
	}

	p = p.WithMode(BillingModeMonth)
	if p.Months != 1 {
		t.Errorf("months after round trip = %v, want 1", p.Months)
	}
	if FormatDate(p.End) != "2025-01-31" {
		t.Errorf("end after round trip = %s, want 2025-01-31", FormatDate(p.End))
	}
}

func TestBillingPeriodEditPaths(t *testing.T) {
	p, err := NewBillingPeriod("2025-01-01", "2025-01-31", BillingModeDays)
	if err != nil {
		t.Fatalf("NewBillingPeriod: %v", err)
	}

	// Moving the start keeps the duration and shifts the end.
	p = p.WithStart(mustDate(t, "2025-02-01"))
	if FormatDate(p.End) != "2025-03-03" {
		t.Errorf("end after start edit = %s, want 2025-03-03", FormatDate(p.End))
	}
	if p.Days() != 30 {
		t.Errorf("days after start edit = %d, want 30", p.Days())
	}

	// Moving the end keeps the start and recomputes months.
	p, err = p.WithEnd(mustDate(t, "2025-03-18"))
	if err != nil {
		t.Fatalf("WithEnd: %v", err)
	}
	if p.Days() != 45 {
		t.Errorf("days after end edit = %d, want 45", p.Days())
	}
	if p.Months != 1.5 {
		t.Errorf("months after end edit = %v, want 1.5", p.Months)
	}

	// Editing months recomputes the end from the start.
	p, err = p.WithMonths(2)
	if err != nil {
		t.Fatalf("WithMonths: %v", err)
	}
	if FormatDate(p.End) != "2025-04-02" {
		t.Errorf("end after months edit = %s, want 2025-04-02", FormatDate(p.End))
	}

	// Re-applying the same months value must not move the end again.
	again, err := p.WithMonths(2)
	if err != nil {
		t.Fatalf("WithMonths repeat: %v", err)
	}
	if !again.End.Equal(p.End) {
		t.Errorf("repeated months edit moved end: %s -> %s", FormatDate(p.End), FormatDate(again.End))
	}
}

func TestWithEndRejectsNonPositive(t *testing.T) {
	p, err := NewBillingPeriod("2025-01-10", "2025-02-09", BillingModeDays)
	if err != nil {
		t.Fatalf("NewBillingPeriod: %v", err)
	}
	if _, err := p.WithEnd(mustDate(t, "2025-01-10")); !errors.Is(err, ErrNonPositiveDuration) {
		t.Errorf("expected ErrNonPositiveDuration, got %v", err)
	}
}

func TestWithMonthsRejectsBelowMinimum(t *testing.T) {
	p, err := NewBillingPeriod("2025-01-01", "2025-01-31", BillingModeMonth)
	if err != nil {
		t.Fatalf("NewBillingPeriod: %v", err)
	}
	if _, err := p.WithMonths(0.25); !errors.Is(err, ErrNonPositiveDuration) {
		t.Errorf("expected ErrNonPositiveDuration, got %v", err)
	}
}
