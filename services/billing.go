package services

import (
	"errors"
	"fmt"
	"time"
)

// BillingCycleDays is the fixed length of one billing month. Pro-rata
// pricing always divides the monthly rate by this cycle, never by the
// calendar length of the month being billed.
const BillingCycleDays = 30

// DateLayout is the wire format for every date the platform stores or
// exchanges. All calendar math in the codebase goes through ParseDate,
// DurationDays and EndDate so the convention lives in one place.
const DateLayout = "2006-01-02"

// BillingMode selects how a campaign or plan prices its duration.
type BillingMode string

const (
	// BillingModeMonth prices as monthlyRate x a user-editable months value.
	BillingModeMonth BillingMode = "month"
	// BillingModeDays prices day-wise pro-rata against the 30-day cycle.
	BillingModeDays BillingMode = "days"
)

// ErrNonPositiveDuration is returned when an end date does not fall after
// the start date. Callers surface this to the user instead of clamping.
var ErrNonPositiveDuration = errors.New("end date must be after start date")

// ParseDate parses a YYYY-MM-DD string in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date back to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DurationDays returns the billed day count between two dates, exclusive of
// the end date: 2025-01-01 to 2025-01-31 is 30 days, exactly one billing
// month. A same-day range is 0 days. The count is pinned by tests together
// with EndDate, which is its exact inverse.
func DurationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// EndDate returns start plus the given number of billed days.
func EndDate(start time.Time, days int) time.Time {
	return start.AddDate(0, 0, days)
}

// MonthsFromDays converts a day count to billing months. The result is not
// rounded: 45 days is 1.5 months.
func MonthsFromDays(days int) float64 {
	return float64(days) / BillingCycleDays
}

// DaysFromMonths converts a months value back to billed days.
func DaysFromMonths(months float64) int {
	return int(months * BillingCycleDays)
}

// ProRata prices a day count against a monthly rate: (rate / 30) x days,
// rounded to 2 decimals.
func ProRata(monthlyRate float64, days int) float64 {
	return Round2(monthlyRate / BillingCycleDays * float64(days))
}

// MonthPrice prices a months multiplier against a monthly rate.
func MonthPrice(monthlyRate, months float64) float64 {
	return Round2(monthlyRate * months)
}

// BillingPeriod is the date range and mode state of a campaign or plan.
// The three With* edit paths keep start, end, duration and months mutually
// consistent: repeated edits of an unchanged field never drift.
type BillingPeriod struct {
	Start  time.Time
	End    time.Time
	Mode   BillingMode
	Months float64
}

// NewBillingPeriod builds a validated period from raw date strings.
func NewBillingPeriod(startStr, endStr string, mode BillingMode) (BillingPeriod, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return BillingPeriod{}, err
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return BillingPeriod{}, err
	}
	if DurationDays(start, end) <= 0 {
		return BillingPeriod{}, ErrNonPositiveDuration
	}
	p := BillingPeriod{Start: start, End: end, Mode: mode}
	p.Months = MonthsFromDays(p.Days())
	return p, nil
}

// Days returns the billed duration of the period.
func (p BillingPeriod) Days() int {
	return DurationDays(p.Start, p.End)
}

// Price returns the effective price of the period for a monthly rate,
// honoring the selected billing mode.
func (p BillingPeriod) Price(monthlyRate float64) float64 {
	if p.Mode == BillingModeMonth {
		return MonthPrice(monthlyRate, p.Months)
	}
	return ProRata(monthlyRate, p.Days())
}

// WithStart moves the start date, preserving the current duration by
// shifting the end date.
func (p BillingPeriod) WithStart(start time.Time) BillingPeriod {
	days := p.Days()
	p.Start = start
	p.End = EndDate(start, days)
	return p
}

// WithEnd moves the end date, recomputing duration and months from the
// unchanged start date.
func (p BillingPeriod) WithEnd(end time.Time) (BillingPeriod, error) {
	if DurationDays(p.Start, end) <= 0 {
		return p, ErrNonPositiveDuration
	}
	p.End = end
	p.Months = MonthsFromDays(p.Days())
	return p, nil
}

// WithMonths sets the months value and recomputes the end date from the
// unchanged start date. Values below the half-month minimum are rejected.
func (p BillingPeriod) WithMonths(months float64) (BillingPeriod, error) {
	if months < 0.5 {
		return p, ErrNonPositiveDuration
	}
	p.Months = months
	p.End = EndDate(p.Start, DaysFromMonths(months))
	return p, nil
}

// WithMode switches the billing mode, resynchronizing the months value
// from the current duration so a MONTH->DAYS->MONTH round trip is stable.
func (p BillingPeriod) WithMode(mode BillingMode) BillingPeriod {
	p.Mode = mode
	p.Months = MonthsFromDays(p.Days())
	return p
}
