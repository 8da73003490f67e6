package services

import (
	"sort"
	"time"
)

// BookingStatus is the lifecycle state of a booking interval.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is one occupancy of an asset. Start and End are inclusive
// calendar dates.
type Booking struct {
	ID         string
	AssetID    string
	CampaignID string
	Start      time.Time
	End        time.Time
	Status     BookingStatus
}

// Blocks reports whether this booking counts against availability.
// Cancelled and completed bookings never block.
func (b Booking) Blocks() bool {
	return b.Status == BookingStatusConfirmed || b.Status == ""
}

// Availability is the classification of an asset for a query range.
type Availability string

const (
	// Available: no booking overlaps the query range.
	Available Availability = "available"
	// AvailableSoon: booked at the query start but free before the query end.
	AvailableSoon Availability = "available_soon"
	// Booked: occupied through the query end.
	Booked Availability = "booked"
)

// AvailabilityResult is the classification of one asset against one query
// range, with the dates and booking identity the reports display.
type AvailabilityResult struct {
	Status        Availability `json:"status"`
	AvailableFrom time.Time    `json:"available_from,omitzero"`
	BookedTill    time.Time    `json:"booked_till,omitzero"`
	BookingID     string       `json:"booking_id,omitempty"`
	CampaignID    string       `json:"campaign_id,omitempty"`
}

// overlaps reports closed-closed interval overlap: touching boundaries count.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// Classify determines whether an asset is free for [queryStart, queryEnd].
// Only blocking bookings that overlap the query range are considered. When
// several overlap, the latest-ending one decides the outcome; ties break by
// booking id so identical inputs always classify identically.
func Classify(bookings []Booking, queryStart, queryEnd time.Time) AvailabilityResult {
	var last *Booking
	for i := range bookings {
		b := bookings[i]
		if !b.Blocks() || !overlaps(b.Start, b.End, queryStart, queryEnd) {
			continue
		}
		if last == nil || b.End.After(last.End) || (b.End.Equal(last.End) && b.ID < last.ID) {
			last = &bookings[i]
		}
	}

	if last == nil {
		return AvailabilityResult{Status: Available, AvailableFrom: queryStart}
	}

	if last.End.Before(queryEnd) {
		// The asset frees up inside the query range.
		return AvailabilityResult{
			Status:        AvailableSoon,
			AvailableFrom: last.End.AddDate(0, 0, 1),
			BookingID:     last.ID,
			CampaignID:    last.CampaignID,
		}
	}

	return AvailabilityResult{
		Status:     Booked,
		BookedTill: last.End,
		BookingID:  last.ID,
		CampaignID: last.CampaignID,
	}
}

// ConflictResult is the outcome of a booking-conflict check for one asset
// and one candidate date range.
type ConflictResult struct {
	HasConflict bool      `json:"has_conflict"`
	Conflicts   []Booking `json:"conflicts,omitempty"`
}

// CheckConflict lists every blocking booking that overlaps the candidate
// range, ordered by end date then id. This is the Booked branch of Classify
// with the full conflict list attached.
func CheckConflict(bookings []Booking, start, end time.Time) ConflictResult {
	var conflicts []Booking
	for _, b := range bookings {
		if b.Blocks() && overlaps(b.Start, b.End, start, end) {
			conflicts = append(conflicts, b)
		}
	}
	sort.Slice(conflicts, func(i, j int) bool {
		if !conflicts[i].End.Equal(conflicts[j].End) {
			return conflicts[i].End.Before(conflicts[j].End)
		}
		return conflicts[i].ID < conflicts[j].ID
	})
	return ConflictResult{HasConflict: len(conflicts) > 0, Conflicts: conflicts}
}
