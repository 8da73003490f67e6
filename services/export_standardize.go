package services

import (
	"sort"
	"strings"
)

// SortOrder selects the secondary sort key for standardized report rows.
// Availability always sorts first regardless of the requested order.
type SortOrder string

const (
	SortByLocation         SortOrder = "location"
	SortByArea             SortOrder = "area"
	SortByCityAreaLocation SortOrder = "city_area_location"
	SortByAvailableFrom    SortOrder = "available_from"
)

// StandardizedRow is the canonical report row. The field set and order is
// a de facto contract with the spreadsheet/PDF generators downstream; do
// not reorder or rename without updating every exporter.
type StandardizedRow struct {
	SNo           int     `json:"s_no"`
	AssetID       string  `json:"asset_id"`
	MediaType     string  `json:"media_type"`
	City          string  `json:"city"`
	Area          string  `json:"area"`
	Location      string  `json:"location"`
	Direction     string  `json:"direction"`
	Dimensions    string  `json:"dimensions"`
	Sqft          float64 `json:"sqft"`
	Illumination  string  `json:"illumination"`
	CardRate      float64 `json:"card_rate"`
	AvailableFrom string  `json:"available_from"`
	Availability  string  `json:"availability"`
}

// StandardizeResult carries the standardized rows plus how many duplicate
// asset rows were dropped on the way.
type StandardizeResult struct {
	Rows       []StandardizedRow
	Duplicates int
}

// Standardize deduplicates, sorts and numbers report rows. Duplicates (by
// asset id, first occurrence wins) are counted, not merged. Available rows
// missing a date inherit defaultAvailableFrom; booked rows never do.
func Standardize(rows []StandardizedRow, order SortOrder, defaultAvailableFrom string) StandardizeResult {
	seen := make(map[string]bool, len(rows))
	out := make([]StandardizedRow, 0, len(rows))
	duplicates := 0
	for _, r := range rows {
		if r.AssetID != "" && seen[r.AssetID] {
			duplicates++
			continue
		}
		seen[r.AssetID] = true

		if strings.EqualFold(r.Availability, string(Available)) && r.AvailableFrom == "" {
			r.AvailableFrom = defaultAvailableFrom
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lessStandardized(out[i], out[j], order)
	})

	for i := range out {
		out[i].SNo = i + 1
	}
	return StandardizeResult{Rows: out, Duplicates: duplicates}
}

// lessStandardized orders rows: availability first, then the requested
// key, then location and area as tie-breaks (skipping whichever already
// served as the requested key).
func lessStandardized(a, b StandardizedRow, order SortOrder) bool {
	if r := compareAvailability(a.Availability, b.Availability); r != 0 {
		return r < 0
	}

	switch order {
	case SortByArea:
		if r := compareFold(a.Area, b.Area); r != 0 {
			return r < 0
		}
		return compareFold(a.Location, b.Location) < 0
	case SortByCityAreaLocation:
		if r := compareFold(a.City, b.City); r != 0 {
			return r < 0
		}
		if r := compareFold(a.Area, b.Area); r != 0 {
			return r < 0
		}
		return compareFold(a.Location, b.Location) < 0
	case SortByAvailableFrom:
		if r := strings.Compare(a.AvailableFrom, b.AvailableFrom); r != 0 {
			return r < 0
		}
		if r := compareFold(a.Location, b.Location); r != 0 {
			return r < 0
		}
		return compareFold(a.Area, b.Area) < 0
	default: // SortByLocation
		if r := compareFold(a.Location, b.Location); r != 0 {
			return r < 0
		}
		return compareFold(a.Area, b.Area) < 0
	}
}

// compareAvailability puts available rows before everything else.
func compareAvailability(a, b string) int {
	return availabilityRank(a) - availabilityRank(b)
}

func availabilityRank(s string) int {
	switch Availability(strings.ToLower(strings.TrimSpace(s))) {
	case Available:
		return 0
	case AvailableSoon:
		return 1
	default:
		return 2
	}
}

// compareFold is a case-insensitive, null-safe string compare; missing
// values are treated as empty strings and sort first.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b)))
}
