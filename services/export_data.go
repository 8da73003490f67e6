package services

// VacantMediaExport holds everything needed to render the vacant media
// report in any output format (Excel, PDF, HTML).
type VacantMediaExport struct {
	Title         string
	CompanyName   string
	GeneratedDate string
	QueryStart    string
	QueryEnd      string
	Rows          []StandardizedRow
	Duplicates    int
}

// CampaignLineRow is a single asset line in a campaign summary export.
type CampaignLineRow struct {
	SNo          int
	Location     string
	Dimensions   string
	Sqft         float64
	StartDate    string
	EndDate      string
	BookedDays   int
	MonthlyRate  float64
	LineTotal    float64
	TotalWithTax float64
}

// CampaignExport holds all data needed for a campaign summary export.
type CampaignExport struct {
	Title         string
	ClientName    string
	GeneratedDate string
	StartDate     string
	EndDate       string
	Lines         []CampaignLineRow
	Totals        CampaignTotals
}

// availabilityLabel maps a stored availability value to its display form.
func availabilityLabel(status string) string {
	switch Availability(status) {
	case Available:
		return "Available"
	case AvailableSoon:
		return "Available Soon"
	case Booked:
		return "Booked"
	}
	return status
}
