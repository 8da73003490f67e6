package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleVacantExport() VacantMediaExport {
	return VacantMediaExport{
		Title:         "Vacant Media Report",
		CompanyName:   "Acme Outdoor Pvt Ltd",
		GeneratedDate: "2025-06-01",
		QueryStart:    "2025-06-01",
		QueryEnd:      "2025-06-30",
		Rows: []StandardizedRow{
			{
				SNo:           1,
				AssetID:       "A1",
				MediaType:     "Hoarding",
				City:          "Pune",
				Area:          "Baner",
				Location:      "Baner Road, opp. mall",
				Direction:     "East Facing",
				Dimensions:    "40x20",
				Sqft:          800,
				Illumination:  "Backlit",
				CardRate:      50000,
				AvailableFrom: "2025-06-01",
				Availability:  string(Available),
			},
			{
				SNo:           2,
				AssetID:       "A2",
				MediaType:     "Unipole",
				City:          "Pune",
				Area:          "Aundh",
				Location:      "DP Road",
				Dimensions:    "25x5-12x3",
				Sqft:          161,
				Illumination:  "Non-lit",
				CardRate:      30000,
				AvailableFrom: "2025-07-15",
				Availability:  string(Booked),
			},
		},
	}
}

func TestGenerateVacantMediaExcel(t *testing.T) {
	data := sampleVacantExport()

	b, err := GenerateVacantMediaExcel(data)
	if err != nil {
		t.Fatalf("GenerateVacantMediaExcel error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("generated file does not open: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "Vacant Media Report" {
		t.Errorf("sheet name = %q", sheet)
	}

	title, _ := f.GetCellValue(sheet, "A1")
	if title != "Vacant Media Report" {
		t.Errorf("title cell = %q", title)
	}

	// Row 5 carries the canonical column headers.
	wantHeaders := map[string]string{
		"A5": "S.No",
		"B5": "Media Type",
		"E5": "Location",
		"J5": "Card Rate",
		"L5": "Availability",
	}
	for cell, want := range wantHeaders {
		got, _ := f.GetCellValue(sheet, cell)
		if got != want {
			t.Errorf("header %s = %q, want %q", cell, got, want)
		}
	}

	// First data row.
	loc, _ := f.GetCellValue(sheet, "E6")
	if loc != "Baner Road, opp. mall" {
		t.Errorf("E6 = %q", loc)
	}
	rate, _ := f.GetCellValue(sheet, "J6")
	if rate != "₹50,000.00" {
		t.Errorf("J6 = %q", rate)
	}
	status, _ := f.GetCellValue(sheet, "L7")
	if status != "Booked" {
		t.Errorf("L7 = %q", status)
	}
}

func TestGenerateVacantMediaExcel_EmptyTitle(t *testing.T) {
	data := sampleVacantExport()
	data.Title = ""

	b, err := GenerateVacantMediaExcel(data)
	if err != nil {
		t.Fatalf("GenerateVacantMediaExcel error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("generated file does not open: %v", err)
	}
	defer f.Close()
	if got := f.GetSheetName(0); got != "Vacant Media" {
		t.Errorf("sheet name = %q, want fallback", got)
	}
}

func TestGenerateCampaignExcel(t *testing.T) {
	data := CampaignExport{
		Title:         "Summer Launch",
		ClientName:    "BigRetail Ltd",
		GeneratedDate: "2025-06-01",
		StartDate:     "2025-06-01",
		EndDate:       "2025-07-01",
		Lines: []CampaignLineRow{
			{
				SNo:          1,
				Location:     "Baner Road",
				Dimensions:   "40x20",
				Sqft:         800,
				StartDate:    "2025-06-01",
				EndDate:      "2025-07-01",
				BookedDays:   30,
				MonthlyRate:  50000,
				LineTotal:    50000,
				TotalWithTax: 59000,
			},
		},
		Totals: CampaignTotals{
			SubTotal:     50000,
			TaxAmount:    9000,
			TotalWithTax: 59000,
			NetPayable:   59000,
		},
	}

	b, err := GenerateCampaignExcel(data)
	if err != nil {
		t.Fatalf("GenerateCampaignExcel error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("generated file does not open: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	total, _ := f.GetCellValue(sheet, "J6")
	if total != "₹59,000.00" {
		t.Errorf("J6 = %q", total)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1234", "'+1234"},
		{"-500", "'-500"},
		{"@cmd", "'@cmd"},
		{"normal text", "normal text"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
