package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateInventoryExcel(t *testing.T) {
	data := InventoryExport{
		CompanyName:   "Acme Outdoor Pvt Ltd",
		GeneratedDate: "2025-06-01",
		Rows: []InventoryExportRow{
			{
				SNo:          1,
				MediaType:    "Hoarding",
				City:         "Pune",
				Area:         "Baner",
				Location:     "Baner Road, opp. mall",
				Direction:    "East Facing",
				Dimensions:   "40x20",
				Sqft:         800,
				Illumination: "Backlit",
				CardRate:     50000,
				BaseRate:     35000,
				Status:       "available",
			},
			{
				SNo:        2,
				MediaType:  "Unipole",
				City:       "Pune",
				Area:       "Aundh",
				Location:   "DP Road",
				Dimensions: "25x5",
				Sqft:       125,
				CardRate:   30000,
				BaseRate:   22000,
				Status:     "maintenance",
			},
		},
	}

	b, err := GenerateInventoryExcel(data)
	if err != nil {
		t.Fatalf("GenerateInventoryExcel error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("generated file does not open: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "Media Inventory" {
		t.Errorf("sheet name = %q", sheet)
	}

	wantHeaders := map[string]string{
		"A4": "S.No",
		"B4": "Media Type",
		"J4": "Card Rate",
		"K4": "Base Rate",
		"L4": "Status",
	}
	for cell, want := range wantHeaders {
		got, _ := f.GetCellValue(sheet, cell)
		if got != want {
			t.Errorf("header %s = %q, want %q", cell, got, want)
		}
	}

	loc, _ := f.GetCellValue(sheet, "E5")
	if loc != "Baner Road, opp. mall" {
		t.Errorf("E5 = %q", loc)
	}
	base, _ := f.GetCellValue(sheet, "K5")
	if base != "₹35,000.00" {
		t.Errorf("K5 = %q", base)
	}
	status, _ := f.GetCellValue(sheet, "L6")
	if status != "maintenance" {
		t.Errorf("L6 = %q", status)
	}
}
