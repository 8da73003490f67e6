package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateVacantMediaExcel renders the vacant media report as an Excel
// workbook and returns the file contents as a byte slice.
func GenerateVacantMediaExcel(data VacantMediaExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Vacant Media"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through L).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	lastCol := columns[len(columns)-1] // "L"

	widths := []float64{6, 14, 14, 16, 36, 12, 14, 8, 12, 14, 14, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	availableStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create available style: %w", err)
	}

	// Booked and available-soon rows get a light gray fill so the vacant
	// inventory stands out when the report is printed.
	occupiedStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size:  10,
			Color: "#666666",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#F2F2F2"},
			Pattern: 1,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create occupied style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.CompanyName != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge company: %w", err)
		}
		f.SetCellValue(sheetName, "A2", sanitizeExcelCell(data.CompanyName))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge period: %w", err)
	}
	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Period: %s to %s | Generated: %s", data.QueryStart, data.QueryEnd, data.GeneratedDate))
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	headers := []string{"S.No", "Media Type", "City", "Area", "Location", "Direction", "Dimensions", "Sqft", "Illumination", "Card Rate", "Available From", "Availability"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s5", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, r.SNo)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.MediaType))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.City))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Area))
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(r.Location))
		f.SetCellValue(sheetName, "F"+rowStr, sanitizeExcelCell(r.Direction))
		f.SetCellValue(sheetName, "G"+rowStr, sanitizeExcelCell(r.Dimensions))
		f.SetCellValue(sheetName, "H"+rowStr, r.Sqft)
		f.SetCellValue(sheetName, "I"+rowStr, sanitizeExcelCell(r.Illumination))
		f.SetCellValue(sheetName, "J"+rowStr, FormatINR(r.CardRate))
		f.SetCellValue(sheetName, "K"+rowStr, r.AvailableFrom)
		f.SetCellValue(sheetName, "L"+rowStr, availabilityLabel(r.Availability))

		style := availableStyle
		if r.Availability != string(Available) {
			style = occupiedStyle
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, style)

		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// GenerateCampaignExcel renders a campaign summary as an Excel workbook.
func GenerateCampaignExcel(data CampaignExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Campaign"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	lastCol := columns[len(columns)-1] // "J"

	widths := []float64{6, 40, 14, 8, 12, 12, 8, 16, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.ClientName != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge client: %w", err)
		}
		f.SetCellValue(sheetName, "A2", "Client: "+sanitizeExcelCell(data.ClientName))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge period: %w", err)
	}
	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Period: %s to %s | Generated: %s", data.StartDate, data.EndDate, data.GeneratedDate))
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	headers := []string{"S.No", "Location", "Dimensions", "Sqft", "Start", "End", "Days", "Monthly Rate", "Line Total", "Total (incl. GST)"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s5", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, l := range data.Lines {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, l.SNo)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(l.Location))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(l.Dimensions))
		f.SetCellValue(sheetName, "D"+rowStr, l.Sqft)
		f.SetCellValue(sheetName, "E"+rowStr, l.StartDate)
		f.SetCellValue(sheetName, "F"+rowStr, l.EndDate)
		f.SetCellValue(sheetName, "G"+rowStr, l.BookedDays)
		f.SetCellValue(sheetName, "H"+rowStr, FormatINR(l.MonthlyRate))
		f.SetCellValue(sheetName, "I"+rowStr, FormatINR(l.LineTotal))
		f.SetCellValue(sheetName, "J"+rowStr, FormatINR(l.TotalWithTax))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, lineStyle)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	summaries := []struct {
		label string
		value float64
	}{
		{"Subtotal:", data.Totals.SubTotal},
		{"Total GST:", data.Totals.TaxAmount},
		{"Grand Total:", data.Totals.TotalWithTax},
		{"TDS Deducted:", data.Totals.TDSAmount},
		{"Net Payable:", data.Totals.NetPayable},
	}
	for _, s := range summaries {
		// A campaign with no TDS lines skips the deduction row entirely.
		if s.value == 0 && s.label == "TDS Deducted:" {
			continue
		}
		summaryRow := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "H"+summaryRow, s.label)
		f.SetCellStyle(sheetName, "H"+summaryRow, "H"+summaryRow, summaryLabelStyle)
		f.SetCellValue(sheetName, "I"+summaryRow, FormatINR(s.value))
		f.SetCellStyle(sheetName, "I"+summaryRow, "I"+summaryRow, summaryValueStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
