package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// InventoryExportRow is one media asset in a full inventory export.
type InventoryExportRow struct {
	SNo          int
	MediaType    string
	City         string
	Area         string
	Location     string
	Direction    string
	Dimensions   string
	Sqft         float64
	Illumination string
	CardRate     float64
	BaseRate     float64
	Status       string
}

// InventoryExport holds everything needed to render the inventory workbook.
type InventoryExport struct {
	CompanyName   string
	GeneratedDate string
	Rows          []InventoryExportRow
}

// GenerateInventoryExcel renders the full media inventory as an Excel
// workbook. Unlike the vacant report this includes base rates and the
// stored asset status, so it is meant for internal use.
func GenerateInventoryExcel(data InventoryExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Media Inventory"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 14, 14, 16, 36, 12, 14, 8, 12, 14, 14, 10}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
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

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Media Inventory")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge company: %w", err)
	}
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("%s | Generated: %s", sanitizeExcelCell(data.CompanyName), data.GeneratedDate))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	headers := []string{"S.No", "Media Type", "City", "Area", "Location", "Direction", "Dimensions", "Sqft", "Illumination", "Card Rate", "Base Rate", "Status"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s4", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	row := 5
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
		f.SetCellValue(sheetName, "K"+rowStr, FormatINR(r.BaseRate))
		f.SetCellValue(sheetName, "L"+rowStr, sanitizeExcelCell(r.Status))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, rowStyle)

		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}
