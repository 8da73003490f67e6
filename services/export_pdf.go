package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateVacantMediaPDF renders the vacant media report as a landscape A4
// PDF using maroto/v2. It returns the raw PDF bytes or an error.
func GenerateVacantMediaPDF(data VacantMediaExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addVacantHeader(m, data)
	addVacantTableHeader(m)
	for _, r := range data.Rows {
		addVacantTableRow(m, r)
	}
	addVacantFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addVacantHeader adds the title, company name and period to the PDF.
func addVacantHeader(m core.Maroto, data VacantMediaExport) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Period: %s to %s", data.QueryStart, data.QueryEnd), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addVacantTableHeader adds the column header row for the inventory table.
func addVacantTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Media", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("City", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Area", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Location", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Dimensions", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Sqft", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Illumination", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Card Rate", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("From", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Status", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addVacantTableRow adds a single inventory row, shaded when the asset is
// not immediately available.
func addVacantTableRow(m core.Maroto, r StandardizedRow) {
	var cellStyle *props.Cell
	if r.Availability != string(Available) {
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{
		Size:  7,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	// Facing direction travels with the location when present.
	location := r.Location
	if r.Direction != "" {
		location = fmt.Sprintf("%s (%s)", r.Location, r.Direction)
	}

	colSNo := col.New(1).Add(text.New(fmt.Sprintf("%d", r.SNo), baseText))
	colMedia := col.New(1).Add(text.New(r.MediaType, baseText))
	colCity := col.New(1).Add(text.New(r.City, baseText))
	colArea := col.New(1).Add(text.New(r.Area, baseText))
	colLocation := col.New(2).Add(text.New(location, leftText))
	colDimensions := col.New(1).Add(text.New(r.Dimensions, baseText))
	colSqft := col.New(1).Add(text.New(FormatSqft(r.Sqft), rightText))
	colIllumination := col.New(1).Add(text.New(r.Illumination, baseText))
	colRate := col.New(1).Add(text.New(FormatINR(r.CardRate), rightText))
	colFrom := col.New(1).Add(text.New(r.AvailableFrom, baseText))
	colStatus := col.New(1).Add(text.New(availabilityLabel(r.Availability), baseText))

	if cellStyle != nil {
		colSNo = colSNo.WithStyle(cellStyle)
		colMedia = colMedia.WithStyle(cellStyle)
		colCity = colCity.WithStyle(cellStyle)
		colArea = colArea.WithStyle(cellStyle)
		colLocation = colLocation.WithStyle(cellStyle)
		colDimensions = colDimensions.WithStyle(cellStyle)
		colSqft = colSqft.WithStyle(cellStyle)
		colIllumination = colIllumination.WithStyle(cellStyle)
		colRate = colRate.WithStyle(cellStyle)
		colFrom = colFrom.WithStyle(cellStyle)
		colStatus = colStatus.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(
			colSNo,
			colMedia,
			colCity,
			colArea,
			colLocation,
			colDimensions,
			colSqft,
			colIllumination,
			colRate,
			colFrom,
			colStatus,
		),
	)
}

// addVacantFooter adds the generated-date line at the bottom.
func addVacantFooter(m core.Maroto, data VacantMediaExport) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s | %d assets", data.GeneratedDate, len(data.Rows)),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

// GenerateCampaignPDF renders a campaign summary as a landscape A4 PDF.
func GenerateCampaignPDF(data CampaignExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Client: %s", data.ClientName), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Period: %s to %s", data.StartDate, data.EndDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)
	m.AddRows(row.New(4))

	addCampaignTableHeader(m)
	for _, l := range data.Lines {
		addCampaignTableRow(m, l)
	}
	addCampaignSummary(m, data)

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.GeneratedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addCampaignTableHeader adds the column header row for the line table.
func addCampaignTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Location", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Dimensions", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Sqft", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Start", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("End", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Days", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Monthly Rate", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Line Total", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Incl. GST", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addCampaignTableRow adds one priced line to the table.
func addCampaignTableRow(m core.Maroto, l CampaignLineRow) {
	baseText := props.Text{
		Size:  7,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.SNo), baseText)),
			col.New(3).Add(text.New(l.Location, leftText)),
			col.New(1).Add(text.New(l.Dimensions, baseText)),
			col.New(1).Add(text.New(FormatSqft(l.Sqft), rightText)),
			col.New(1).Add(text.New(l.StartDate, baseText)),
			col.New(1).Add(text.New(l.EndDate, baseText)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.BookedDays), rightText)),
			col.New(1).Add(text.New(FormatINR(l.MonthlyRate), rightText)),
			col.New(1).Add(text.New(FormatINR(l.LineTotal), rightText)),
			col.New(1).Add(text.New(FormatINR(l.TotalWithTax), rightText)),
		),
	)
}

// addCampaignSummary adds the totals block at the bottom of the PDF.
func addCampaignSummary(m core.Maroto, data CampaignExport) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	rows := []struct {
		label string
		value float64
	}{
		{"Subtotal", data.Totals.SubTotal},
		{"Total GST", data.Totals.TaxAmount},
		{"Grand Total", data.Totals.TotalWithTax},
		{"TDS Deducted", data.Totals.TDSAmount},
		{"Net Payable", data.Totals.NetPayable},
	}

	for _, r := range rows {
		if r.value == 0 && r.label == "TDS Deducted" {
			continue
		}
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(r.label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(FormatINR(r.value), valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}
}
