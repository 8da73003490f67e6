package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
)

// buildCampaignExport assembles the export model of a campaign: priced
// lines plus totals, derived fresh at export time.
func buildCampaignExport(app *pocketbase.PocketBase, campaignID string) (services.CampaignExport, error) {
	campaign, err := app.FindRecordById("campaigns", campaignID)
	if err != nil {
		return services.CampaignExport{}, fmt.Errorf("campaign not found: %w", err)
	}

	lines, err := loadCampaignLines(app, campaign, "campaign_assets", "campaign")
	if err != nil {
		return services.CampaignExport{}, err
	}

	data := services.CampaignExport{
		Title:         campaign.GetString("name"),
		ClientName:    campaign.GetString("client_name"),
		GeneratedDate: time.Now().Format("02 Jan 2006"),
		StartDate:     campaign.GetString("start_date"),
		EndDate:       campaign.GetString("end_date"),
		Totals:        services.TotalLines(pricedOf(lines)),
	}

	for i, l := range lines {
		location := l.Asset.GetString("location")
		if area := l.Asset.GetString("area"); area != "" {
			location += ", " + area
		}
		data.Lines = append(data.Lines, services.CampaignLineRow{
			SNo:          i + 1,
			Location:     location,
			Dimensions:   l.Asset.GetString("dimensions"),
			Sqft:         l.Asset.GetFloat("sqft"),
			StartDate:    data.StartDate,
			EndDate:      data.EndDate,
			BookedDays:   l.Priced.BookedDays,
			MonthlyRate:  l.Priced.EffectivePrice,
			LineTotal:    l.Priced.LineTotal,
			TotalWithTax: l.Priced.TotalWithTax,
		})
	}
	return data, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleCampaignExportExcel downloads a campaign summary workbook.
// Route: GET /campaigns/{id}/export/excel
func HandleCampaignExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		campaignID := e.Request.PathValue("id")
		if campaignID == "" {
			return e.String(http.StatusBadRequest, "Missing campaign ID")
		}

		data, err := buildCampaignExport(app, campaignID)
		if err != nil {
			log.Printf("campaign_export_excel: %v", err)
			return e.String(http.StatusNotFound, "Campaign not found")
		}

		xlsxBytes, err := services.GenerateCampaignExcel(data)
		if err != nil {
			log.Printf("campaign_export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Campaign_%s_%d.xlsx", sanitizeFilename(data.Title), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleCampaignExportPDF downloads a campaign summary PDF.
// Route: GET /campaigns/{id}/export/pdf
func HandleCampaignExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		campaignID := e.Request.PathValue("id")
		if campaignID == "" {
			return e.String(http.StatusBadRequest, "Missing campaign ID")
		}

		data, err := buildCampaignExport(app, campaignID)
		if err != nil {
			log.Printf("campaign_export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Campaign not found")
		}

		pdfBytes, err := services.GenerateCampaignPDF(data)
		if err != nil {
			log.Printf("campaign_export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Campaign_%s_%d.pdf", sanitizeFilename(data.Title), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
