package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
	"adbooth/templates"
)

// buildVacantExport classifies every active asset of a company against the
// query range and standardizes the rows for export. The classification and
// row ordering run fresh per request; nothing is cached.
func buildVacantExport(
	app *pocketbase.PocketBase,
	companyID, companyName string,
	queryStart, queryEnd time.Time,
	order services.SortOrder,
) (services.VacantMediaExport, error) {
	assetsCol, err := app.FindCollectionByNameOrId("media_assets")
	if err != nil {
		return services.VacantMediaExport{}, fmt.Errorf("media_assets collection not found: %w", err)
	}

	// Blocked and under-maintenance inventory stays out of the report;
	// everything else is classified against its bookings.
	assets, err := app.FindRecordsByFilter(assetsCol,
		"company = {:company} && status != 'blocked' && status != 'maintenance'",
		"city,area,location", 0, 0,
		map[string]any{"company": companyID})
	if err != nil {
		return services.VacantMediaExport{}, fmt.Errorf("load assets: %w", err)
	}

	var rows []services.StandardizedRow
	for _, asset := range assets {
		bookings, err := loadAssetBookings(app, asset.Id, "")
		if err != nil {
			return services.VacantMediaExport{}, err
		}
		result := services.Classify(bookings, queryStart, queryEnd)

		row := services.StandardizedRow{
			AssetID:      asset.Id,
			MediaType:    asset.GetString("media_type"),
			City:         asset.GetString("city"),
			Area:         asset.GetString("area"),
			Location:     asset.GetString("location"),
			Direction:    asset.GetString("direction"),
			Dimensions:   asset.GetString("dimensions"),
			Sqft:         asset.GetFloat("sqft"),
			Illumination: asset.GetString("illumination"),
			CardRate:     asset.GetFloat("card_rate"),
			Availability: string(result.Status),
		}
		if !result.AvailableFrom.IsZero() {
			row.AvailableFrom = services.FormatDate(result.AvailableFrom)
		}
		// An asset-level available_from overrides the computed date for
		// fully available assets; operators use it for upcoming handovers.
		if result.Status == services.Available {
			if v := asset.GetString("available_from"); v != "" {
				row.AvailableFrom = v
			}
		}
		rows = append(rows, row)
	}

	standardized := services.Standardize(rows, order, services.FormatDate(queryStart))

	return services.VacantMediaExport{
		Title:         "Vacant Media",
		CompanyName:   companyName,
		GeneratedDate: time.Now().Format("02 Jan 2006"),
		QueryStart:    services.FormatDate(queryStart),
		QueryEnd:      services.FormatDate(queryEnd),
		Rows:          standardized.Rows,
		Duplicates:    standardized.Duplicates,
	}, nil
}

// vacantQueryFromRequest parses the report query params. An empty query
// defaults to the next 30 days.
func vacantQueryFromRequest(e *core.RequestEvent) (templates.VacantReportFormData, time.Time, time.Time, services.SortOrder) {
	q := e.Request.URL.Query()
	form := templates.VacantReportFormData{
		StartDate: q.Get("start"),
		EndDate:   q.Get("end"),
		SortOrder: q.Get("sort"),
		Errors:    make(map[string]string),
	}
	if form.SortOrder == "" {
		form.SortOrder = string(services.SortByLocation)
	}

	if form.StartDate == "" && form.EndDate == "" {
		start := time.Now().UTC().Truncate(24 * time.Hour)
		end := start.AddDate(0, 0, services.BillingCycleDays)
		form.StartDate = services.FormatDate(start)
		form.EndDate = services.FormatDate(end)
		return form, start, end, services.SortOrder(form.SortOrder)
	}

	start, err := services.ParseDate(form.StartDate)
	if err != nil {
		form.Errors["start"] = "From date must be YYYY-MM-DD"
	}
	end, err := services.ParseDate(form.EndDate)
	if err != nil {
		form.Errors["end"] = "To date must be YYYY-MM-DD"
	}
	if len(form.Errors) == 0 && end.Before(start) {
		form.Errors["end"] = "To date must not be before the from date"
	}
	return form, start, end, services.SortOrder(form.SortOrder)
}

// HandleVacantReport renders the vacant media report page.
// Route: GET /reports/vacant
func HandleVacantReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		form, start, end, order := vacantQueryFromRequest(e)

		var data services.VacantMediaExport
		if len(form.Errors) == 0 {
			data, err = buildVacantExport(app, companyID, GetActiveCompany(e.Request).Name, start, end, order)
			if err != nil {
				log.Printf("vacant_report: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.VacantReportContent(form, data)
		} else {
			component = templates.VacantReportPage(form, data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleVacantReportExcel downloads the vacant media report workbook.
// Route: GET /reports/vacant/export/excel
func HandleVacantReportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		form, start, end, order := vacantQueryFromRequest(e)
		if len(form.Errors) > 0 {
			return ErrorToast(e, http.StatusBadRequest, "Invalid date range")
		}

		data, err := buildVacantExport(app, companyID, GetActiveCompany(e.Request).Name, start, end, order)
		if err != nil {
			log.Printf("vacant_export_excel: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to build report")
		}

		xlsxBytes, err := services.GenerateVacantMediaExcel(data)
		if err != nil {
			log.Printf("vacant_export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Vacant_Media_%s_to_%s.xlsx", data.QueryStart, data.QueryEnd)

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleVacantReportPDF downloads the vacant media report PDF.
// Route: GET /reports/vacant/export/pdf
func HandleVacantReportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		form, start, end, order := vacantQueryFromRequest(e)
		if len(form.Errors) > 0 {
			return ErrorToast(e, http.StatusBadRequest, "Invalid date range")
		}

		data, err := buildVacantExport(app, companyID, GetActiveCompany(e.Request).Name, start, end, order)
		if err != nil {
			log.Printf("vacant_export_pdf: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to build report")
		}

		pdfBytes, err := services.GenerateVacantMediaPDF(data)
		if err != nil {
			log.Printf("vacant_export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Vacant_Media_%s_to_%s.pdf", data.QueryStart, data.QueryEnd)

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
