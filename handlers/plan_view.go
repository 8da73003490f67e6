package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
	"adbooth/templates"
)

// HandlePlanView renders a plan with its priced lines and totals. The lines
// are priced exactly like campaign lines; a plan just never books anything.
// Route: GET /plans/{id}
func HandlePlanView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("plans", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Plan not found")
		}

		data, err := buildPlanViewData(app, record)
		if err != nil {
			log.Printf("plan_view: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.PlanViewContent(data)
		} else {
			component = templates.PlanViewPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildPlanViewData assembles the display model of a plan.
func buildPlanViewData(app *pocketbase.PocketBase, record *core.Record) (templates.PlanViewData, error) {
	period, err := campaignPeriod(record)
	if err != nil {
		return templates.PlanViewData{}, err
	}

	lines, err := loadCampaignLines(app, record, "plan_assets", "plan")
	if err != nil {
		return templates.PlanViewData{}, err
	}
	totals := services.TotalLines(pricedOf(lines))

	data := templates.PlanViewData{
		ID:           record.Id,
		Name:         record.GetString("name"),
		ClientName:   record.GetString("client_name"),
		StartDate:    record.GetString("start_date"),
		EndDate:      record.GetString("end_date"),
		BillingMode:  record.GetString("billing_mode"),
		Months:       strconv.FormatFloat(period.Months, 'f', -1, 64),
		DurationDays: period.Days(),
		Status:       record.GetString("status"),
		SubTotal:     services.FormatINR(totals.SubTotal),
		TaxAmount:    services.FormatINR(totals.TaxAmount),
		TotalWithTax: services.FormatINR(totals.TotalWithTax),
		NetPayable:   services.FormatINR(totals.NetPayable),
	}
	if totals.TDSAmount != 0 {
		data.TDSAmount = services.FormatINR(totals.TDSAmount)
	}

	for _, l := range lines {
		label := l.Asset.GetString("location")
		if area := l.Asset.GetString("area"); area != "" {
			label += ", " + area
		}
		data.Lines = append(data.Lines, templates.CampaignLineView{
			LineID:       l.Record.Id,
			AssetLabel:   label,
			Dimensions:   l.Asset.GetString("dimensions"),
			BookedDays:   l.Priced.BookedDays,
			MonthlyRate:  services.FormatINR(l.Priced.EffectivePrice),
			LineTotal:    services.FormatINR(l.Priced.LineTotal),
			TotalWithTax: services.FormatINR(l.Priced.TotalWithTax),
		})
	}
	return data, nil
}
