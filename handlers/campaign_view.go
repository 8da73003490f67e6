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

// HandleCampaignView renders a campaign with its priced lines and totals.
// Pricing is derived on every read; nothing monetary is cached in the
// database.
func HandleCampaignView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("campaigns", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Campaign not found")
		}

		data, err := buildCampaignViewData(app, record)
		if err != nil {
			log.Printf("campaign_view: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CampaignViewContent(data)
		} else {
			component = templates.CampaignViewPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildCampaignViewData assembles the display model of a campaign.
func buildCampaignViewData(app *pocketbase.PocketBase, record *core.Record) (templates.CampaignViewData, error) {
	period, err := campaignPeriod(record)
	if err != nil {
		return templates.CampaignViewData{}, err
	}

	lines, err := loadCampaignLines(app, record, "campaign_assets", "campaign")
	if err != nil {
		return templates.CampaignViewData{}, err
	}
	totals := services.TotalLines(pricedOf(lines))

	data := templates.CampaignViewData{
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
