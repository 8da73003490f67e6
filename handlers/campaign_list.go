package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/templates"
)

// HandleCampaignList renders the campaign list for the active company.
func HandleCampaignList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		col, err := app.FindCollectionByNameOrId("campaigns")
		if err != nil {
			log.Printf("campaign_list: could not find campaigns collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(col, "company = {:company}", "-start_date", 0, 0,
			map[string]any{"company": companyID})
		if err != nil {
			log.Printf("campaign_list: could not load campaigns: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var data templates.CampaignListData
		for _, rec := range records {
			data.Campaigns = append(data.Campaigns, templates.CampaignRow{
				ID:         rec.Id,
				Name:       rec.GetString("name"),
				ClientName: rec.GetString("client_name"),
				StartDate:  rec.GetString("start_date"),
				EndDate:    rec.GetString("end_date"),
				Status:     rec.GetString("status"),
			})
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CampaignListContent(data)
		} else {
			component = templates.CampaignListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
