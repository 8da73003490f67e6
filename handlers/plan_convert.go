package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandlePlanConvert turns a plan into a draft campaign: the billing state
// and every line are copied, the plan is marked converted and linked to the
// campaign it became. The campaign starts as a draft, so no bookings exist
// until it is confirmed.
// Route: POST /plans/{id}/convert
func HandlePlanConvert(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		plan, err := app.FindRecordById("plans", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Plan not found")
		}
		if plan.GetString("status") == "converted" {
			return ErrorToast(e, http.StatusBadRequest, "Plan is already converted")
		}

		campaignsCol, err := app.FindCollectionByNameOrId("campaigns")
		if err != nil {
			log.Printf("plan_convert: could not find campaigns collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		campaignLinesCol, err := app.FindCollectionByNameOrId("campaign_assets")
		if err != nil {
			log.Printf("plan_convert: could not find campaign_assets collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		planLinesCol, err := app.FindCollectionByNameOrId("plan_assets")
		if err != nil {
			log.Printf("plan_convert: could not find plan_assets collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		planLines, err := app.FindRecordsByFilter(planLinesCol,
			"plan = {:plan}", "sort_order", 0, 0,
			map[string]any{"plan": plan.Id})
		if err != nil {
			log.Printf("plan_convert: could not load plan lines: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var campaignID string
		err = app.RunInTransaction(func(txApp core.App) error {
			campaign := core.NewRecord(campaignsCol)
			campaign.Set("company", plan.GetString("company"))
			campaign.Set("name", plan.GetString("name"))
			campaign.Set("client_name", plan.GetString("client_name"))
			campaign.Set("start_date", plan.GetString("start_date"))
			campaign.Set("end_date", plan.GetString("end_date"))
			campaign.Set("billing_mode", plan.GetString("billing_mode"))
			campaign.Set("months", plan.GetFloat("months"))
			campaign.Set("gst_type", plan.GetString("gst_type"))
			campaign.Set("gst_percent", plan.GetFloat("gst_percent"))
			campaign.Set("tds_applicable", plan.GetBool("tds_applicable"))
			campaign.Set("tds_percent", plan.GetFloat("tds_percent"))
			campaign.Set("status", "draft")
			if err := txApp.Save(campaign); err != nil {
				return fmt.Errorf("save campaign: %w", err)
			}
			campaignID = campaign.Id

			for _, pl := range planLines {
				line := core.NewRecord(campaignLinesCol)
				line.Set("campaign", campaign.Id)
				line.Set("asset", pl.GetString("asset"))
				line.Set("sort_order", pl.GetInt("sort_order"))
				line.Set("sales_price", pl.GetFloat("sales_price"))
				line.Set("negotiated_price", pl.GetFloat("negotiated_price"))
				line.Set("printing_charge", pl.GetFloat("printing_charge"))
				line.Set("mounting_charge", pl.GetFloat("mounting_charge"))
				line.Set("booked_days", pl.GetInt("booked_days"))
				if err := txApp.Save(line); err != nil {
					return fmt.Errorf("copy line for asset %s: %w", pl.GetString("asset"), err)
				}
			}

			plan.Set("status", "converted")
			plan.Set("converted_campaign", campaign.Id)
			return txApp.Save(plan)
		})
		if err != nil {
			log.Printf("plan_convert: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Plan converted to campaign")
		e.Response.Header().Set("HX-Redirect", "/campaigns/"+campaignID)
		return e.String(http.StatusOK, "OK")
	}
}
