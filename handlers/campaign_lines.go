package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
)

// HandleCampaignAddLine adds an asset to a campaign. The asset's bookings
// are checked for overlap with the campaign period first; a conflicting
// asset is rejected with 409 and the conflict details.
// Route: POST /campaigns/{id}/lines
func HandleCampaignAddLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		campaign, err := app.FindRecordById("campaigns", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Campaign not found")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		assetID := strings.TrimSpace(e.Request.FormValue("asset_id"))
		asset, err := app.FindRecordById("media_assets", assetID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Asset not found")
		}
		switch asset.GetString("status") {
		case "blocked", "maintenance":
			return ErrorToast(e, http.StatusConflict, fmt.Sprintf(
				"%s is %s and cannot be booked",
				asset.GetString("location"), asset.GetString("status")))
		}

		period, err := campaignPeriod(campaign)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		bookings, err := loadAssetBookings(app, asset.Id, campaign.Id)
		if err != nil {
			log.Printf("campaign_add_line: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if conflict := services.CheckConflict(bookings, period.Start, period.End); conflict.HasConflict {
			c := conflict.Conflicts[0]
			return ErrorToast(e, http.StatusConflict, fmt.Sprintf(
				"%s is booked %s to %s",
				asset.GetString("location"),
				services.FormatDate(c.Start), services.FormatDate(c.End)))
		}

		linesCol, err := app.FindCollectionByNameOrId("campaign_assets")
		if err != nil {
			log.Printf("campaign_add_line: could not find campaign_assets collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		existing, _ := app.FindRecordsByFilter(linesCol,
			"campaign = {:campaign} && asset = {:asset}", "", 1, 0,
			map[string]any{"campaign": campaign.Id, "asset": asset.Id})
		if len(existing) > 0 {
			return ErrorToast(e, http.StatusBadRequest, "Asset is already on this campaign")
		}

		count, _ := app.FindRecordsByFilter(linesCol, "campaign = {:campaign}", "", 0, 0,
			map[string]any{"campaign": campaign.Id})

		line := core.NewRecord(linesCol)
		line.Set("campaign", campaign.Id)
		line.Set("asset", asset.Id)
		line.Set("sort_order", len(count)+1)
		for _, field := range []string{"sales_price", "negotiated_price", "printing_charge", "mounting_charge"} {
			if v := strings.TrimSpace(e.Request.FormValue(field)); v != "" {
				amount, err := strconv.ParseFloat(v, 64)
				if err != nil || amount < 0 {
					return ErrorToast(e, http.StatusBadRequest, field+" must be a non-negative number")
				}
				line.Set(field, amount)
			}
		}
		if v := strings.TrimSpace(e.Request.FormValue("booked_days")); v != "" {
			days, err := strconv.Atoi(v)
			if err != nil || days <= 0 {
				return ErrorToast(e, http.StatusBadRequest, "booked_days must be a positive number")
			}
			line.Set("booked_days", days)
		}

		if err := app.Save(line); err != nil {
			log.Printf("campaign_add_line: could not save line: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// A confirmed campaign occupies its assets immediately.
		if campaign.GetString("status") == "confirmed" {
			if err := createCampaignBooking(app, campaign, asset.Id); err != nil {
				log.Printf("campaign_add_line: could not create booking: %v", err)
			}
		}

		SetToast(e, "success", "Asset added to campaign")
		return HandleCampaignView(app)(e)
	}
}

// HandleCampaignLineUpdate patches the pricing fields of an existing line.
// Totals are derived on every read, so no recalculation is stored here.
// Route: POST /campaigns/{id}/lines/{lineId}
func HandleCampaignLineUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		campaign, err := app.FindRecordById("campaigns", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Campaign not found")
		}
		line, err := app.FindRecordById("campaign_assets", e.Request.PathValue("lineId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Line not found")
		}
		if line.GetString("campaign") != campaign.Id {
			return ErrorToast(e, http.StatusNotFound, "Line not found")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		for _, field := range []string{"sales_price", "negotiated_price", "printing_charge", "mounting_charge"} {
			if _, ok := e.Request.Form[field]; !ok {
				continue
			}
			v := strings.TrimSpace(e.Request.FormValue(field))
			if v == "" {
				line.Set(field, 0)
				continue
			}
			amount, err := strconv.ParseFloat(v, 64)
			if err != nil || amount < 0 {
				return ErrorToast(e, http.StatusBadRequest, field+" must be a non-negative number")
			}
			line.Set(field, amount)
		}
		if _, ok := e.Request.Form["booked_days"]; ok {
			v := strings.TrimSpace(e.Request.FormValue("booked_days"))
			if v == "" {
				line.Set("booked_days", 0)
			} else {
				days, err := strconv.Atoi(v)
				if err != nil || days <= 0 {
					return ErrorToast(e, http.StatusBadRequest, "booked_days must be a positive number")
				}
				line.Set("booked_days", days)
			}
		}

		if err := app.Save(line); err != nil {
			log.Printf("campaign_line_update: could not save line: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Line updated")
		return HandleCampaignView(app)(e)
	}
}

// HandleCampaignLineDelete removes a line and, for confirmed campaigns,
// the booking it created.
// Route: DELETE /campaigns/{id}/lines/{lineId}
func HandleCampaignLineDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		campaign, err := app.FindRecordById("campaigns", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Campaign not found")
		}
		line, err := app.FindRecordById("campaign_assets", e.Request.PathValue("lineId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Line not found")
		}
		if line.GetString("campaign") != campaign.Id {
			return ErrorToast(e, http.StatusNotFound, "Line not found")
		}

		assetID := line.GetString("asset")
		if err := app.Delete(line); err != nil {
			log.Printf("campaign_line_delete: could not delete line: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		bookingsCol, err := app.FindCollectionByNameOrId("bookings")
		if err == nil {
			bookings, _ := app.FindRecordsByFilter(bookingsCol,
				"campaign = {:campaign} && asset = {:asset}", "", 0, 0,
				map[string]any{"campaign": campaign.Id, "asset": assetID})
			for _, b := range bookings {
				if err := app.Delete(b); err != nil {
					log.Printf("campaign_line_delete: could not delete booking %s: %v", b.Id, err)
				}
			}
		}

		SetToast(e, "success", "Asset removed from campaign")
		return HandleCampaignView(app)(e)
	}
}

// createCampaignBooking records a confirmed occupancy of one asset over the
// campaign dates.
func createCampaignBooking(app *pocketbase.PocketBase, campaign *core.Record, assetID string) error {
	col, err := app.FindCollectionByNameOrId("bookings")
	if err != nil {
		return fmt.Errorf("bookings collection not found: %w", err)
	}

	booking := core.NewRecord(col)
	booking.Set("company", campaign.GetString("company"))
	booking.Set("asset", assetID)
	booking.Set("campaign", campaign.Id)
	booking.Set("start_date", campaign.GetString("start_date"))
	booking.Set("end_date", campaign.GetString("end_date"))
	booking.Set("status", "confirmed")
	return app.Save(booking)
}
