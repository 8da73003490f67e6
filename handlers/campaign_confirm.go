package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
)

// HandleCampaignConfirm moves a draft campaign to confirmed, creating one
// booking per line. Every line is conflict-checked first; a single conflict
// blocks the whole confirmation with 409 so no partial occupancy is left
// behind.
// Route: POST /campaigns/{id}/confirm
func HandleCampaignConfirm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		campaign, err := app.FindRecordById("campaigns", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Campaign not found")
		}
		if campaign.GetString("status") != "draft" {
			return ErrorToast(e, http.StatusBadRequest, "Only draft campaigns can be confirmed")
		}

		period, err := campaignPeriod(campaign)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		lines, err := loadCampaignLines(app, campaign, "campaign_assets", "campaign")
		if err != nil {
			log.Printf("campaign_confirm: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if len(lines) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Add at least one asset before confirming")
		}

		for _, l := range lines {
			bookings, err := loadAssetBookings(app, l.Asset.Id, campaign.Id)
			if err != nil {
				log.Printf("campaign_confirm: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			if conflict := services.CheckConflict(bookings, period.Start, period.End); conflict.HasConflict {
				c := conflict.Conflicts[0]
				return ErrorToast(e, http.StatusConflict, fmt.Sprintf(
					"%s is booked %s to %s",
					l.Asset.GetString("location"),
					services.FormatDate(c.Start), services.FormatDate(c.End)))
			}
		}

		err = app.RunInTransaction(func(txApp core.App) error {
			bookingsCol, err := txApp.FindCollectionByNameOrId("bookings")
			if err != nil {
				return fmt.Errorf("bookings collection not found: %w", err)
			}
			for _, l := range lines {
				booking := core.NewRecord(bookingsCol)
				booking.Set("company", campaign.GetString("company"))
				booking.Set("asset", l.Asset.Id)
				booking.Set("campaign", campaign.Id)
				booking.Set("start_date", campaign.GetString("start_date"))
				booking.Set("end_date", campaign.GetString("end_date"))
				booking.Set("status", "confirmed")
				if err := txApp.Save(booking); err != nil {
					return fmt.Errorf("save booking for asset %s: %w", l.Asset.Id, err)
				}
			}
			campaign.Set("status", "confirmed")
			return txApp.Save(campaign)
		})
		if err != nil {
			log.Printf("campaign_confirm: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Campaign confirmed")
		return HandleCampaignView(app)(e)
	}
}

// HandleCampaignDelete deletes a campaign. Its lines cascade away and its
// bookings are removed explicitly, freeing the assets.
// Route: DELETE /campaigns/{id}
func HandleCampaignDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		campaign, err := app.FindRecordById("campaigns", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Campaign not found")
		}

		bookingsCol, err := app.FindCollectionByNameOrId("bookings")
		if err == nil {
			bookings, _ := app.FindRecordsByFilter(bookingsCol,
				"campaign = {:campaign}", "", 0, 0,
				map[string]any{"campaign": campaign.Id})
			for _, b := range bookings {
				if err := app.Delete(b); err != nil {
					log.Printf("campaign_delete: could not delete booking %s: %v", b.Id, err)
				}
			}
		}

		if err := app.Delete(campaign); err != nil {
			log.Printf("campaign_delete: could not delete campaign: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Campaign deleted")
		return HandleCampaignList(app)(e)
	}
}
