package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
)

// campaignLine pairs a stored campaign_assets record with its asset and the
// derived pricing.
type campaignLine struct {
	Record *core.Record
	Asset  *core.Record
	Priced services.PricedLine
}

// campaignPeriod rebuilds the billing period from a campaign or plan record.
func campaignPeriod(record *core.Record) (services.BillingPeriod, error) {
	period, err := services.NewBillingPeriod(
		record.GetString("start_date"),
		record.GetString("end_date"),
		services.BillingMode(record.GetString("billing_mode")),
	)
	if err != nil {
		return services.BillingPeriod{}, err
	}
	if months := record.GetFloat("months"); months > 0 {
		period.Months = months
	}
	return period, nil
}

// loadCampaignLines fetches and prices every line of a campaign or plan.
// The parent's tax settings apply uniformly; per-line overrides come from
// the line record itself.
func loadCampaignLines(app *pocketbase.PocketBase, parent *core.Record, linesCollection, parentField string) ([]campaignLine, error) {
	linesCol, err := app.FindCollectionByNameOrId(linesCollection)
	if err != nil {
		return nil, fmt.Errorf("%s collection not found: %w", linesCollection, err)
	}

	records, err := app.FindRecordsByFilter(linesCol,
		parentField+" = {:parent}", "sort_order", 0, 0,
		map[string]any{"parent": parent.Id})
	if err != nil {
		return nil, fmt.Errorf("load %s lines: %w", linesCollection, err)
	}

	period, err := campaignPeriod(parent)
	if err != nil {
		return nil, err
	}
	ctx := services.LineContext{DurationDays: period.Days()}

	var lines []campaignLine
	for _, rec := range records {
		asset, err := app.FindRecordById("media_assets", rec.GetString("asset"))
		if err != nil {
			continue // orphaned line, skip rather than fail the whole view
		}

		item := services.LineItem{
			AssetID:        asset.Id,
			CardRate:       asset.GetFloat("card_rate"),
			BaseRate:       asset.GetFloat("base_rate"),
			PrintingCharge: rec.GetFloat("printing_charge"),
			MountingCharge: rec.GetFloat("mounting_charge"),
			GSTPercent:     parent.GetFloat("gst_percent"),
			GSTType:        services.GSTType(parent.GetString("gst_type")),
			TDSApplicable:  parent.GetBool("tds_applicable"),
			TDSPercent:     parent.GetFloat("tds_percent"),
		}
		if v := rec.GetFloat("sales_price"); v > 0 {
			item.SalesPrice = &v
		}
		if v := rec.GetFloat("negotiated_price"); v > 0 {
			item.NegotiatedPrice = &v
		}
		if v := rec.GetInt("booked_days"); v > 0 {
			item.BookedDays = &v
		}

		priced, err := services.PriceLine(item, ctx)
		if err != nil {
			return nil, fmt.Errorf("price line for asset %s: %w", asset.Id, err)
		}
		lines = append(lines, campaignLine{Record: rec, Asset: asset, Priced: priced})
	}
	return lines, nil
}

// pricedOf extracts the priced values for totalling.
func pricedOf(lines []campaignLine) []services.PricedLine {
	out := make([]services.PricedLine, len(lines))
	for i, l := range lines {
		out[i] = l.Priced
	}
	return out
}

// loadAssetBookings fetches an asset's bookings as service values. Bookings
// belonging to excludeCampaignID are skipped so a campaign never conflicts
// with itself.
func loadAssetBookings(app *pocketbase.PocketBase, assetID, excludeCampaignID string) ([]services.Booking, error) {
	col, err := app.FindCollectionByNameOrId("bookings")
	if err != nil {
		return nil, fmt.Errorf("bookings collection not found: %w", err)
	}

	// A failed lookup must surface: proceeding with an empty list here
	// would let a conflicting asset slip past the overlap checks.
	records, err := app.FindRecordsByFilter(col, "asset = {:asset}", "", 0, 0,
		map[string]any{"asset": assetID})
	if err != nil {
		return nil, fmt.Errorf("load bookings for asset %s: %w", assetID, err)
	}

	var bookings []services.Booking
	for _, rec := range records {
		if excludeCampaignID != "" && rec.GetString("campaign") == excludeCampaignID {
			continue
		}
		start, err := services.ParseDate(rec.GetString("start_date"))
		if err != nil {
			continue
		}
		end, err := services.ParseDate(rec.GetString("end_date"))
		if err != nil {
			continue
		}
		bookings = append(bookings, services.Booking{
			ID:         rec.Id,
			AssetID:    assetID,
			CampaignID: rec.GetString("campaign"),
			Start:      start,
			End:        end,
			Status:     services.BookingStatus(rec.GetString("status")),
		})
	}
	return bookings, nil
}
