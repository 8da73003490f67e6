// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCompany creates a company record with the given name and returns it.
func CreateTestCompany(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		t.Fatalf("failed to find companies collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("gstin", "27AABCS4321F1Z5")
	record.Set("state", "Maharashtra")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test company: %v", err)
	}

	return record
}

// CreateTestAsset creates a media asset record linked to a company.
func CreateTestAsset(t *testing.T, app *pocketbase.PocketBase, companyID, location string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("media_assets")
	if err != nil {
		t.Fatalf("failed to find media_assets collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("media_type", "Hoarding")
	record.Set("city", "Pune")
	record.Set("area", "Baner")
	record.Set("location", location)
	record.Set("dimensions", "40x20")
	record.Set("sqft", 800.0)
	record.Set("illumination", "Frontlit")
	record.Set("card_rate", 50000.0)
	record.Set("base_rate", 35000.0)
	record.Set("status", "available")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test asset: %v", err)
	}

	return record
}

// CreateTestCampaign creates a campaign record linked to a company.
func CreateTestCampaign(t *testing.T, app *pocketbase.PocketBase, companyID, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("campaigns")
	if err != nil {
		t.Fatalf("failed to find campaigns collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("name", name)
	record.Set("client_name", "Test Client")
	record.Set("start_date", "2025-07-01")
	record.Set("end_date", "2025-07-31")
	record.Set("billing_mode", "days")
	record.Set("months", 1.0)
	record.Set("gst_type", "cgst_sgst")
	record.Set("gst_percent", 18.0)
	record.Set("status", "draft")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test campaign: %v", err)
	}

	return record
}

// CreateTestCampaignAsset links an asset into a campaign.
func CreateTestCampaignAsset(t *testing.T, app *pocketbase.PocketBase, campaignID, assetID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("campaign_assets")
	if err != nil {
		t.Fatalf("failed to find campaign_assets collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("campaign", campaignID)
	record.Set("asset", assetID)
	record.Set("sort_order", 1)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test campaign asset: %v", err)
	}

	return record
}

// CreateTestPlan creates a plan record linked to a company.
func CreateTestPlan(t *testing.T, app *pocketbase.PocketBase, companyID, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("plans")
	if err != nil {
		t.Fatalf("failed to find plans collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("name", name)
	record.Set("client_name", "Prospect Client")
	record.Set("start_date", "2025-08-01")
	record.Set("end_date", "2025-08-31")
	record.Set("billing_mode", "days")
	record.Set("months", 1.0)
	record.Set("gst_type", "cgst_sgst")
	record.Set("gst_percent", 18.0)
	record.Set("status", "draft")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test plan: %v", err)
	}

	return record
}

// CreateTestPlanAsset links an asset into a plan.
func CreateTestPlanAsset(t *testing.T, app *pocketbase.PocketBase, planID, assetID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("plan_assets")
	if err != nil {
		t.Fatalf("failed to find plan_assets collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("plan", planID)
	record.Set("asset", assetID)
	record.Set("sort_order", 1)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test plan asset: %v", err)
	}

	return record
}

// CreateTestBooking creates a confirmed booking for an asset over a date range.
func CreateTestBooking(t *testing.T, app *pocketbase.PocketBase, companyID, assetID, campaignID, start, end string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("bookings")
	if err != nil {
		t.Fatalf("failed to find bookings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("asset", assetID)
	if campaignID != "" {
		record.Set("campaign", campaignID)
	}
	record.Set("start_date", start)
	record.Set("end_date", end)
	record.Set("status", "confirmed")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test booking: %v", err)
	}

	return record
}

// CreateTestExpense creates an expense record linked to a company.
func CreateTestExpense(t *testing.T, app *pocketbase.PocketBase, companyID, vendorName string, amount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("expenses")
	if err != nil {
		t.Fatalf("failed to find expenses collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("vendor_name", vendorName)
	record.Set("category", "printing")
	record.Set("amount", amount)
	record.Set("gst_type", "cgst_sgst")
	record.Set("gst_percent", 18.0)
	record.Set("expense_date", "2025-07-01")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test expense: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
