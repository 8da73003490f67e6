package collections_test

import (
	"testing"

	"adbooth/collections"
	"adbooth/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	// Verify company was created
	companiesCol, _ := app.FindCollectionByNameOrId("companies")
	companies, err := app.FindAllRecords(companiesCol)
	if err != nil {
		t.Fatalf("query companies error: %v", err)
	}
	if len(companies) != 1 {
		t.Fatalf("expected 1 company, got %d", len(companies))
	}
	if companies[0].GetString("name") != "Skyline Outdoor Media Pvt. Ltd." {
		t.Errorf("company name = %q", companies[0].GetString("name"))
	}

	// Verify assets were created and linked to the company
	assetsCol, _ := app.FindCollectionByNameOrId("media_assets")
	assets, _ := app.FindAllRecords(assetsCol)
	if len(assets) != 8 {
		t.Fatalf("expected 8 assets, got %d", len(assets))
	}
	for _, a := range assets {
		if a.GetString("company") != companies[0].Id {
			t.Errorf("asset %q not linked to company", a.GetString("location"))
		}
		if a.GetFloat("sqft") <= 0 {
			t.Errorf("asset %q has no sqft", a.GetString("location"))
		}
	}

	// Verify campaigns
	campaignsCol, _ := app.FindCollectionByNameOrId("campaigns")
	campaigns, _ := app.FindAllRecords(campaignsCol)
	if len(campaigns) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(campaigns))
	}

	// Verify campaign lines exist
	linesCol, _ := app.FindCollectionByNameOrId("campaign_assets")
	lines, _ := app.FindAllRecords(linesCol)
	if len(lines) != 5 {
		t.Errorf("expected 5 campaign lines, got %d", len(lines))
	}

	// Only the confirmed campaign creates bookings
	bookingsCol, _ := app.FindCollectionByNameOrId("bookings")
	bookings, _ := app.FindAllRecords(bookingsCol)
	if len(bookings) != 3 {
		t.Errorf("expected 3 bookings for the confirmed campaign, got %d", len(bookings))
	}

	// Verify expenses
	expensesCol, _ := app.FindCollectionByNameOrId("expenses")
	expenses, _ := app.FindAllRecords(expensesCol)
	if len(expenses) != 3 {
		t.Errorf("expected 3 expenses, got %d", len(expenses))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	companiesCol, _ := app.FindCollectionByNameOrId("companies")
	companies, _ := app.FindAllRecords(companiesCol)
	if len(companies) != 1 {
		t.Errorf("expected 1 company after idempotent seed, got %d", len(companies))
	}

	assetsCol, _ := app.FindCollectionByNameOrId("media_assets")
	assets, _ := app.FindAllRecords(assetsCol)
	if len(assets) != 8 {
		t.Errorf("expected 8 assets after idempotent seed, got %d", len(assets))
	}
}

func TestSeed_ConfirmedCampaignDetails(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	campaignsCol, _ := app.FindCollectionByNameOrId("campaigns")
	confirmed, _ := app.FindRecordsByFilter(
		campaignsCol,
		"status = 'confirmed'",
		"", 1, 0,
		nil,
	)
	if len(confirmed) == 0 {
		t.Fatal("confirmed campaign not found")
	}

	c := confirmed[0]
	if c.GetString("name") != "Monsoon FMCG Burst" {
		t.Errorf("name = %q", c.GetString("name"))
	}
	if c.GetString("billing_mode") != "month" {
		t.Errorf("billing_mode = %q, want month", c.GetString("billing_mode"))
	}
	// 2025-07-01 to 2025-08-30 is 60 days, 2 billing months.
	if got := c.GetFloat("months"); got != 2 {
		t.Errorf("months = %v, want 2", got)
	}
	if !c.GetBool("tds_applicable") {
		t.Error("expected tds_applicable")
	}
}

func TestSeed_SkipsWhenDataExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Create a company first (not via Seed)
	testhelpers.CreateTestCompany(t, app, "Existing Co")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	companiesCol, _ := app.FindCollectionByNameOrId("companies")
	companies, _ := app.FindAllRecords(companiesCol)
	if len(companies) != 1 {
		t.Errorf("expected 1 company (pre-existing only), got %d", len(companies))
	}
	if companies[0].GetString("name") != "Existing Co" {
		t.Errorf("expected pre-existing company, got %q", companies[0].GetString("name"))
	}

	assetsCol, _ := app.FindCollectionByNameOrId("media_assets")
	assets, _ := app.FindAllRecords(assetsCol)
	if len(assets) != 0 {
		t.Errorf("expected 0 seeded assets, got %d", len(assets))
	}
}
