package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type assetDef struct {
	mediaType     string
	city          string
	area          string
	location      string
	direction     string
	dimensions    string
	sqft          float64
	illumination  string
	cardRate      float64
	baseRate      float64
	availableFrom string
}

type lineDef struct {
	sortOrder       int
	assetIdx        int // index into the created asset records
	negotiatedPrice float64
	printingCharge  float64
	mountingCharge  float64
}

type campaignDef struct {
	name        string
	clientName  string
	clientGSTIN string
	startDate   string
	endDate     string
	billingMode string
	gstType     string
	gstPercent  float64
	tdsPercent  float64
	status      string
	lines       []lineDef
}

type expenseDef struct {
	vendorName  string
	vendorGSTIN string
	category    string
	amount      float64
	gstType     string
	gstPercent  float64
	tdsPercent  float64
	expenseDate string
	notes       string
}

// Seed populates all collections with realistic OOH media inventory data.
// It is safe to call on every startup because it returns early if any
// company records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if companies already exist ──────────────────
	companiesCol, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		return fmt.Errorf("seed: could not find companies collection: %w", err)
	}
	existing, err := app.FindAllRecords(companiesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query companies: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: companies collection is empty – inserting seed data …")

	// ── lookup helper collections ────────────────────────────────────
	assetsCol, err := app.FindCollectionByNameOrId("media_assets")
	if err != nil {
		return fmt.Errorf("seed: could not find media_assets collection: %w", err)
	}
	campaignsCol, err := app.FindCollectionByNameOrId("campaigns")
	if err != nil {
		return fmt.Errorf("seed: could not find campaigns collection: %w", err)
	}
	campaignAssetsCol, err := app.FindCollectionByNameOrId("campaign_assets")
	if err != nil {
		return fmt.Errorf("seed: could not find campaign_assets collection: %w", err)
	}
	bookingsCol, err := app.FindCollectionByNameOrId("bookings")
	if err != nil {
		return fmt.Errorf("seed: could not find bookings collection: %w", err)
	}
	expensesCol, err := app.FindCollectionByNameOrId("expenses")
	if err != nil {
		return fmt.Errorf("seed: could not find expenses collection: %w", err)
	}

	// ── helper: create media asset ───────────────────────────────────
	createAsset := func(companyID string, d assetDef) (*core.Record, error) {
		sqft := d.sqft
		if sqft == 0 {
			sqft = services.ParseDimensions(d.dimensions).TotalSqft
		}
		r := core.NewRecord(assetsCol)
		r.Set("company", companyID)
		r.Set("media_type", d.mediaType)
		r.Set("city", d.city)
		r.Set("area", d.area)
		r.Set("location", d.location)
		r.Set("direction", d.direction)
		r.Set("dimensions", d.dimensions)
		r.Set("sqft", sqft)
		r.Set("illumination", d.illumination)
		r.Set("card_rate", d.cardRate)
		r.Set("base_rate", d.baseRate)
		r.Set("available_from", d.availableFrom)
		r.Set("status", "available")
		if err := app.Save(r); err != nil {
			return nil, fmt.Errorf("seed: save asset %q: %w", d.location, err)
		}
		return r, nil
	}

	// ── helper: create campaign with lines and bookings ──────────────
	createCampaign := func(companyID string, assets []*core.Record, d campaignDef) error {
		period, err := services.NewBillingPeriod(d.startDate, d.endDate, services.BillingMode(d.billingMode))
		if err != nil {
			return fmt.Errorf("seed: campaign %q dates: %w", d.name, err)
		}

		r := core.NewRecord(campaignsCol)
		r.Set("company", companyID)
		r.Set("name", d.name)
		r.Set("client_name", d.clientName)
		r.Set("client_gstin", d.clientGSTIN)
		r.Set("start_date", d.startDate)
		r.Set("end_date", d.endDate)
		r.Set("billing_mode", d.billingMode)
		r.Set("months", period.Months)
		r.Set("gst_type", d.gstType)
		r.Set("gst_percent", d.gstPercent)
		r.Set("tds_applicable", d.tdsPercent > 0)
		r.Set("tds_percent", d.tdsPercent)
		r.Set("status", d.status)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save campaign %q: %w", d.name, err)
		}

		for _, l := range d.lines {
			asset := assets[l.assetIdx]

			lr := core.NewRecord(campaignAssetsCol)
			lr.Set("campaign", r.Id)
			lr.Set("asset", asset.Id)
			lr.Set("sort_order", l.sortOrder)
			if l.negotiatedPrice > 0 {
				lr.Set("negotiated_price", l.negotiatedPrice)
			}
			lr.Set("printing_charge", l.printingCharge)
			lr.Set("mounting_charge", l.mountingCharge)
			if err := app.Save(lr); err != nil {
				return fmt.Errorf("seed: save campaign line for %q: %w", asset.GetString("location"), err)
			}

			// Confirmed campaigns occupy their assets.
			if d.status == "confirmed" {
				br := core.NewRecord(bookingsCol)
				br.Set("company", companyID)
				br.Set("asset", asset.Id)
				br.Set("campaign", r.Id)
				br.Set("start_date", d.startDate)
				br.Set("end_date", d.endDate)
				br.Set("status", "confirmed")
				if err := app.Save(br); err != nil {
					return fmt.Errorf("seed: save booking for %q: %w", asset.GetString("location"), err)
				}
			}
		}
		return nil
	}

	// ── helper: create expense ───────────────────────────────────────
	createExpense := func(companyID, campaignID string, d expenseDef) error {
		r := core.NewRecord(expensesCol)
		r.Set("company", companyID)
		if campaignID != "" {
			r.Set("campaign", campaignID)
		}
		r.Set("vendor_name", d.vendorName)
		r.Set("vendor_gstin", d.vendorGSTIN)
		r.Set("category", d.category)
		r.Set("amount", d.amount)
		r.Set("gst_type", d.gstType)
		r.Set("gst_percent", d.gstPercent)
		r.Set("tds_applicable", d.tdsPercent > 0)
		r.Set("tds_percent", d.tdsPercent)
		r.Set("expense_date", d.expenseDate)
		r.Set("notes", d.notes)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save expense %q: %w", d.vendorName, err)
		}
		return nil
	}

	// ══════════════════════════════════════════════════════════════════
	// COMPANY: Skyline Outdoor Media
	// ══════════════════════════════════════════════════════════════════

	c1 := core.NewRecord(companiesCol)
	c1.Set("name", "Skyline Outdoor Media Pvt. Ltd.")
	c1.Set("gstin", "27AABCS4321F1Z5")
	c1.Set("pan", "AABCS4321F")
	c1.Set("state", "Maharashtra")
	c1.Set("address", "402, Trade Center, Senapati Bapat Road, Pune")
	c1.Set("phone", "020-25670044")
	c1.Set("email", "accounts@skylineooh.in")
	if err := app.Save(c1); err != nil {
		return fmt.Errorf("seed: save company 1: %w", err)
	}

	assetDefs := []assetDef{
		{mediaType: "Hoarding", city: "Pune", area: "Baner", location: "Baner Road, opp. Sadanand Hotel", direction: "East Facing", dimensions: "40x20", illumination: "Frontlit", cardRate: 85000, baseRate: 55000, availableFrom: "2025-06-01"},
		{mediaType: "Hoarding", city: "Pune", area: "Aundh", location: "DP Road, near Parihar Chowk", direction: "West Facing", dimensions: "30x15", illumination: "Backlit", cardRate: 65000, baseRate: 42000, availableFrom: "2025-06-01"},
		{mediaType: "Unipole", city: "Pune", area: "Hinjewadi", location: "Phase 1 Entry, Rajiv Gandhi Infotech Park", direction: "Towards Wakad", dimensions: "25x5-12x3", illumination: "LED", cardRate: 120000, baseRate: 80000, availableFrom: "2025-06-01"},
		{mediaType: "Gantry", city: "Pune", area: "Shivajinagar", location: "JM Road Gantry, near Deccan", dimensions: "60x10", illumination: "Frontlit", cardRate: 150000, baseRate: 95000, availableFrom: "2025-06-01"},
		{mediaType: "Bus Shelter", city: "Pune", area: "Koregaon Park", location: "North Main Road, Lane 5", dimensions: "12x6", illumination: "Backlit", cardRate: 28000, baseRate: 16000, availableFrom: "2025-06-01"},
		{mediaType: "Hoarding", city: "Mumbai", area: "Andheri", location: "Western Express Highway, near Metro", direction: "North Facing", dimensions: "50x25", illumination: "LED", cardRate: 250000, baseRate: 170000, availableFrom: "2025-06-01"},
		{mediaType: "Hoarding", city: "Mumbai", area: "Bandra", location: "Linking Road, opp. National College", direction: "South Facing", dimensions: "40x20", illumination: "Frontlit", cardRate: 220000, baseRate: 150000, availableFrom: "2025-06-01"},
		{mediaType: "LED Screen", city: "Mumbai", area: "Lower Parel", location: "Senapati Bapat Marg, Phoenix Mills junction", dimensions: "20x10", illumination: "LED", cardRate: 350000, baseRate: 240000, availableFrom: "2025-06-01"},
	}

	assets := make([]*core.Record, 0, len(assetDefs))
	for _, d := range assetDefs {
		a, err := createAsset(c1.Id, d)
		if err != nil {
			return err
		}
		assets = append(assets, a)
	}

	// ── Campaigns ─────────────────────────────────────────────────────
	if err := createCampaign(c1.Id, assets, campaignDef{
		name: "Monsoon FMCG Burst", clientName: "Everfresh Foods Ltd.", clientGSTIN: "27AAACE2345F1Z5",
		startDate: "2025-07-01", endDate: "2025-08-30", billingMode: "month",
		gstType: "cgst_sgst", gstPercent: 18, tdsPercent: 2, status: "confirmed",
		lines: []lineDef{
			{sortOrder: 1, assetIdx: 0, negotiatedPrice: 78000, printingCharge: 9600, mountingCharge: 4800},
			{sortOrder: 2, assetIdx: 2, negotiatedPrice: 110000, printingCharge: 0, mountingCharge: 0},
			{sortOrder: 3, assetIdx: 4, printingCharge: 2400, mountingCharge: 1200},
		},
	}); err != nil {
		return err
	}

	if err := createCampaign(c1.Id, assets, campaignDef{
		name: "Festive Auto Launch", clientName: "Horizon Motors", clientGSTIN: "24AABCH6789G1Z5",
		startDate: "2025-09-15", endDate: "2025-10-30", billingMode: "days",
		gstType: "igst", gstPercent: 18, status: "draft",
		lines: []lineDef{
			{sortOrder: 1, assetIdx: 5, negotiatedPrice: 230000},
			{sortOrder: 2, assetIdx: 7, negotiatedPrice: 320000, printingCharge: 15000, mountingCharge: 8000},
		},
	}); err != nil {
		return err
	}

	// ── Expenses ──────────────────────────────────────────────────────
	if err := createExpense(c1.Id, "", expenseDef{
		vendorName: "Prakash Flex Printers", vendorGSTIN: "27AADFP1234K1Z5",
		category: "printing", amount: 18500, gstType: "cgst_sgst", gstPercent: 18,
		tdsPercent: 2, expenseDate: "2025-06-28", notes: "Flex for Baner Road hoarding",
	}); err != nil {
		return err
	}
	if err := createExpense(c1.Id, "", expenseDef{
		vendorName: "PMC Sky Signs Department",
		category: "municipal_tax", amount: 45000, gstType: "none",
		expenseDate: "2025-07-05", notes: "Quarterly sky sign license fee",
	}); err != nil {
		return err
	}
	if err := createExpense(c1.Id, "", expenseDef{
		vendorName: "Deluxe Mounting Services", vendorGSTIN: "27AAEFD5678L1Z5",
		category: "mounting", amount: 9200, gstType: "cgst_sgst", gstPercent: 18,
		expenseDate: "2025-07-02",
	}); err != nil {
		return err
	}

	log.Println("seed: all seed data inserted successfully (1 company, 8 assets, 2 campaigns, 3 expenses)")
	return nil
}
