package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the companies, media_assets,
// campaigns, campaign_assets, plans, plan_assets, bookings and expenses
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	companies := ensureCollection(app, "companies", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "gstin", Required: false})
		c.Fields.Add(&core.TextField{Name: "pan", Required: false})
		c.Fields.Add(&core.TextField{Name: "state", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	mediaAssets := ensureCollection(app, "media_assets", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "media_type", Required: true})
		c.Fields.Add(&core.TextField{Name: "city", Required: true})
		c.Fields.Add(&core.TextField{Name: "area", Required: false})
		c.Fields.Add(&core.TextField{Name: "location", Required: true})
		c.Fields.Add(&core.TextField{Name: "direction", Required: false})
		c.Fields.Add(&core.TextField{Name: "dimensions", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sqft", Required: false})
		c.Fields.Add(&core.TextField{Name: "illumination", Required: false})
		c.Fields.Add(&core.NumberField{Name: "card_rate", Required: true})
		c.Fields.Add(&core.NumberField{Name: "base_rate", Required: false})
		c.Fields.Add(&core.TextField{Name: "available_from", Required: false})
		// Stored inventory state; computed availability stays booking-driven.
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"available", "booked", "blocked", "maintenance"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	campaigns := ensureCollection(app, "campaigns", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "client_gstin", Required: false})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: true})
		c.Fields.Add(&core.TextField{Name: "end_date", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "billing_mode",
			Required:  false,
			Values:    []string{"month", "days"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "months", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "gst_type",
			Required:  false,
			Values:    []string{"cgst_sgst", "igst", "none"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "gst_percent", Required: false})
		c.Fields.Add(&core.BoolField{Name: "tds_applicable", Required: false})
		c.Fields.Add(&core.NumberField{Name: "tds_percent", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"draft", "confirmed", "completed", "cancelled"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "campaign_assets", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "campaign",
			Required:      true,
			CollectionId:  campaigns.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "asset",
			Required:      true,
			CollectionId:  mediaAssets.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sales_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "negotiated_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "printing_charge", Required: false})
		c.Fields.Add(&core.NumberField{Name: "mounting_charge", Required: false})
		c.Fields.Add(&core.NumberField{Name: "booked_days", Required: false})
	})

	plans := ensureCollection(app, "plans", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "client_gstin", Required: false})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: true})
		c.Fields.Add(&core.TextField{Name: "end_date", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "billing_mode",
			Required:  false,
			Values:    []string{"month", "days"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "months", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "gst_type",
			Required:  false,
			Values:    []string{"cgst_sgst", "igst", "none"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "gst_percent", Required: false})
		c.Fields.Add(&core.BoolField{Name: "tds_applicable", Required: false})
		c.Fields.Add(&core.NumberField{Name: "tds_percent", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"draft", "sent", "converted"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "converted_campaign",
			Required:      false,
			CollectionId:  campaigns.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "plan_assets", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "plan",
			Required:      true,
			CollectionId:  plans.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "asset",
			Required:      true,
			CollectionId:  mediaAssets.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sales_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "negotiated_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "printing_charge", Required: false})
		c.Fields.Add(&core.NumberField{Name: "mounting_charge", Required: false})
		c.Fields.Add(&core.NumberField{Name: "booked_days", Required: false})
	})

	ensureCollection(app, "bookings", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "asset",
			Required:      true,
			CollectionId:  mediaAssets.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "campaign",
			Required:      false,
			CollectionId:  campaigns.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: true})
		c.Fields.Add(&core.TextField{Name: "end_date", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"confirmed", "cancelled", "completed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "expenses", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      true,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "campaign",
			Required:      false,
			CollectionId:  campaigns.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "asset",
			Required:      false,
			CollectionId:  mediaAssets.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "vendor_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "vendor_gstin", Required: false})
		c.Fields.Add(&core.TextField{Name: "vendor_pan", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  false,
			Values:    []string{"printing", "mounting", "electricity", "rent", "municipal_tax", "other"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "gst_type",
			Required:  false,
			Values:    []string{"cgst_sgst", "igst", "none"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "gst_percent", Required: false})
		c.Fields.Add(&core.BoolField{Name: "tds_applicable", Required: false})
		c.Fields.Add(&core.NumberField{Name: "tds_percent", Required: false})
		c.Fields.Add(&core.TextField{Name: "expense_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
