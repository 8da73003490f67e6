package services

// TemplateField describes one column in a media asset import Excel template.
type TemplateField struct {
	Key            string // internal name, matches PocketBase field name
	Label          string // human-readable header shown in Excel
	Description    string // shown on the Instructions sheet
	FormatRule     string // e.g. "WxH or WxH-WxH", ""
	ExampleValue   string // shown on the Instructions sheet
	AlwaysRequired bool
}

// MediaTypes lists the supported outdoor media formats, used for template
// dropdowns and import validation.
var MediaTypes = []string{
	"Hoarding",
	"Unipole",
	"Gantry",
	"Bus Shelter",
	"Pole Kiosk",
	"Wall Wrap",
	"LED Screen",
}

// AssetStatuses lists the stored inventory states. Blocked and maintenance
// assets are kept out of campaign lines and the vacant report; computed
// availability is derived from bookings regardless of this field.
var AssetStatuses = []string{"available", "booked", "blocked", "maintenance"}

// IlluminationTypes lists the lighting options for an asset.
var IlluminationTypes = []string{
	"Frontlit",
	"Backlit",
	"Non-lit",
	"LED",
}

// AssetTemplateFields returns the ordered list of columns for media asset
// import templates.
func AssetTemplateFields() []TemplateField {
	return []TemplateField{
		{Key: "media_type", Label: "Media Type", Description: "Outdoor media format (select from dropdown)", ExampleValue: "Hoarding", AlwaysRequired: true},
		{Key: "city", Label: "City", Description: "City name", ExampleValue: "Pune", AlwaysRequired: true},
		{Key: "area", Label: "Area", Description: "Locality within the city", ExampleValue: "Baner"},
		{Key: "location", Label: "Location", Description: "Street-level site description", ExampleValue: "Baner Road, opp. City Mall", AlwaysRequired: true},
		{Key: "direction", Label: "Direction", Description: "Traffic-facing direction", ExampleValue: "East Facing"},
		{Key: "dimensions", Label: "Dimensions", Description: "Width x height in feet; multi-face sites join faces with a hyphen", FormatRule: "WxH or WxH-WxH", ExampleValue: "40x20", AlwaysRequired: true},
		{Key: "sqft", Label: "Sqft", Description: "Total area; left blank it is derived from Dimensions", FormatRule: "Positive number", ExampleValue: "800"},
		{Key: "illumination", Label: "Illumination", Description: "Lighting type (select from dropdown)", ExampleValue: "Backlit"},
		{Key: "card_rate", Label: "Card Rate", Description: "Listed monthly rate in INR", FormatRule: "Positive number", ExampleValue: "50000", AlwaysRequired: true},
		{Key: "base_rate", Label: "Base Rate", Description: "Internal cost per month in INR", FormatRule: "Positive number", ExampleValue: "35000"},
		{Key: "available_from", Label: "Available From", Description: "Date the asset is next free", FormatRule: "YYYY-MM-DD", ExampleValue: "2025-07-01"},
	}
}
