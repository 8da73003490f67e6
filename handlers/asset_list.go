package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
	"adbooth/templates"
)

// HandleAssetList renders the media inventory for the active company.
func HandleAssetList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		col, err := app.FindCollectionByNameOrId("media_assets")
		if err != nil {
			log.Printf("asset_list: could not find media_assets collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(col, "company = {:company}", "city,area,location", 0, 0,
			map[string]any{"company": companyID})
		if err != nil {
			log.Printf("asset_list: could not load assets: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		active := GetActiveCompany(e.Request)
		data := templates.AssetListData{
			CompanyID:   companyID,
			CompanyName: active.Name,
		}
		for _, rec := range records {
			data.Assets = append(data.Assets, templates.AssetRow{
				ID:           rec.Id,
				MediaType:    rec.GetString("media_type"),
				City:         rec.GetString("city"),
				Area:         rec.GetString("area"),
				Location:     rec.GetString("location"),
				Dimensions:   rec.GetString("dimensions"),
				Sqft:         services.FormatSqft(rec.GetFloat("sqft")),
				Illumination: rec.GetString("illumination"),
				CardRate:     services.FormatINR(rec.GetFloat("card_rate")),
				Status:       rec.GetString("status"),
			})
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.AssetListContent(data)
		} else {
			component = templates.AssetListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
