package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
)

// HandleAssetExportExcel downloads the full media inventory of the active
// company as a workbook, including base rates and stored status.
// Route: GET /assets/export/excel
func HandleAssetExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		assetsCol, err := app.FindCollectionByNameOrId("media_assets")
		if err != nil {
			log.Printf("asset_export: media_assets collection not found: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to build export")
		}

		assets, err := app.FindRecordsByFilter(assetsCol,
			"company = {:company}", "city,area,location", 0, 0,
			map[string]any{"company": companyID})
		if err != nil {
			log.Printf("asset_export: could not load assets: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to build export")
		}

		data := services.InventoryExport{
			CompanyName:   GetActiveCompany(e.Request).Name,
			GeneratedDate: time.Now().Format("02 Jan 2006"),
		}
		for i, asset := range assets {
			data.Rows = append(data.Rows, services.InventoryExportRow{
				SNo:          i + 1,
				MediaType:    asset.GetString("media_type"),
				City:         asset.GetString("city"),
				Area:         asset.GetString("area"),
				Location:     asset.GetString("location"),
				Direction:    asset.GetString("direction"),
				Dimensions:   asset.GetString("dimensions"),
				Sqft:         asset.GetFloat("sqft"),
				Illumination: asset.GetString("illumination"),
				CardRate:     asset.GetFloat("card_rate"),
				BaseRate:     asset.GetFloat("base_rate"),
				Status:       asset.GetString("status"),
			})
		}

		xlsxBytes, err := services.GenerateInventoryExcel(data)
		if err != nil {
			log.Printf("asset_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Media_Inventory_%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
