package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
	"adbooth/templates"
)

// formValue renders a stored number back into a form input, blank for zero.
func formValue(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// HandleAssetEdit renders the edit form for an existing asset.
func HandleAssetEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("media_assets", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Asset not found")
		}

		data := templates.AssetFormData{
			ID:                record.Id,
			MediaType:         record.GetString("media_type"),
			City:              record.GetString("city"),
			Area:              record.GetString("area"),
			Location:          record.GetString("location"),
			Direction:         record.GetString("direction"),
			Dimensions:        record.GetString("dimensions"),
			Sqft:              formValue(record.GetFloat("sqft")),
			Illumination:      record.GetString("illumination"),
			CardRate:          formValue(record.GetFloat("card_rate")),
			BaseRate:          formValue(record.GetFloat("base_rate")),
			AvailableFrom:     record.GetString("available_from"),
			Status:            record.GetString("status"),
			MediaTypes:        services.MediaTypes,
			IlluminationTypes: services.IlluminationTypes,
			Errors:            make(map[string]string),
		}
		return renderAssetForm(e, data)
	}
}

// HandleAssetUpdate processes the asset edit form.
func HandleAssetUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("media_assets", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Asset not found")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := assetFormFromRequest(e)
		data.ID = record.Id
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderAssetForm(e, data)
		}

		setAssetFields(record, data)
		if err := app.Save(record); err != nil {
			log.Printf("asset_edit: could not save asset: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Asset updated")
		return redirectAfterSave(e, "/assets")
	}
}
