package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
	"adbooth/templates"
)

// HandleAssetCreate renders the asset creation form.
func HandleAssetCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.AssetFormData{
			Status:            "available",
			MediaTypes:        services.MediaTypes,
			IlluminationTypes: services.IlluminationTypes,
			Errors:            make(map[string]string),
		}
		return renderAssetForm(e, data)
	}
}

// HandleAssetSave processes the asset creation form.
func HandleAssetSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := assetFormFromRequest(e)
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderAssetForm(e, data)
		}

		col, err := app.FindCollectionByNameOrId("media_assets")
		if err != nil {
			log.Printf("asset_create: could not find media_assets collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("company", companyID)
		setAssetFields(record, data)
		if err := app.Save(record); err != nil {
			log.Printf("asset_create: could not save asset: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Asset created")
		return redirectAfterSave(e, "/assets")
	}
}

// assetFormFromRequest pulls and validates the asset form values.
func assetFormFromRequest(e *core.RequestEvent) templates.AssetFormData {
	data := templates.AssetFormData{
		MediaType:         strings.TrimSpace(e.Request.FormValue("media_type")),
		City:              strings.TrimSpace(e.Request.FormValue("city")),
		Area:              strings.TrimSpace(e.Request.FormValue("area")),
		Location:          strings.TrimSpace(e.Request.FormValue("location")),
		Direction:         strings.TrimSpace(e.Request.FormValue("direction")),
		Dimensions:        strings.TrimSpace(e.Request.FormValue("dimensions")),
		Sqft:              strings.TrimSpace(e.Request.FormValue("sqft")),
		Illumination:      strings.TrimSpace(e.Request.FormValue("illumination")),
		CardRate:          strings.TrimSpace(e.Request.FormValue("card_rate")),
		BaseRate:          strings.TrimSpace(e.Request.FormValue("base_rate")),
		AvailableFrom:     strings.TrimSpace(e.Request.FormValue("available_from")),
		Status:            strings.TrimSpace(e.Request.FormValue("status")),
		MediaTypes:        services.MediaTypes,
		IlluminationTypes: services.IlluminationTypes,
		Errors:            make(map[string]string),
	}
	if data.Status == "" {
		data.Status = "available"
	}

	if data.MediaType == "" {
		data.Errors["media_type"] = "Media type is required"
	}
	if data.City == "" {
		data.Errors["city"] = "City is required"
	}
	if data.Location == "" {
		data.Errors["location"] = "Location is required"
	}
	if data.Dimensions == "" {
		data.Errors["dimensions"] = "Dimensions are required"
	} else if d := services.ParseDimensions(data.Dimensions); len(d.Faces) == 0 {
		data.Errors["dimensions"] = "Dimensions must look like 40x20 or 25x5-12x3"
	}
	if data.Sqft != "" {
		if v, err := strconv.ParseFloat(data.Sqft, 64); err != nil || v < 0 {
			data.Errors["sqft"] = "Sqft must be a non-negative number"
		}
	}
	if rate, err := strconv.ParseFloat(data.CardRate, 64); err != nil || rate <= 0 {
		data.Errors["card_rate"] = "Card rate must be a positive number"
	}
	if data.BaseRate != "" {
		if v, err := strconv.ParseFloat(data.BaseRate, 64); err != nil || v < 0 {
			data.Errors["base_rate"] = "Base rate must be a non-negative number"
		}
	}
	if data.AvailableFrom != "" {
		if _, err := services.ParseDate(data.AvailableFrom); err != nil {
			data.Errors["available_from"] = "Available from must be YYYY-MM-DD"
		}
	}
	return data
}

// setAssetFields writes validated form values onto a record. Sqft falls
// back to the dimension-derived area when left blank.
func setAssetFields(record *core.Record, data templates.AssetFormData) {
	record.Set("media_type", data.MediaType)
	record.Set("city", data.City)
	record.Set("area", data.Area)
	record.Set("location", data.Location)
	record.Set("direction", data.Direction)
	record.Set("dimensions", data.Dimensions)
	record.Set("illumination", data.Illumination)
	record.Set("status", data.Status)
	record.Set("available_from", data.AvailableFrom)

	sqft, _ := strconv.ParseFloat(data.Sqft, 64)
	record.Set("sqft", services.AssetSqft(sqft, data.Dimensions))

	cardRate, _ := strconv.ParseFloat(data.CardRate, 64)
	record.Set("card_rate", cardRate)

	baseRate, _ := strconv.ParseFloat(data.BaseRate, 64)
	record.Set("base_rate", baseRate)
}

func renderAssetForm(e *core.RequestEvent, data templates.AssetFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.AssetFormContent(data)
	} else {
		component = templates.AssetFormPage(data, GetHeaderData(e.Request))
	}
	return component.Render(e.Request.Context(), e.Response)
}
