package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
	"adbooth/templates"
)

// HandleAssetImportPage renders the upload form.
// Route: GET /assets/import
func HandleAssetImportPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		data := templates.AssetImportData{
			CompanyID:   companyID,
			CompanyName: GetActiveCompany(e.Request).Name,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.AssetImportContent(data)
		} else {
			component = templates.AssetImportPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleAssetValidate receives a file upload, validates it, and returns the
// validation results as an HTMX partial.
// Route: POST /assets/import
func HandleAssetValidate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ValidateAssetFile(file, header.Filename)
		if err != nil {
			log.Printf("asset_validate: %v", err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		// Serialize parsed rows for the commit form
		var parsedRowsJSON string
		if result.ErrorRows == 0 {
			b, err := json.Marshal(result.ParsedRows)
			if err != nil {
				log.Printf("asset_validate: marshal parsed rows: %v", err)
			} else {
				parsedRowsJSON = string(b)
			}
		}

		component := templates.AssetValidationResults(result, parsedRowsJSON)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleAssetImportCommit re-validates and batch-inserts the uploaded assets.
// Route: POST /assets/import/commit
func HandleAssetImportCommit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		parsedJSON := e.Request.FormValue("parsed_rows_json")
		if parsedJSON == "" {
			return ErrorToast(e, http.StatusBadRequest,
				"File data missing. Please re-upload and try again.")
		}

		var parsedRows []map[string]string
		if err := json.Unmarshal([]byte(parsedJSON), &parsedRows); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid parsed data")
		}

		importResult, err := services.CommitAssetImport(app, companyID, parsedRows)
		if err != nil {
			log.Printf("asset_import_commit: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if importResult.Failed > 0 {
			component := templates.AssetImportFailure(importResult)
			return component.Render(e.Request.Context(), e.Response)
		}

		SetToast(e, "success", fmt.Sprintf("%d assets imported successfully", importResult.Imported))
		component := templates.AssetImportSuccess(importResult.Imported)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleAssetErrorReport downloads the validation errors as an Excel file.
// Route: POST /assets/import/errors
func HandleAssetErrorReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var validationErrors []services.ValidationError
		decoder := json.NewDecoder(e.Request.Body)
		if err := decoder.Decode(&validationErrors); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid error data")
		}

		xlsxBytes, err := services.GenerateErrorReport(validationErrors)
		if err != nil {
			log.Printf("error_report: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := fmt.Sprintf("Asset_Import_Errors_%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleAssetTemplateDownload serves the import template workbook.
// Route: GET /assets/template
func HandleAssetTemplateDownload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateAssetTemplate()
		if err != nil {
			log.Printf("asset_template: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			`attachment; filename="Media_Asset_Template.xlsx"`)
		e.Response.Write(xlsxBytes)
		return nil
	}
}
