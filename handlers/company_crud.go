package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
	"adbooth/templates"
)

// HandleCompanyList renders the tenant company list.
func HandleCompanyList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		header := GetHeaderData(e.Request)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CompanyListContent(header.Companies)
		} else {
			component = templates.CompanyListPage(header.Companies, header)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCompanyCreate renders the company creation form.
func HandleCompanyCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CompanyFormData{Errors: make(map[string]string)}
		return renderCompanyForm(e, data)
	}
}

// HandleCompanySave processes the company creation form.
func HandleCompanySave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := companyFormFromRequest(e)
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderCompanyForm(e, data)
		}

		col, err := app.FindCollectionByNameOrId("companies")
		if err != nil {
			log.Printf("company_create: could not find companies collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		setCompanyFields(record, data)
		if err := app.Save(record); err != nil {
			log.Printf("company_create: could not save company: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Company created")
		return redirectAfterSave(e, "/companies")
	}
}

// HandleCompanyEdit renders the edit form for an existing company.
func HandleCompanyEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("companies", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Company not found")
		}

		data := templates.CompanyFormData{
			ID:      record.Id,
			Name:    record.GetString("name"),
			GSTIN:   record.GetString("gstin"),
			PAN:     record.GetString("pan"),
			State:   record.GetString("state"),
			Address: record.GetString("address"),
			Phone:   record.GetString("phone"),
			Email:   record.GetString("email"),
			Errors:  make(map[string]string),
		}
		return renderCompanyForm(e, data)
	}
}

// HandleCompanyUpdate processes the company edit form.
func HandleCompanyUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("companies", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Company not found")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := companyFormFromRequest(e)
		data.ID = record.Id
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderCompanyForm(e, data)
		}

		setCompanyFields(record, data)
		if err := app.Save(record); err != nil {
			log.Printf("company_edit: could not save company: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Company updated")
		return redirectAfterSave(e, "/companies")
	}
}

// companyFormFromRequest pulls form values and runs the registration
// number checks shared with the expense vendor form.
func companyFormFromRequest(e *core.RequestEvent) templates.CompanyFormData {
	data := templates.CompanyFormData{
		Name:    strings.TrimSpace(e.Request.FormValue("name")),
		GSTIN:   strings.TrimSpace(e.Request.FormValue("gstin")),
		PAN:     strings.TrimSpace(e.Request.FormValue("pan")),
		State:   strings.TrimSpace(e.Request.FormValue("state")),
		Address: strings.TrimSpace(e.Request.FormValue("address")),
		Phone:   strings.TrimSpace(e.Request.FormValue("phone")),
		Email:   strings.TrimSpace(e.Request.FormValue("email")),
		Errors:  make(map[string]string),
	}

	if data.Name == "" {
		data.Errors["name"] = "Company name is required"
	}
	for field, msg := range services.ValidateVendorFields(map[string]string{
		"gstin": data.GSTIN,
		"pan":   data.PAN,
		"phone": data.Phone,
		"email": data.Email,
	}) {
		data.Errors[field] = msg
	}
	return data
}

func setCompanyFields(record *core.Record, data templates.CompanyFormData) {
	record.Set("name", data.Name)
	record.Set("gstin", strings.ToUpper(data.GSTIN))
	record.Set("pan", strings.ToUpper(data.PAN))
	record.Set("state", data.State)
	record.Set("address", data.Address)
	record.Set("phone", data.Phone)
	record.Set("email", data.Email)
}

func renderCompanyForm(e *core.RequestEvent, data templates.CompanyFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.CompanyFormContent(data)
	} else {
		component = templates.CompanyFormPage(data, GetHeaderData(e.Request))
	}
	return component.Render(e.Request.Context(), e.Response)
}

// redirectAfterSave redirects via HX-Redirect for HTMX requests and a
// regular 302 otherwise.
func redirectAfterSave(e *core.RequestEvent, url string) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", url)
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, url)
}
