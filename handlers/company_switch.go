package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleCompanyActivate sets the active company cookie and returns a full
// page redirect via HX-Redirect so the entire shell re-renders.
func HandleCompanyActivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := e.Request.PathValue("id")

		if _, err := app.FindRecordById("companies", companyID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Company not found")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     "active_company",
			Value:    companyID,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 30,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		SetToast(e, "success", "Company switched")

		e.Response.Header().Set("HX-Redirect", "/assets")
		return e.String(http.StatusOK, "OK")
	}
}

// HandleCompanyDeactivate clears the active company cookie.
func HandleCompanyDeactivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:   "active_company",
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})

		e.Response.Header().Set("HX-Redirect", "/companies")
		return e.String(http.StatusOK, "OK")
	}
}
