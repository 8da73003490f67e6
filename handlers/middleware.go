package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/templates"
)

type contextKey string

const ActiveCompanyKey contextKey = "activeCompany"
const HeaderDataKey contextKey = "headerData"

// GetActiveCompany extracts the active company from the request context.
func GetActiveCompany(r *http.Request) *templates.ActiveCompany {
	if val, ok := r.Context().Value(ActiveCompanyKey).(*templates.ActiveCompany); ok {
		return val
	}
	return nil
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// ActiveCompanyMiddleware reads the "active_company" cookie, loads the
// company record, builds HeaderData with the full company list, and stores
// both in the request context so handlers and templates can use them.
func ActiveCompanyMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var active *templates.ActiveCompany

		cookie, err := e.Request.Cookie("active_company")
		if err == nil && cookie.Value != "" {
			rec, err := app.FindRecordById("companies", cookie.Value)
			if err == nil {
				active = &templates.ActiveCompany{
					ID:   rec.Id,
					Name: rec.GetString("name"),
				}
			} else {
				log.Printf("middleware: active company %s not found, clearing cookie", cookie.Value)
				http.SetCookie(e.Response, &http.Cookie{
					Name:   "active_company",
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
		}

		// Build the full company list for the header switcher
		companiesCol, _ := app.FindCollectionByNameOrId("companies")
		var selectorItems []templates.CompanySelectorItem
		if companiesCol != nil {
			records, _ := app.FindAllRecords(companiesCol)
			for _, rec := range records {
				isActive := active != nil && rec.Id == active.ID
				selectorItems = append(selectorItems, templates.CompanySelectorItem{
					ID:       rec.Id,
					Name:     rec.GetString("name"),
					City:     rec.GetString("state"),
					IsActive: isActive,
				})
			}
		}

		headerData := templates.HeaderData{
			ActiveCompany: active,
			Companies:     selectorItems,
		}

		ctx := context.WithValue(e.Request.Context(), ActiveCompanyKey, active)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// requireActiveCompany returns the active company id or writes a 400 asking
// the user to pick one. Every tenant-scoped handler goes through this.
func requireActiveCompany(e *core.RequestEvent) (string, error) {
	if active := GetActiveCompany(e.Request); active != nil {
		return active.ID, nil
	}
	return "", ErrorToast(e, http.StatusBadRequest, "Select a company first")
}
