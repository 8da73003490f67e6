package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/templates"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withActiveCompany injects a company into the request context the way the
// middleware would, so tenant-scoped handlers can be tested directly.
func withActiveCompany(req *http.Request, company *core.Record) *http.Request {
	active := &templates.ActiveCompany{
		ID:   company.Id,
		Name: company.GetString("name"),
	}
	ctx := context.WithValue(req.Context(), ActiveCompanyKey, active)
	ctx = context.WithValue(ctx, HeaderDataKey, templates.HeaderData{ActiveCompany: active})
	return req.WithContext(ctx)
}
