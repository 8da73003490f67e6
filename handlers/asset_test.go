package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"adbooth/testhelpers"
)

func TestHandleAssetList_RendersAssets(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "List Co")
	testhelpers.CreateTestAsset(t, app, company.Id, "MG Road Gantry")

	handler := HandleAssetList(app)
	req := httptest.NewRequest(http.MethodGet, "/assets", nil)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "MG Road Gantry", "Hoarding", "Pune")
}

func TestHandleAssetList_NoActiveCompany(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleAssetList(app)
	req := httptest.NewRequest(http.MethodGet, "/assets", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	err := handler(e)
	_ = err
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without active company, got %d", rec.Code)
	}
}

func TestHandleAssetSave_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Save Co")

	handler := HandleAssetSave(app)
	form := url.Values{}
	form.Set("media_type", "Hoarding")
	form.Set("city", "Pune")
	form.Set("area", "Kothrud")
	form.Set("location", "Karve Road")
	form.Set("dimensions", "40x20")
	form.Set("card_rate", "60000")
	req := httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("expected 302, got %d", rec.Code)
	}

	records, err := app.FindRecordsByFilter("media_assets", "location = {:l}", "", 1, 0,
		map[string]any{"l": "Karve Road"})
	if err != nil || len(records) == 0 {
		t.Fatal("expected asset to be created in database")
	}
	// Sqft left blank on the form falls back to the parsed dimension area
	if got := records[0].GetFloat("sqft"); got != 800 {
		t.Errorf("expected derived sqft 800, got %v", got)
	}
}

func TestHandleAssetSave_InvalidDimensions(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Bad Dim Co")

	handler := HandleAssetSave(app)
	form := url.Values{}
	form.Set("media_type", "Hoarding")
	form.Set("city", "Pune")
	form.Set("location", "Nowhere")
	form.Set("dimensions", "not-a-size")
	form.Set("card_rate", "50000")
	req := httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code == http.StatusFound {
		t.Error("expected form re-render, not redirect")
	}

	records, _ := app.FindRecordsByFilter("media_assets", "location = {:l}", "", 1, 0,
		map[string]any{"l": "Nowhere"})
	if len(records) != 0 {
		t.Error("expected no asset for invalid dimensions")
	}
}

func TestHandleAssetSave_MissingCardRate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "No Rate Co")

	handler := HandleAssetSave(app)
	form := url.Values{}
	form.Set("media_type", "Hoarding")
	form.Set("city", "Pune")
	form.Set("location", "Rateless Spot")
	form.Set("dimensions", "20x10")
	req := httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code == http.StatusFound {
		t.Error("expected form re-render for missing card rate")
	}
}

func TestHandleAssetUpdate_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Edit Co")
	asset := testhelpers.CreateTestAsset(t, app, company.Id, "Old Location")

	handler := HandleAssetUpdate(app)
	form := url.Values{}
	form.Set("media_type", "Hoarding")
	form.Set("city", "Pune")
	form.Set("area", "Baner")
	form.Set("location", "New Location")
	form.Set("dimensions", "40x20")
	form.Set("sqft", "800")
	form.Set("card_rate", "55000")
	req := httptest.NewRequest(http.MethodPost, "/assets/"+asset.Id+"/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", asset.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("expected 302, got %d", rec.Code)
	}

	updated, err := app.FindRecordById("media_assets", asset.Id)
	if err != nil {
		t.Fatalf("asset disappeared: %v", err)
	}
	if updated.GetString("location") != "New Location" {
		t.Errorf("expected updated location, got %q", updated.GetString("location"))
	}
	if updated.GetFloat("card_rate") != 55000 {
		t.Errorf("expected card rate 55000, got %v", updated.GetFloat("card_rate"))
	}
}

func TestHandleAssetDelete_Unbooked(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Del Co")
	asset := testhelpers.CreateTestAsset(t, app, company.Id, "Deletable")

	handler := HandleAssetDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/assets/"+asset.Id, nil)
	req.SetPathValue("id", asset.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if _, err := app.FindRecordById("media_assets", asset.Id); err == nil {
		t.Error("expected asset to be deleted")
	}
}

func TestHandleAssetDelete_BlockedByBooking(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Booked Del Co")
	asset := testhelpers.CreateTestAsset(t, app, company.Id, "Occupied")
	campaign := testhelpers.CreateTestCampaign(t, app, company.Id, "Blocking Campaign")
	testhelpers.CreateTestBooking(t, app, company.Id, asset.Id, campaign.Id, "2025-07-01", "2025-07-31")

	handler := HandleAssetDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/assets/"+asset.Id, nil)
	req.SetPathValue("id", asset.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	err := handler(e)
	_ = err
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for booked asset, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("media_assets", asset.Id); err != nil {
		t.Error("expected booked asset to survive the delete attempt")
	}
}

func TestHandleAssetTemplateDownload(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleAssetTemplateDownload(app)
	req := httptest.NewRequest(http.MethodGet, "/assets/template", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", contentType)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "Media_Asset_Template.xlsx") {
		t.Error("expected template filename in content disposition")
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty workbook body")
	}
}

func TestHandleAssetExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Export Co")
	testhelpers.CreateTestAsset(t, app, company.Id, "Export Site")

	handler := HandleAssetExportExcel(app)
	req := httptest.NewRequest(http.MethodGet, "/assets/export/excel", nil)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", contentType)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "Media_Inventory_") {
		t.Error("expected inventory filename in content disposition")
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty workbook body")
	}
}
