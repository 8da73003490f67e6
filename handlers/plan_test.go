package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"adbooth/testhelpers"
)

func TestHandlePlanSave_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Plan Co")

	handler := HandlePlanSave(app)
	form := url.Values{}
	form.Set("name", "Q3 Proposal")
	form.Set("client_name", "Prospect Ltd")
	form.Set("start_date", "2025-08-01")
	form.Set("end_date", "2025-08-31")
	form.Set("billing_mode", "month")
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(form.Encode()))
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

	records, err := app.FindRecordsByFilter("plans", "name = {:n}", "", 1, 0,
		map[string]any{"n": "Q3 Proposal"})
	if err != nil || len(records) == 0 {
		t.Fatal("expected plan to be created in database")
	}
	if records[0].GetString("status") != "draft" {
		t.Errorf("expected draft plan, got %q", records[0].GetString("status"))
	}
}

func TestHandlePlanAddLine_NoConflictCheck(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Plan Line Co")
	plan := testhelpers.CreateTestPlan(t, app, company.Id, "Line Plan")
	other := testhelpers.CreateTestCampaign(t, app, company.Id, "Occupier")
	asset := testhelpers.CreateTestAsset(t, app, company.Id, "Planned Asset")
	// Overlapping booking does not stop planning, only conversion/confirmation
	testhelpers.CreateTestBooking(t, app, company.Id, asset.Id, other.Id, "2025-08-01", "2025-08-31")

	handler := HandlePlanAddLine(app)
	form := url.Values{}
	form.Set("asset_id", asset.Id)
	req := httptest.NewRequest(http.MethodPost, "/plans/"+plan.Id+"/lines", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", plan.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	lines, err := app.FindRecordsByFilter("plan_assets", "plan = {:p}", "", 0, 0,
		map[string]any{"p": plan.Id})
	if err != nil || len(lines) != 1 {
		t.Fatalf("expected 1 plan line, got %d (err %v)", len(lines), err)
	}
}

func TestHandlePlanConvert_CreatesDraftCampaign(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Convert Co")
	plan := testhelpers.CreateTestPlan(t, app, company.Id, "Convertible Plan")
	asset := testhelpers.CreateTestAsset(t, app, company.Id, "Converted Asset")
	testhelpers.CreateTestPlanAsset(t, app, plan.Id, asset.Id)

	handler := HandlePlanConvert(app)
	req := httptest.NewRequest(http.MethodPost, "/plans/"+plan.Id+"/convert", nil)
	req.SetPathValue("id", plan.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	updatedPlan, err := app.FindRecordById("plans", plan.Id)
	if err != nil {
		t.Fatalf("plan disappeared: %v", err)
	}
	if updatedPlan.GetString("status") != "converted" {
		t.Errorf("expected converted status, got %q", updatedPlan.GetString("status"))
	}

	campaignID := updatedPlan.GetString("converted_campaign")
	if campaignID == "" {
		t.Fatal("expected converted_campaign link on the plan")
	}
	campaign, err := app.FindRecordById("campaigns", campaignID)
	if err != nil {
		t.Fatalf("converted campaign not found: %v", err)
	}
	if campaign.GetString("status") != "draft" {
		t.Errorf("expected draft campaign, got %q", campaign.GetString("status"))
	}
	if campaign.GetString("start_date") != plan.GetString("start_date") ||
		campaign.GetString("end_date") != plan.GetString("end_date") {
		t.Error("expected campaign to carry the plan dates")
	}

	lines, err := app.FindRecordsByFilter("campaign_assets", "campaign = {:c}", "", 0, 0,
		map[string]any{"c": campaignID})
	if err != nil || len(lines) != 1 {
		t.Fatalf("expected 1 copied line, got %d (err %v)", len(lines), err)
	}
	if lines[0].GetString("asset") != asset.Id {
		t.Error("expected copied line to reference the plan's asset")
	}

	// Conversion alone reserves nothing
	bookings, _ := app.FindRecordsByFilter("bookings", "campaign = {:c}", "", 0, 0,
		map[string]any{"c": campaignID})
	if len(bookings) != 0 {
		t.Errorf("expected no bookings after conversion, got %d", len(bookings))
	}

	if got := rec.Header().Get("HX-Redirect"); got != "/campaigns/"+campaignID {
		t.Errorf("expected redirect to the new campaign, got %q", got)
	}
}

func TestHandlePlanConvert_AlreadyConverted(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Reconvert Co")
	plan := testhelpers.CreateTestPlan(t, app, company.Id, "Done Plan")
	plan.Set("status", "converted")
	if err := app.Save(plan); err != nil {
		t.Fatalf("failed to mark plan converted: %v", err)
	}

	handler := HandlePlanConvert(app)
	req := httptest.NewRequest(http.MethodPost, "/plans/"+plan.Id+"/convert", nil)
	req.SetPathValue("id", plan.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	err := handler(e)
	_ = err
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for already converted plan, got %d", rec.Code)
	}
}

func TestHandlePlanList_ShowsPlans(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Plan List Co")
	testhelpers.CreateTestPlan(t, app, company.Id, "Visible Plan")

	handler := HandlePlanList(app)
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Visible Plan", "Prospect Client")
}

func TestHandlePlanView_PricesLines(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Plan View Co")
	plan := testhelpers.CreateTestPlan(t, app, company.Id, "Priced Plan")
	asset := testhelpers.CreateTestAsset(t, app, company.Id, "Priced Plan Asset")
	testhelpers.CreateTestPlanAsset(t, app, plan.Id, asset.Id)

	handler := HandlePlanView(app)
	req := httptest.NewRequest(http.MethodGet, "/plans/"+plan.Id, nil)
	req.SetPathValue("id", plan.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	// 30 days at card rate 50,000 with 18% GST: 50,000 + 9,000 = 59,000
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"Priced Plan", "Priced Plan Asset, Baner",
		"50,000.00", "9,000.00", "59,000.00")
}

func TestHandlePlanView_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Plan 404 Co")

	handler := HandlePlanView(app)
	req := httptest.NewRequest(http.MethodGet, "/plans/missing", nil)
	req.SetPathValue("id", "missing")
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	err := handler(e)
	_ = err
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandlePlanSave_StoresTDS(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Plan TDS Co")

	handler := HandlePlanSave(app)
	form := url.Values{}
	form.Set("name", "TDS Proposal")
	form.Set("start_date", "2025-08-01")
	form.Set("end_date", "2025-08-31")
	form.Set("tds_applicable", "true")
	form.Set("tds_percent", "2")
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	records, err := app.FindRecordsByFilter("plans", "name = {:n}", "", 1, 0,
		map[string]any{"n": "TDS Proposal"})
	if err != nil || len(records) == 0 {
		t.Fatal("expected plan to be created")
	}
	if !records[0].GetBool("tds_applicable") {
		t.Error("expected tds_applicable to be stored")
	}
	if got := records[0].GetFloat("tds_percent"); got != 2 {
		t.Errorf("tds_percent = %v, want 2", got)
	}
}

func TestHandlePlanSave_InvalidGSTPercent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Plan Bad GST Co")

	handler := HandlePlanSave(app)
	form := url.Values{}
	form.Set("name", "Bad GST Proposal")
	form.Set("start_date", "2025-08-01")
	form.Set("end_date", "2025-08-31")
	form.Set("gst_percent", "not-a-rate")
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code == http.StatusFound {
		t.Error("expected form re-render for invalid GST percent")
	}
	records, _ := app.FindRecordsByFilter("plans", "name = {:n}", "", 1, 0,
		map[string]any{"n": "Bad GST Proposal"})
	if len(records) != 0 {
		t.Error("expected no plan for invalid GST percent")
	}
}

func TestHandlePlanAddLine_StoresBookedDays(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Plan Days Co")
	plan := testhelpers.CreateTestPlan(t, app, company.Id, "Days Plan")
	asset := testhelpers.CreateTestAsset(t, app, company.Id, "Days Asset")

	handler := HandlePlanAddLine(app)
	form := url.Values{}
	form.Set("asset_id", asset.Id)
	form.Set("booked_days", "15")
	req := httptest.NewRequest(http.MethodPost, "/plans/"+plan.Id+"/lines", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", plan.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	lines, err := app.FindRecordsByFilter("plan_assets", "plan = {:p}", "", 0, 0,
		map[string]any{"p": plan.Id})
	if err != nil || len(lines) != 1 {
		t.Fatalf("expected 1 plan line, got %d (err %v)", len(lines), err)
	}
	if got := lines[0].GetInt("booked_days"); got != 15 {
		t.Errorf("booked_days = %d, want 15", got)
	}
}

func TestHandlePlanConvert_CopiesPricingFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Convert Fields Co")
	plan := testhelpers.CreateTestPlan(t, app, company.Id, "Detailed Plan")
	plan.Set("tds_applicable", true)
	plan.Set("tds_percent", 2.0)
	if err := app.Save(plan); err != nil {
		t.Fatalf("failed to update plan: %v", err)
	}
	asset := testhelpers.CreateTestAsset(t, app, company.Id, "Detailed Asset")
	line := testhelpers.CreateTestPlanAsset(t, app, plan.Id, asset.Id)
	line.Set("negotiated_price", 42000.0)
	line.Set("booked_days", 15)
	if err := app.Save(line); err != nil {
		t.Fatalf("failed to update plan line: %v", err)
	}

	handler := HandlePlanConvert(app)
	req := httptest.NewRequest(http.MethodPost, "/plans/"+plan.Id+"/convert", nil)
	req.SetPathValue("id", plan.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	updatedPlan, err := app.FindRecordById("plans", plan.Id)
	if err != nil {
		t.Fatalf("plan disappeared: %v", err)
	}
	campaign, err := app.FindRecordById("campaigns", updatedPlan.GetString("converted_campaign"))
	if err != nil {
		t.Fatalf("converted campaign not found: %v", err)
	}
	if !campaign.GetBool("tds_applicable") {
		t.Error("expected campaign to carry tds_applicable")
	}
	if got := campaign.GetFloat("tds_percent"); got != 2 {
		t.Errorf("campaign tds_percent = %v, want 2", got)
	}

	lines, err := app.FindRecordsByFilter("campaign_assets", "campaign = {:c}", "", 0, 0,
		map[string]any{"c": campaign.Id})
	if err != nil || len(lines) != 1 {
		t.Fatalf("expected 1 copied line, got %d (err %v)", len(lines), err)
	}
	if got := lines[0].GetFloat("negotiated_price"); got != 42000 {
		t.Errorf("copied negotiated_price = %v, want 42000", got)
	}
	if got := lines[0].GetInt("booked_days"); got != 15 {
		t.Errorf("copied booked_days = %d, want 15", got)
	}
}
