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

// HandlePlanList renders the plan list for the active company.
func HandlePlanList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		col, err := app.FindCollectionByNameOrId("plans")
		if err != nil {
			log.Printf("plan_list: could not find plans collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(col, "company = {:company}", "-start_date", 0, 0,
			map[string]any{"company": companyID})
		if err != nil {
			log.Printf("plan_list: could not load plans: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var data templates.PlanListData
		for _, rec := range records {
			data.Plans = append(data.Plans, templates.PlanRow{
				ID:         rec.Id,
				Name:       rec.GetString("name"),
				ClientName: rec.GetString("client_name"),
				StartDate:  rec.GetString("start_date"),
				EndDate:    rec.GetString("end_date"),
				Status:     rec.GetString("status"),
			})
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.PlanListContent(data)
		} else {
			component = templates.PlanListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandlePlanCreate renders the plan creation form.
func HandlePlanCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.PlanFormData{
			BillingMode: string(services.BillingModeMonth),
			GSTType:     string(services.GSTTypeCGSTSGST),
			GSTPercent:  "18",
			Errors:      make(map[string]string),
		}
		return renderPlanForm(e, data)
	}
}

// HandlePlanSave processes the plan creation form.
func HandlePlanSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := templates.PlanFormData{
			Name:          strings.TrimSpace(e.Request.FormValue("name")),
			ClientName:    strings.TrimSpace(e.Request.FormValue("client_name")),
			StartDate:     strings.TrimSpace(e.Request.FormValue("start_date")),
			EndDate:       strings.TrimSpace(e.Request.FormValue("end_date")),
			BillingMode:   strings.TrimSpace(e.Request.FormValue("billing_mode")),
			GSTType:       strings.TrimSpace(e.Request.FormValue("gst_type")),
			GSTPercent:    strings.TrimSpace(e.Request.FormValue("gst_percent")),
			TDSApplicable: e.Request.FormValue("tds_applicable") == "true",
			TDSPercent:    strings.TrimSpace(e.Request.FormValue("tds_percent")),
			Errors:        make(map[string]string),
		}
		if data.BillingMode == "" {
			data.BillingMode = string(services.BillingModeMonth)
		}
		if data.Name == "" {
			data.Errors["name"] = "Plan name is required"
		}
		if data.GSTPercent != "" {
			if v, err := strconv.ParseFloat(data.GSTPercent, 64); err != nil || v < 0 || v > 100 {
				data.Errors["gst_percent"] = "GST % must be between 0 and 100"
			}
		}
		if data.TDSPercent != "" {
			if v, err := strconv.ParseFloat(data.TDSPercent, 64); err != nil || v < 0 || v > 100 {
				data.Errors["tds_percent"] = "TDS % must be between 0 and 100"
			}
		}

		period, err := services.NewBillingPeriod(data.StartDate, data.EndDate,
			services.BillingMode(data.BillingMode))
		if err != nil {
			data.Errors["end_date"] = err.Error()
		}
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderPlanForm(e, data)
		}

		col, err := app.FindCollectionByNameOrId("plans")
		if err != nil {
			log.Printf("plan_create: could not find plans collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("company", companyID)
		record.Set("name", data.Name)
		record.Set("client_name", data.ClientName)
		record.Set("start_date", services.FormatDate(period.Start))
		record.Set("end_date", services.FormatDate(period.End))
		record.Set("billing_mode", string(period.Mode))
		record.Set("months", period.Months)
		record.Set("gst_type", data.GSTType)
		record.Set("tds_applicable", data.TDSApplicable)
		record.Set("status", "draft")

		gstPercent, _ := strconv.ParseFloat(data.GSTPercent, 64)
		if data.GSTPercent == "" && data.GSTType != string(services.GSTTypeNone) {
			gstPercent = services.DefaultGSTPercent
		}
		record.Set("gst_percent", gstPercent)

		tdsPercent, _ := strconv.ParseFloat(data.TDSPercent, 64)
		record.Set("tds_percent", tdsPercent)

		if err := app.Save(record); err != nil {
			log.Printf("plan_create: could not save plan: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Plan created")
		return redirectAfterSave(e, "/plans")
	}
}

// HandlePlanDelete deletes a plan; its lines cascade away.
func HandlePlanDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("plans", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Plan not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("plan_delete: could not delete plan: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Plan deleted")
		return HandlePlanList(app)(e)
	}
}

// HandlePlanAddLine adds an asset to a plan. Plans reserve nothing, so no
// conflict check applies here; conversion to a campaign is where bookings
// are validated and created.
// Route: POST /plans/{id}/lines
func HandlePlanAddLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		plan, err := app.FindRecordById("plans", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Plan not found")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		assetID := strings.TrimSpace(e.Request.FormValue("asset_id"))
		if _, err := app.FindRecordById("media_assets", assetID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Asset not found")
		}

		linesCol, err := app.FindCollectionByNameOrId("plan_assets")
		if err != nil {
			log.Printf("plan_add_line: could not find plan_assets collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		existing, _ := app.FindRecordsByFilter(linesCol,
			"plan = {:plan} && asset = {:asset}", "", 1, 0,
			map[string]any{"plan": plan.Id, "asset": assetID})
		if len(existing) > 0 {
			return ErrorToast(e, http.StatusBadRequest, "Asset is already on this plan")
		}

		count, _ := app.FindRecordsByFilter(linesCol, "plan = {:plan}", "", 0, 0,
			map[string]any{"plan": plan.Id})

		line := core.NewRecord(linesCol)
		line.Set("plan", plan.Id)
		line.Set("asset", assetID)
		line.Set("sort_order", len(count)+1)
		for _, field := range []string{"sales_price", "negotiated_price", "printing_charge", "mounting_charge"} {
			if v := strings.TrimSpace(e.Request.FormValue(field)); v != "" {
				amount, err := strconv.ParseFloat(v, 64)
				if err != nil || amount < 0 {
					return ErrorToast(e, http.StatusBadRequest, field+" must be a non-negative number")
				}
				line.Set(field, amount)
			}
		}
		if v := strings.TrimSpace(e.Request.FormValue("booked_days")); v != "" {
			days, err := strconv.Atoi(v)
			if err != nil || days <= 0 {
				return ErrorToast(e, http.StatusBadRequest, "booked_days must be a positive number")
			}
			line.Set("booked_days", days)
		}

		if err := app.Save(line); err != nil {
			log.Printf("plan_add_line: could not save line: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Asset added to plan")
		return HandlePlanView(app)(e)
	}
}

func renderPlanForm(e *core.RequestEvent, data templates.PlanFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.PlanFormContent(data)
	} else {
		component = templates.PlanFormPage(data, GetHeaderData(e.Request))
	}
	return component.Render(e.Request.Context(), e.Response)
}
