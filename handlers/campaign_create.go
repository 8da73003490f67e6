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

// HandleCampaignCreate renders the campaign creation form.
func HandleCampaignCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CampaignFormData{
			BillingMode: string(services.BillingModeMonth),
			GSTType:     string(services.GSTTypeCGSTSGST),
			GSTPercent:  "18",
			Errors:      make(map[string]string),
		}
		return renderCampaignForm(e, data)
	}
}

// HandleCampaignSave processes the campaign creation form. The months value
// is always derived from the validated period, never taken raw from the
// form, so a fresh campaign starts with consistent dates.
func HandleCampaignSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data, period := campaignFormFromRequest(e)
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderCampaignForm(e, data)
		}

		col, err := app.FindCollectionByNameOrId("campaigns")
		if err != nil {
			log.Printf("campaign_create: could not find campaigns collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("company", companyID)
		record.Set("status", "draft")
		setCampaignFields(record, data, period)

		if err := app.Save(record); err != nil {
			log.Printf("campaign_create: could not save campaign: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Campaign created")
		return redirectAfterSave(e, "/campaigns/"+record.Id)
	}
}

// campaignFormFromRequest pulls form values, validates them and builds the
// billing period. A months override is applied through the period so the
// end date stays in sync.
func campaignFormFromRequest(e *core.RequestEvent) (templates.CampaignFormData, services.BillingPeriod) {
	data := templates.CampaignFormData{
		Name:          strings.TrimSpace(e.Request.FormValue("name")),
		ClientName:    strings.TrimSpace(e.Request.FormValue("client_name")),
		ClientGSTIN:   strings.TrimSpace(e.Request.FormValue("client_gstin")),
		StartDate:     strings.TrimSpace(e.Request.FormValue("start_date")),
		EndDate:       strings.TrimSpace(e.Request.FormValue("end_date")),
		BillingMode:   strings.TrimSpace(e.Request.FormValue("billing_mode")),
		Months:        strings.TrimSpace(e.Request.FormValue("months")),
		GSTType:       strings.TrimSpace(e.Request.FormValue("gst_type")),
		GSTPercent:    strings.TrimSpace(e.Request.FormValue("gst_percent")),
		TDSApplicable: e.Request.FormValue("tds_applicable") == "true",
		TDSPercent:    strings.TrimSpace(e.Request.FormValue("tds_percent")),
		Errors:        make(map[string]string),
	}
	if data.BillingMode == "" {
		data.BillingMode = string(services.BillingModeMonth)
	}
	if data.GSTType == "" {
		data.GSTType = string(services.GSTTypeCGSTSGST)
	}

	if data.Name == "" {
		data.Errors["name"] = "Campaign name is required"
	}
	for field, msg := range services.ValidateVendorFields(map[string]string{"gstin": data.ClientGSTIN}) {
		data.Errors["client_"+field] = msg
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
		return data, period
	}

	if data.Months != "" && period.Mode == services.BillingModeMonth {
		months, err := strconv.ParseFloat(data.Months, 64)
		if err != nil {
			data.Errors["months"] = "Months must be a number"
			return data, period
		}
		adjusted, err := period.WithMonths(months)
		if err != nil {
			data.Errors["months"] = "Months must be at least 0.5"
			return data, period
		}
		period = adjusted
		data.EndDate = services.FormatDate(period.End)
	}
	return data, period
}

// setCampaignFields writes the validated form and period onto a record.
func setCampaignFields(record *core.Record, data templates.CampaignFormData, period services.BillingPeriod) {
	record.Set("name", data.Name)
	record.Set("client_name", data.ClientName)
	record.Set("client_gstin", strings.ToUpper(data.ClientGSTIN))
	record.Set("start_date", services.FormatDate(period.Start))
	record.Set("end_date", services.FormatDate(period.End))
	record.Set("billing_mode", string(period.Mode))
	record.Set("months", period.Months)
	record.Set("gst_type", data.GSTType)
	record.Set("tds_applicable", data.TDSApplicable)

	gstPercent, _ := strconv.ParseFloat(data.GSTPercent, 64)
	if data.GSTPercent == "" && data.GSTType != string(services.GSTTypeNone) {
		gstPercent = services.DefaultGSTPercent
	}
	record.Set("gst_percent", gstPercent)

	tdsPercent, _ := strconv.ParseFloat(data.TDSPercent, 64)
	record.Set("tds_percent", tdsPercent)
}

func renderCampaignForm(e *core.RequestEvent, data templates.CampaignFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.CampaignFormContent(data)
	} else {
		component = templates.CampaignFormPage(data, GetHeaderData(e.Request))
	}
	return component.Render(e.Request.Context(), e.Response)
}
