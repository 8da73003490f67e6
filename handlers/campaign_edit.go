package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"adbooth/services"
	"adbooth/templates"
)

// HandleCampaignEdit renders the edit form for an existing campaign.
func HandleCampaignEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("campaigns", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Campaign not found")
		}

		data := templates.CampaignFormData{
			ID:            record.Id,
			Name:          record.GetString("name"),
			ClientName:    record.GetString("client_name"),
			ClientGSTIN:   record.GetString("client_gstin"),
			StartDate:     record.GetString("start_date"),
			EndDate:       record.GetString("end_date"),
			BillingMode:   record.GetString("billing_mode"),
			Months:        strconv.FormatFloat(record.GetFloat("months"), 'f', -1, 64),
			GSTType:       record.GetString("gst_type"),
			GSTPercent:    formValue(record.GetFloat("gst_percent")),
			TDSApplicable: record.GetBool("tds_applicable"),
			TDSPercent:    formValue(record.GetFloat("tds_percent")),
			Errors:        make(map[string]string),
		}
		return renderCampaignForm(e, data)
	}
}

// HandleCampaignUpdate processes the campaign edit form. Date, months and
// mode edits each go through their dedicated period transition so start,
// end, duration and months stay mutually consistent: moving the start
// shifts the end to preserve duration, changing the end or months
// recomputes the other, and a mode switch resynchronizes months.
func HandleCampaignUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("campaigns", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Campaign not found")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := templates.CampaignFormData{
			ID:            record.Id,
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

		if data.Name == "" {
			data.Errors["name"] = "Campaign name is required"
		}
		for field, msg := range services.ValidateVendorFields(map[string]string{"gstin": data.ClientGSTIN}) {
			data.Errors["client_"+field] = msg
		}

		period, err := applyPeriodEdits(record, data)
		if err != nil {
			data.Errors["end_date"] = err.Error()
		}
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderCampaignForm(e, data)
		}

		setCampaignFields(record, data, period)
		if err := app.Save(record); err != nil {
			log.Printf("campaign_edit: could not save campaign: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Campaign updated")
		return redirectAfterSave(e, "/campaigns/"+record.Id)
	}
}

// applyPeriodEdits rebuilds the stored period and applies only the fields
// the user actually changed, each through its transition. Re-submitting an
// unchanged form leaves the period exactly as stored.
func applyPeriodEdits(record *core.Record, data templates.CampaignFormData) (services.BillingPeriod, error) {
	period, err := campaignPeriod(record)
	if err != nil {
		return services.BillingPeriod{}, err
	}

	if data.BillingMode != record.GetString("billing_mode") {
		period = period.WithMode(services.BillingMode(data.BillingMode))
	}

	if data.StartDate != record.GetString("start_date") {
		start, err := services.ParseDate(data.StartDate)
		if err != nil {
			return period, err
		}
		period = period.WithStart(start)
		data.EndDate = services.FormatDate(period.End)
	}

	if data.EndDate != services.FormatDate(period.End) {
		end, err := services.ParseDate(data.EndDate)
		if err != nil {
			return period, err
		}
		period, err = period.WithEnd(end)
		if err != nil {
			return period, err
		}
	}

	storedMonths := strconv.FormatFloat(record.GetFloat("months"), 'f', -1, 64)
	if data.Months != "" && data.Months != storedMonths && period.Mode == services.BillingModeMonth {
		months, err := strconv.ParseFloat(data.Months, 64)
		if err != nil {
			return period, err
		}
		period, err = period.WithMonths(months)
		if err != nil {
			return period, err
		}
	}
	return period, nil
}
