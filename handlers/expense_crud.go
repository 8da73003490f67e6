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

// expenseCategories matches the expenses.category select field.
var expenseCategories = []string{
	"printing", "mounting", "electricity", "rent", "municipal_tax", "other",
}

// HandleExpenseList renders the expense list with derived tax and net
// payable per expense.
func HandleExpenseList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		col, err := app.FindCollectionByNameOrId("expenses")
		if err != nil {
			log.Printf("expense_list: could not find expenses collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(col, "company = {:company}", "-expense_date", 0, 0,
			map[string]any{"company": companyID})
		if err != nil {
			log.Printf("expense_list: could not load expenses: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var data templates.ExpenseListData
		var totalNet float64
		for _, rec := range records {
			amount := rec.GetFloat("amount")
			tax := services.ComposeTax(amount,
				rec.GetFloat("gst_percent"),
				services.GSTType(rec.GetString("gst_type")))
			withTax := services.Round2(amount + tax.TotalTax)
			tds := services.ApplyTDS(withTax,
				rec.GetBool("tds_applicable"),
				rec.GetFloat("tds_percent"))
			totalNet = services.Round2(totalNet + tds.NetPayable)

			data.Expenses = append(data.Expenses, templates.ExpenseRow{
				ID:          rec.Id,
				VendorName:  rec.GetString("vendor_name"),
				Category:    rec.GetString("category"),
				ExpenseDate: rec.GetString("expense_date"),
				Amount:      services.FormatINR(amount),
				Tax:         services.FormatINR(tax.TotalTax),
				NetPayable:  services.FormatINR(tds.NetPayable),
			})
		}
		data.Total = services.FormatINR(totalNet)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ExpenseListContent(data)
		} else {
			component = templates.ExpenseListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleExpenseCreate renders the expense creation form.
func HandleExpenseCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ExpenseFormData{
			Category:   "printing",
			Categories: expenseCategories,
			GSTType:    string(services.GSTTypeCGSTSGST),
			GSTPercent: "18",
			Errors:     make(map[string]string),
		}
		return renderExpenseForm(e, data)
	}
}

// HandleExpenseSave processes the expense creation form. Vendor identity
// fields share the registration checks used on companies and clients.
func HandleExpenseSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := templates.ExpenseFormData{
			VendorName:    strings.TrimSpace(e.Request.FormValue("vendor_name")),
			VendorGSTIN:   strings.TrimSpace(e.Request.FormValue("vendor_gstin")),
			VendorPAN:     strings.TrimSpace(e.Request.FormValue("vendor_pan")),
			Category:      strings.TrimSpace(e.Request.FormValue("category")),
			Categories:    expenseCategories,
			Amount:        strings.TrimSpace(e.Request.FormValue("amount")),
			GSTType:       strings.TrimSpace(e.Request.FormValue("gst_type")),
			GSTPercent:    strings.TrimSpace(e.Request.FormValue("gst_percent")),
			TDSApplicable: e.Request.FormValue("tds_applicable") == "true",
			TDSPercent:    strings.TrimSpace(e.Request.FormValue("tds_percent")),
			ExpenseDate:   strings.TrimSpace(e.Request.FormValue("expense_date")),
			Notes:         strings.TrimSpace(e.Request.FormValue("notes")),
			Errors:        make(map[string]string),
		}

		if data.VendorName == "" {
			data.Errors["vendor_name"] = "Vendor name is required"
		}
		for field, msg := range services.ValidateVendorFields(map[string]string{
			"gstin": data.VendorGSTIN,
			"pan":   data.VendorPAN,
		}) {
			data.Errors["vendor_"+field] = msg
		}
		amount, err := strconv.ParseFloat(data.Amount, 64)
		if err != nil || amount <= 0 {
			data.Errors["amount"] = "Amount must be a positive number"
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
		if data.ExpenseDate != "" {
			if _, err := services.ParseDate(data.ExpenseDate); err != nil {
				data.Errors["expense_date"] = "Expense date must be YYYY-MM-DD"
			}
		}

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderExpenseForm(e, data)
		}

		col, err := app.FindCollectionByNameOrId("expenses")
		if err != nil {
			log.Printf("expense_create: could not find expenses collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("company", companyID)
		record.Set("vendor_name", data.VendorName)
		record.Set("vendor_gstin", strings.ToUpper(data.VendorGSTIN))
		record.Set("vendor_pan", strings.ToUpper(data.VendorPAN))
		record.Set("category", data.Category)
		record.Set("amount", amount)
		record.Set("gst_type", data.GSTType)
		record.Set("tds_applicable", data.TDSApplicable)
		record.Set("expense_date", data.ExpenseDate)
		record.Set("notes", data.Notes)

		gstPercent, _ := strconv.ParseFloat(data.GSTPercent, 64)
		if data.GSTPercent == "" && data.GSTType != string(services.GSTTypeNone) {
			gstPercent = services.DefaultGSTPercent
		}
		record.Set("gst_percent", gstPercent)

		tdsPercent, _ := strconv.ParseFloat(data.TDSPercent, 64)
		record.Set("tds_percent", tdsPercent)

		if campaignID := strings.TrimSpace(e.Request.FormValue("campaign_id")); campaignID != "" {
			record.Set("campaign", campaignID)
		}
		if assetID := strings.TrimSpace(e.Request.FormValue("asset_id")); assetID != "" {
			record.Set("asset", assetID)
		}

		if err := app.Save(record); err != nil {
			log.Printf("expense_create: could not save expense: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Expense recorded")
		return redirectAfterSave(e, "/expenses")
	}
}

// HandleExpenseDelete deletes an expense.
func HandleExpenseDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("expenses", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Expense not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("expense_delete: could not delete expense: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Expense deleted")
		return HandleExpenseList(app)(e)
	}
}

func renderExpenseForm(e *core.RequestEvent, data templates.ExpenseFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.ExpenseFormContent(data)
	} else {
		component = templates.ExpenseFormPage(data, GetHeaderData(e.Request))
	}
	return component.Render(e.Request.Context(), e.Response)
}
