package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ExpenseRow is one vendor expense in the list table, pre-formatted.
type ExpenseRow struct {
	ID          string
	VendorName  string
	Category    string
	ExpenseDate string
	Amount      string
	Tax         string
	NetPayable  string
}

// ExpenseListData feeds the expense list page.
type ExpenseListData struct {
	Expenses []ExpenseRow
	Total    string
}

// ExpenseFormData carries form values and validation errors for the
// expense create form.
type ExpenseFormData struct {
	VendorName    string
	VendorGSTIN   string
	VendorPAN     string
	Category      string
	Categories    []string
	Amount        string
	GSTType       string
	GSTPercent    string
	TDSApplicable bool
	TDSPercent    string
	ExpenseDate   string
	Notes         string
	Errors        map[string]string
}

// ExpenseListContent renders the expense table partial.
func ExpenseListContent(data ExpenseListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="expense-list">
<div class="page-head"><h1>Expenses</h1>
<a class="btn" href="/expenses/new">Add Expense</a></div>
<table class="data-table"><thead><tr>
<th>Vendor</th><th>Category</th><th>Date</th><th>Amount</th><th>Tax</th><th>Net Payable</th><th></th>
</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, x := range data.Expenses {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td><td>%s</td><td>%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td>
<td><button hx-delete="/expenses/%s" hx-confirm="Delete this expense?" hx-target="#expense-list" hx-swap="outerHTML">Delete</button></td>
</tr>`,
				esc(x.VendorName), esc(x.Category), esc(x.ExpenseDate),
				esc(x.Amount), esc(x.Tax), esc(x.NetPayable), esc(x.ID)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `</tbody></table>
<p class="totals">Total spend: <strong>%s</strong></p></section>`, esc(data.Total))
		return err
	})
}

// ExpenseListPage renders the expense list inside the shell.
func ExpenseListPage(data ExpenseListData, header HeaderData) templ.Component {
	return Layout("Expenses", header, ExpenseListContent(data))
}

// ExpenseFormContent renders the expense create form partial.
func ExpenseFormContent(data ExpenseFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="expense-form"><h1>Add Expense</h1>`); err != nil {
			return err
		}
		if err := formErrors(data.Errors, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<form method="post" action="/expenses">`); err != nil {
			return err
		}
		if err := textInput(w, "vendor_name", "Vendor", data.VendorName, true, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "vendor_gstin", "Vendor GSTIN", data.VendorGSTIN, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "vendor_pan", "Vendor PAN", data.VendorPAN, false, data.Errors); err != nil {
			return err
		}
		if err := selectInput(w, "category", "Category", data.Category, data.Categories); err != nil {
			return err
		}
		if err := textInput(w, "amount", "Amount", data.Amount, true, data.Errors); err != nil {
			return err
		}
		if err := selectInput(w, "gst_type", "GST Type", data.GSTType, []string{"cgst_sgst", "igst", "none"}); err != nil {
			return err
		}
		if err := textInput(w, "gst_percent", "GST %", data.GSTPercent, false, data.Errors); err != nil {
			return err
		}
		checked := ""
		if data.TDSApplicable {
			checked = " checked"
		}
		if _, err := fmt.Fprintf(w, `<label>TDS Applicable<input type="checkbox" name="tds_applicable" value="true"%s></label>`, checked); err != nil {
			return err
		}
		if err := textInput(w, "tds_percent", "TDS %", data.TDSPercent, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "expense_date", "Expense Date", data.ExpenseDate, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "notes", "Notes", data.Notes, false, data.Errors); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<div class="form-actions"><button type="submit" class="btn primary">Save</button> <a href="/expenses">Cancel</a></div></form></section>`)
		return err
	})
}

// ExpenseFormPage renders the expense form inside the shell.
func ExpenseFormPage(data ExpenseFormData, header HeaderData) templ.Component {
	return Layout("Add Expense", header, ExpenseFormContent(data))
}
