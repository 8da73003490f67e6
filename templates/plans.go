package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PlanRow is one plan in the list table.
type PlanRow struct {
	ID         string
	Name       string
	ClientName string
	StartDate  string
	EndDate    string
	Status     string
}

// PlanListData feeds the plan list page.
type PlanListData struct {
	Plans []PlanRow
}

// PlanListContent renders the plan table partial. Converted plans link to
// the campaign they became instead of offering conversion again.
func PlanListContent(data PlanListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="plan-list">
<div class="page-head"><h1>Plans</h1>
<a class="btn" href="/plans/new">New Plan</a></div>
<table class="data-table"><thead><tr>
<th>Name</th><th>Client</th><th>Start</th><th>End</th><th>Status</th><th></th>
</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, p := range data.Plans {
			if _, err := fmt.Fprintf(w, `<tr>
<td><a href="/plans/%s">%s</a></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`,
				esc(p.ID), esc(p.Name), esc(p.ClientName), esc(p.StartDate), esc(p.EndDate), esc(p.Status)); err != nil {
				return err
			}
			if p.Status != "converted" {
				if _, err := fmt.Fprintf(w,
					`<button hx-post="/plans/%s/convert" hx-swap="none">Convert to Campaign</button> `,
					esc(p.ID)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`<button hx-delete="/plans/%s" hx-confirm="Delete this plan?" hx-target="#plan-list" hx-swap="outerHTML">Delete</button></td></tr>`,
				esc(p.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

// PlanListPage renders the plan list inside the shell.
func PlanListPage(data PlanListData, header HeaderData) templ.Component {
	return Layout("Plans", header, PlanListContent(data))
}

// PlanFormData reuses the campaign form fields; plans carry the same
// billing state minus the booking side effects.
type PlanFormData struct {
	ID            string
	Name          string
	ClientName    string
	StartDate     string
	EndDate       string
	BillingMode   string
	Months        string
	GSTType       string
	GSTPercent    string
	TDSApplicable bool
	TDSPercent    string
	Errors        map[string]string
}

// PlanFormContent renders the plan create form partial.
func PlanFormContent(data PlanFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="plan-form"><h1>New Plan</h1>`); err != nil {
			return err
		}
		if err := formErrors(data.Errors, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<form method="post" action="/plans">`); err != nil {
			return err
		}
		if err := textInput(w, "name", "Plan Name", data.Name, true, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "client_name", "Client", data.ClientName, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "start_date", "Start Date", data.StartDate, true, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "end_date", "End Date", data.EndDate, true, data.Errors); err != nil {
			return err
		}
		if err := selectInput(w, "billing_mode", "Billing Mode", data.BillingMode, []string{"month", "days"}); err != nil {
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
		_, err := io.WriteString(w, `<div class="form-actions"><button type="submit" class="btn primary">Save</button> <a href="/plans">Cancel</a></div></form></section>`)
		return err
	})
}

// PlanFormPage renders the plan form inside the shell.
func PlanFormPage(data PlanFormData, header HeaderData) templ.Component {
	return Layout("New Plan", header, PlanFormContent(data))
}

// PlanViewData feeds the plan detail page. Lines carry the same derived
// pricing a campaign shows; the only difference is that nothing is booked.
type PlanViewData struct {
	ID           string
	Name         string
	ClientName   string
	StartDate    string
	EndDate      string
	BillingMode  string
	Months       string
	DurationDays int
	Status       string
	Lines        []CampaignLineView
	SubTotal     string
	TaxAmount    string
	TotalWithTax string
	TDSAmount    string
	NetPayable   string
}

// PlanViewContent renders the plan detail partial: meta, priced lines and
// the totals block.
func PlanViewContent(data PlanViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="plan-view">
<div class="page-head"><h1>%s</h1>
<div class="actions">`,
			esc(data.Name)); err != nil {
			return err
		}
		if data.Status != "converted" {
			if _, err := fmt.Fprintf(w,
				`<button hx-post="/plans/%s/convert" hx-swap="none">Convert to Campaign</button>`,
				esc(data.ID)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</div></div>
<dl class="meta">
<dt>Client</dt><dd>%s</dd>
<dt>Period</dt><dd>%s to %s (%d days)</dd>
<dt>Billing</dt><dd>%s / %s months</dd>
<dt>Status</dt><dd>%s</dd>
</dl>`,
			esc(data.ClientName), esc(data.StartDate), esc(data.EndDate), data.DurationDays,
			esc(data.BillingMode), esc(data.Months), esc(data.Status)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<table class="data-table"><thead><tr>
<th>Asset</th><th>Dimensions</th><th>Days</th><th>Monthly Rate</th><th>Line Total</th><th>Incl. GST</th>
</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, l := range data.Lines {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td><td>%s</td><td class="num">%d</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td>
</tr>`,
				esc(l.AssetLabel), esc(l.Dimensions), l.BookedDays,
				esc(l.MonthlyRate), esc(l.LineTotal), esc(l.TotalWithTax)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</tbody></table>
<dl class="totals">
<dt>Subtotal</dt><dd>%s</dd>
<dt>Total GST</dt><dd>%s</dd>
<dt>Grand Total</dt><dd>%s</dd>`,
			esc(data.SubTotal), esc(data.TaxAmount), esc(data.TotalWithTax)); err != nil {
			return err
		}
		if data.TDSAmount != "" {
			if _, err := fmt.Fprintf(w, `<dt>TDS Deducted</dt><dd>%s</dd>`, esc(data.TDSAmount)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<dt>Net Payable</dt><dd>%s</dd></dl></section>`, esc(data.NetPayable))
		return err
	})
}

// PlanViewPage renders the plan detail inside the shell.
func PlanViewPage(data PlanViewData, header HeaderData) templ.Component {
	return Layout(data.Name, header, PlanViewContent(data))
}
