package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// CampaignRow is one campaign in the list table.
type CampaignRow struct {
	ID         string
	Name       string
	ClientName string
	StartDate  string
	EndDate    string
	Status     string
}

// CampaignListData feeds the campaign list page.
type CampaignListData struct {
	Campaigns []CampaignRow
}

// CampaignFormData carries form values and validation errors for the
// campaign create/edit form.
type CampaignFormData struct {
	ID            string
	Name          string
	ClientName    string
	ClientGSTIN   string
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

// CampaignLineView is one priced asset line as displayed.
type CampaignLineView struct {
	LineID       string
	AssetLabel   string
	Dimensions   string
	BookedDays   int
	MonthlyRate  string
	LineTotal    string
	TotalWithTax string
}

// CampaignViewData feeds the campaign detail page, totals included.
type CampaignViewData struct {
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

// CampaignListContent renders the campaign table partial.
func CampaignListContent(data CampaignListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="campaign-list">
<div class="page-head"><h1>Campaigns</h1>
<a class="btn" href="/campaigns/new">New Campaign</a></div>
<table class="data-table"><thead><tr>
<th>Name</th><th>Client</th><th>Start</th><th>End</th><th>Status</th><th></th>
</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, c := range data.Campaigns {
			if _, err := fmt.Fprintf(w, `<tr>
<td><a href="/campaigns/%s">%s</a></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>
<td><button hx-delete="/campaigns/%s" hx-confirm="Delete this campaign?" hx-target="#campaign-list" hx-swap="outerHTML">Delete</button></td>
</tr>`,
				esc(c.ID), esc(c.Name), esc(c.ClientName), esc(c.StartDate), esc(c.EndDate),
				esc(c.Status), esc(c.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

// CampaignListPage renders the campaign list inside the shell.
func CampaignListPage(data CampaignListData, header HeaderData) templ.Component {
	return Layout("Campaigns", header, CampaignListContent(data))
}

// CampaignFormContent renders the campaign create/edit form partial.
func CampaignFormContent(data CampaignFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/campaigns"
		heading := "New Campaign"
		if data.ID != "" {
			action = "/campaigns/" + data.ID + "/edit"
			heading = "Edit Campaign"
		}
		if _, err := fmt.Fprintf(w, `<section id="campaign-form"><h1>%s</h1>`, esc(heading)); err != nil {
			return err
		}
		if err := formErrors(data.Errors, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s">`, esc(action)); err != nil {
			return err
		}
		if err := textInput(w, "name", "Campaign Name", data.Name, true, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "client_name", "Client", data.ClientName, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "client_gstin", "Client GSTIN", data.ClientGSTIN, false, data.Errors); err != nil {
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
		if err := textInput(w, "months", "Months", data.Months, false, data.Errors); err != nil {
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
		_, err := io.WriteString(w, `<div class="form-actions"><button type="submit" class="btn primary">Save</button> <a href="/campaigns">Cancel</a></div></form></section>`)
		return err
	})
}

// CampaignFormPage renders the campaign form inside the shell.
func CampaignFormPage(data CampaignFormData, header HeaderData) templ.Component {
	title := "New Campaign"
	if data.ID != "" {
		title = "Edit Campaign"
	}
	return Layout(title, header, CampaignFormContent(data))
}

// CampaignViewContent renders the campaign detail partial: meta, priced
// lines and the totals block.
func CampaignViewContent(data CampaignViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="campaign-view">
<div class="page-head"><h1>%s</h1>
<div class="actions">
<a class="btn" href="/campaigns/%s/edit">Edit</a>
<a class="btn" href="/campaigns/%s/export/excel">Excel</a>
<a class="btn" href="/campaigns/%s/export/pdf">PDF</a>
</div></div>
<dl class="meta">
<dt>Client</dt><dd>%s</dd>
<dt>Period</dt><dd>%s to %s (%d days)</dd>
<dt>Billing</dt><dd>%s / %s months</dd>
<dt>Status</dt><dd>%s</dd>
</dl>`,
			esc(data.Name), esc(data.ID), esc(data.ID), esc(data.ID),
			esc(data.ClientName), esc(data.StartDate), esc(data.EndDate), data.DurationDays,
			esc(data.BillingMode), esc(data.Months), esc(data.Status)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<table class="data-table"><thead><tr>
<th>Asset</th><th>Dimensions</th><th>Days</th><th>Monthly Rate</th><th>Line Total</th><th>Incl. GST</th><th></th>
</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, l := range data.Lines {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td><td>%s</td><td class="num">%d</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td>
<td><button hx-delete="/campaigns/%s/lines/%s" hx-target="#campaign-view" hx-swap="outerHTML">Remove</button></td>
</tr>`,
				esc(l.AssetLabel), esc(l.Dimensions), l.BookedDays,
				esc(l.MonthlyRate), esc(l.LineTotal), esc(l.TotalWithTax),
				esc(data.ID), esc(l.LineID)); err != nil {
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

// CampaignViewPage renders the campaign detail inside the shell.
func CampaignViewPage(data CampaignViewData, header HeaderData) templ.Component {
	return Layout(data.Name, header, CampaignViewContent(data))
}
