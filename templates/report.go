package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"adbooth/services"
)

// VacantReportFormData carries the query inputs of the vacant media report.
type VacantReportFormData struct {
	StartDate string
	EndDate   string
	SortOrder string
	Errors    map[string]string
}

// VacantReportContent renders the vacant media report: the query form plus
// the standardized rows in canonical column order. Booked rows are dimmed
// the same way the Excel export greys them out.
func VacantReportContent(form VacantReportFormData, data services.VacantMediaExport) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="vacant-report">
<div class="page-head"><h1>Vacant Media Report</h1>`); err != nil {
			return err
		}
		if len(data.Rows) > 0 {
			if _, err := fmt.Fprintf(w, `<div class="actions">
<a class="btn" href="/reports/vacant/export/excel?start=%s&amp;end=%s">Excel</a>
<a class="btn" href="/reports/vacant/export/pdf?start=%s&amp;end=%s">PDF</a>
</div>`,
				esc(form.StartDate), esc(form.EndDate),
				esc(form.StartDate), esc(form.EndDate)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		if err := formErrors(form.Errors, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<form method="get" action="/reports/vacant" class="report-query">`); err != nil {
			return err
		}
		if err := textInput(w, "start", "From", form.StartDate, true, form.Errors); err != nil {
			return err
		}
		if err := textInput(w, "end", "To", form.EndDate, true, form.Errors); err != nil {
			return err
		}
		if err := selectInput(w, "sort", "Sort By", form.SortOrder,
			[]string{"location", "area", "city_area_location", "available_from"}); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<button type="submit" class="btn primary">Run</button></form>`); err != nil {
			return err
		}

		if len(data.Rows) == 0 {
			_, err := io.WriteString(w, `<p class="muted">No assets match the selected period.</p></section>`)
			return err
		}

		if data.Duplicates > 0 {
			if _, err := fmt.Fprintf(w, `<p class="muted">%d duplicate rows dropped.</p>`, data.Duplicates); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<table class="data-table"><thead><tr>
<th>S.No</th><th>Media Type</th><th>City</th><th>Area</th><th>Location</th><th>Direction</th><th>Dimensions</th><th>Sqft</th><th>Illumination</th><th>Card Rate</th><th>Available From</th><th>Availability</th>
</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, r := range data.Rows {
			cls := ""
			if r.Availability != string(services.Available) {
				cls = ` class="occupied"`
			}
			if _, err := fmt.Fprintf(w, `<tr%s>
<td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class="num">%s</td><td>%s</td><td class="num">%s</td><td>%s</td><td>%s</td>
</tr>`,
				cls, r.SNo, esc(r.MediaType), esc(r.City), esc(r.Area), esc(r.Location),
				esc(r.Direction), esc(r.Dimensions), esc(services.FormatSqft(r.Sqft)),
				esc(r.Illumination), esc(services.FormatINR(r.CardRate)),
				esc(r.AvailableFrom), esc(r.Availability)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `</tbody></table>
<p class="muted">Generated %s for %s to %s</p></section>`,
			esc(data.GeneratedDate), esc(data.QueryStart), esc(data.QueryEnd))
		return err
	})
}

// VacantReportPage renders the report inside the shell.
func VacantReportPage(form VacantReportFormData, data services.VacantMediaExport, header HeaderData) templ.Component {
	return Layout("Vacant Media Report", header, VacantReportContent(form, data))
}
