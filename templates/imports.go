package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"adbooth/services"
)

// AssetImportData feeds the upload form page.
type AssetImportData struct {
	CompanyID   string
	CompanyName string
}

// AssetImportContent renders the upload form partial.
func AssetImportContent(data AssetImportData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section id="asset-import">
<h1>Import Media Assets</h1>
<p class="muted">Importing into %s. Download the <a href="/assets/template">template</a> first.</p>
<form hx-post="/assets/import" hx-encoding="multipart/form-data" hx-target="#import-results">
<input type="file" name="file" accept=".csv,.xlsx" required>
<button type="submit" class="btn primary">Validate</button>
</form>
<div id="import-results"></div>
</section>`, esc(data.CompanyName))
		return err
	})
}

// AssetImportPage renders the upload form inside the shell.
func AssetImportPage(data AssetImportData, header HeaderData) templ.Component {
	return Layout("Import Media Assets", header, AssetImportContent(data))
}

// AssetValidationResults renders the preview after a file upload: counts,
// per-row errors and, when the file is clean, the commit form carrying the
// parsed rows.
func AssetValidationResults(result *services.ValidationResult, parsedRowsJSON string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="import-summary">
<p>%d rows checked: <strong>%d valid</strong>, <strong>%d with errors</strong></p>`,
			result.TotalRows, result.ValidRows, result.ErrorRows); err != nil {
			return err
		}
		if len(result.Errors) > 0 {
			if _, err := io.WriteString(w, `<table class="data-table errors"><thead><tr><th>Row</th><th>Field</th><th>Error</th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, e := range result.Errors {
				if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td>%s</td><td>%s</td></tr>`,
					e.Row, esc(e.Field), esc(e.Message)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tbody></table>
<form method="post" action="/assets/import/errors">
<button type="submit" class="btn">Download Error Report</button>
</form>`); err != nil {
				return err
			}
		}
		if result.ErrorRows == 0 && parsedRowsJSON != "" {
			if _, err := fmt.Fprintf(w, `<form hx-post="/assets/import/commit" hx-target="#import-results">
<input type="hidden" name="parsed_rows_json" value="%s">
<button type="submit" class="btn primary">Import %d Assets</button>
</form>`, esc(parsedRowsJSON), result.ValidRows); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// AssetImportSuccess renders the post-commit confirmation.
func AssetImportSuccess(imported int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="import-success">
<p>%d assets imported.</p>
<a class="btn" href="/assets">Back to Inventory</a>
</div>`, imported)
		return err
	})
}

// AssetImportFailure renders the post-commit failure view with row errors.
func AssetImportFailure(result *services.ImportResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="import-failure">
<p>%d of %d rows failed; failed chunks were rolled back.</p><ul>`,
			result.Failed, result.TotalRows); err != nil {
			return err
		}
		for _, e := range result.Errors {
			if _, err := fmt.Fprintf(w, `<li>Row %d: %s</li>`, e.Row, esc(e.Message)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></div>`)
		return err
	})
}
