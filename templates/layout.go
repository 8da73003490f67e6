// Package templates renders the HTML surface of the application. Components
// are built directly on the templ runtime so handlers can treat every page
// and partial as a templ.Component.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ActiveCompany is the company currently selected in the header switcher.
type ActiveCompany struct {
	ID   string
	Name string
}

// CompanySelectorItem is one entry in the header company dropdown.
type CompanySelectorItem struct {
	ID       string
	Name     string
	City     string
	IsActive bool
}

// HeaderData feeds the top navigation bar.
type HeaderData struct {
	ActiveCompany *ActiveCompany
	Companies     []CompanySelectorItem
}

// esc HTML-escapes a value for element content.
func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps a content component in the page shell: head, header with the
// company switcher, nav links and the toast container.
func Layout(title string, header HeaderData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@2.0.4"></script>
<script src="/static/app.js" defer></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="topbar">
<a href="/" class="brand">AdBooth</a>
<nav>
<a href="/assets">Media</a>
<a href="/campaigns">Campaigns</a>
<a href="/plans">Plans</a>
<a href="/expenses">Expenses</a>
<a href="/reports/vacant">Vacant Report</a>
</nav>
`, esc(title)); err != nil {
			return err
		}
		if err := companySwitcher(header, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</header>\n<main id=\"main\" class=\"content\">\n"); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "\n</main>\n<div id=\"toast-container\"></div>\n</body>\n</html>")
		return err
	})
}

func companySwitcher(header HeaderData, w io.Writer) error {
	if _, err := io.WriteString(w, `<div class="company-switcher">`); err != nil {
		return err
	}
	if header.ActiveCompany != nil {
		if _, err := fmt.Fprintf(w, `<span class="active-company">%s</span>`, esc(header.ActiveCompany.Name)); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, `<span class="active-company muted">No company selected</span>`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `<ul class="company-menu">`); err != nil {
		return err
	}
	for _, c := range header.Companies {
		cls := ""
		if c.IsActive {
			cls = ` class="active"`
		}
		if _, err := fmt.Fprintf(w,
			`<li%s><button hx-post="/companies/%s/activate" hx-swap="none">%s</button></li>`,
			cls, esc(c.ID), esc(c.Name)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul></div>`)
	return err
}

// formErrors renders the shared inline error list for a form.
func formErrors(errs map[string]string, w io.Writer) error {
	if len(errs) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, `<ul class="form-errors">`); err != nil {
		return err
	}
	for field, msg := range errs {
		if _, err := fmt.Fprintf(w, `<li data-field="%s">%s</li>`, esc(field), esc(msg)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul>`)
	return err
}

// textInput renders a labelled input with any error attached to it.
func textInput(w io.Writer, name, label, value string, required bool, errs map[string]string) error {
	req := ""
	if required {
		req = " required"
	}
	if _, err := fmt.Fprintf(w,
		`<label>%s<input type="text" name="%s" value="%s"%s></label>`,
		esc(label), esc(name), esc(value), req); err != nil {
		return err
	}
	if msg, ok := errs[name]; ok {
		if _, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`, esc(msg)); err != nil {
			return err
		}
	}
	return nil
}

// selectInput renders a labelled select with the current value selected.
func selectInput(w io.Writer, name, label, value string, options []string) error {
	if _, err := fmt.Fprintf(w, `<label>%s<select name="%s">`, esc(label), esc(name)); err != nil {
		return err
	}
	for _, opt := range options {
		sel := ""
		if opt == value {
			sel = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(opt), sel, esc(opt)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select></label>`)
	return err
}
