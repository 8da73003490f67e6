package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// CompanyFormData carries form values and validation errors for the
// company create/edit form.
type CompanyFormData struct {
	ID      string
	Name    string
	GSTIN   string
	PAN     string
	State   string
	Address string
	Phone   string
	Email   string
	Errors  map[string]string
}

// CompanyListContent renders the tenant company table partial.
func CompanyListContent(companies []CompanySelectorItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="company-list">
<div class="page-head"><h1>Companies</h1>
<a class="btn" href="/companies/new">Add Company</a></div>
<table class="data-table"><thead><tr><th>Name</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, c := range companies {
			active := ""
			if c.IsActive {
				active = ` <span class="badge">active</span>`
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%s%s</td>
<td><button hx-post="/companies/%s/activate" hx-swap="none">Switch</button>
<a href="/companies/%s/edit">Edit</a></td></tr>`,
				esc(c.Name), active, esc(c.ID), esc(c.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

// CompanyListPage renders the company list inside the shell.
func CompanyListPage(companies []CompanySelectorItem, header HeaderData) templ.Component {
	return Layout("Companies", header, CompanyListContent(companies))
}

// CompanyFormContent renders the company create/edit form partial.
func CompanyFormContent(data CompanyFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/companies"
		heading := "Add Company"
		if data.ID != "" {
			action = "/companies/" + data.ID + "/edit"
			heading = "Edit Company"
		}
		if _, err := fmt.Fprintf(w, `<section id="company-form"><h1>%s</h1>`, esc(heading)); err != nil {
			return err
		}
		if err := formErrors(data.Errors, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s">`, esc(action)); err != nil {
			return err
		}
		if err := textInput(w, "name", "Company Name", data.Name, true, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "gstin", "GSTIN", data.GSTIN, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "pan", "PAN", data.PAN, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "state", "State", data.State, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "address", "Address", data.Address, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "phone", "Phone", data.Phone, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "email", "Email", data.Email, false, data.Errors); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<div class="form-actions"><button type="submit" class="btn primary">Save</button> <a href="/companies">Cancel</a></div></form></section>`)
		return err
	})
}

// CompanyFormPage renders the company form inside the shell.
func CompanyFormPage(data CompanyFormData, header HeaderData) templ.Component {
	title := "Add Company"
	if data.ID != "" {
		title = "Edit Company"
	}
	return Layout(title, header, CompanyFormContent(data))
}
