package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"adbooth/services"
)

// AssetRow is one media asset in the inventory table.
type AssetRow struct {
	ID           string
	MediaType    string
	City         string
	Area         string
	Location     string
	Dimensions   string
	Sqft         string
	Illumination string
	CardRate     string
	Status       string
}

// AssetListData feeds the inventory list page.
type AssetListData struct {
	CompanyID   string
	CompanyName string
	Assets      []AssetRow
}

// AssetFormData carries form values and validation errors for the asset
// create/edit form. Values stay as strings so invalid input round-trips.
type AssetFormData struct {
	ID                string
	MediaType         string
	City              string
	Area              string
	Location          string
	Direction         string
	Dimensions        string
	Sqft              string
	Illumination      string
	CardRate          string
	BaseRate          string
	AvailableFrom     string
	Status            string
	MediaTypes        []string
	IlluminationTypes []string
	Errors            map[string]string
}

// AssetListContent renders the inventory table partial.
func AssetListContent(data AssetListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="asset-list">
<div class="page-head"><h1>Media Inventory</h1>
<div class="actions">
<a class="btn" href="/assets/new">Add Asset</a>
<a class="btn" href="/assets/import">Import</a>
<a class="btn" href="/assets/template">Template</a>
<a class="btn" href="/assets/export/excel">Export</a>
</div></div>
<p class="muted">%d assets</p>
<table class="data-table"><thead><tr>
<th>Media Type</th><th>City</th><th>Area</th><th>Location</th><th>Dimensions</th><th>Sqft</th><th>Illumination</th><th>Card Rate</th><th>Status</th><th></th>
</tr></thead><tbody>`, len(data.Assets)); err != nil {
			return err
		}
		for _, a := range data.Assets {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class="num">%s</td><td>%s</td>
<td><a href="/assets/%s/edit">Edit</a>
<button hx-delete="/assets/%s" hx-confirm="Delete this asset?" hx-target="#asset-list" hx-swap="outerHTML">Delete</button></td>
</tr>`,
				esc(a.MediaType), esc(a.City), esc(a.Area), esc(a.Location), esc(a.Dimensions),
				esc(a.Sqft), esc(a.Illumination), esc(a.CardRate), esc(a.Status),
				esc(a.ID), esc(a.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

// AssetListPage renders the inventory list inside the shell.
func AssetListPage(data AssetListData, header HeaderData) templ.Component {
	return Layout("Media Inventory", header, AssetListContent(data))
}

// AssetFormContent renders the asset create/edit form partial.
func AssetFormContent(data AssetFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/assets"
		heading := "Add Asset"
		if data.ID != "" {
			action = "/assets/" + data.ID + "/edit"
			heading = "Edit Asset"
		}
		if _, err := fmt.Fprintf(w, `<section id="asset-form"><h1>%s</h1>`, esc(heading)); err != nil {
			return err
		}
		if err := formErrors(data.Errors, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s">`, esc(action)); err != nil {
			return err
		}
		if err := selectInput(w, "media_type", "Media Type", data.MediaType, data.MediaTypes); err != nil {
			return err
		}
		if err := textInput(w, "city", "City", data.City, true, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "area", "Area", data.Area, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "location", "Location", data.Location, true, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "direction", "Facing Direction", data.Direction, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "dimensions", "Dimensions", data.Dimensions, true, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "sqft", "Sqft", data.Sqft, false, data.Errors); err != nil {
			return err
		}
		if err := selectInput(w, "illumination", "Illumination", data.Illumination, data.IlluminationTypes); err != nil {
			return err
		}
		if err := textInput(w, "card_rate", "Card Rate (monthly)", data.CardRate, true, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "base_rate", "Base Rate (monthly)", data.BaseRate, false, data.Errors); err != nil {
			return err
		}
		if err := textInput(w, "available_from", "Available From", data.AvailableFrom, false, data.Errors); err != nil {
			return err
		}
		if err := selectInput(w, "status", "Status", data.Status, services.AssetStatuses); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<div class="form-actions"><button type="submit" class="btn primary">Save</button> <a href="/assets">Cancel</a></div></form></section>`)
		return err
	})
}

// AssetFormPage renders the asset form inside the shell.
func AssetFormPage(data AssetFormData, header HeaderData) templ.Component {
	title := "Add Asset"
	if data.ID != "" {
		title = "Edit Asset"
	}
	return Layout(title, header, AssetFormContent(data))
}
