package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleAssetDelete deletes an asset. Assets with confirmed future bookings
// are protected; cancel the bookings first.
func HandleAssetDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("media_assets", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Asset not found")
		}

		bookingsCol, err := app.FindCollectionByNameOrId("bookings")
		if err == nil {
			confirmed, _ := app.FindRecordsByFilter(bookingsCol,
				"asset = {:asset} && status = 'confirmed'", "", 1, 0,
				map[string]any{"asset": record.Id})
			if len(confirmed) > 0 {
				return ErrorToast(e, http.StatusConflict,
					"Asset has confirmed bookings; cancel them before deleting")
			}
		}

		if err := app.Delete(record); err != nil {
			log.Printf("asset_delete: could not delete asset: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Asset deleted")
		return HandleAssetList(app)(e)
	}
}
