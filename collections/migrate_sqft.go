package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"adbooth/services"
)

// MigrateMissingSqft finds media assets whose sqft is zero and derives it
// from the dimensions string. Safe to call on every startup -- returns early
// if nothing to migrate.
func MigrateMissingSqft(app *pocketbase.PocketBase) error {
	assetsCol, err := app.FindCollectionByNameOrId("media_assets")
	if err != nil {
		return fmt.Errorf("migrate: could not find media_assets collection: %w", err)
	}

	missing, err := app.FindRecordsByFilter(
		assetsCol,
		"sqft = 0 || sqft = null",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query assets without sqft: %w", err)
	}

	if len(missing) == 0 {
		return nil
	}

	log.Printf("migrate: found %d asset(s) without sqft -- deriving from dimensions...\n", len(missing))

	updated := 0
	for _, asset := range missing {
		dims := services.ParseDimensions(asset.GetString("dimensions"))
		if dims.TotalSqft <= 0 {
			continue
		}

		asset.Set("sqft", services.Round2(dims.TotalSqft))
		if err := app.Save(asset); err != nil {
			log.Printf("migrate: failed to update sqft for asset %s: %v\n", asset.Id, err)
			continue
		}
		updated++
	}

	log.Printf("migrate: sqft derivation complete, %d asset(s) updated.\n", updated)
	return nil
}
