package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// importBatchSize is how many asset rows are inserted per transaction.
const importBatchSize = 50

// ImportResult holds the outcome of a batch import operation.
type ImportResult struct {
	TotalRows  int              `json:"total_rows"`
	Imported   int              `json:"imported"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors,omitempty"`
	RolledBack bool             `json:"rolled_back"`
}

// ImportRowError represents a failure to insert a specific row.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CommitAssetImport re-validates and batch-inserts parsed media asset rows
// for a company. Rows are processed in chunks of importBatchSize; a failed
// insert rolls back its whole chunk and the remaining chunks still run.
func CommitAssetImport(
	app *pocketbase.PocketBase,
	companyID string,
	parsedRows []map[string]string,
) (*ImportResult, error) {
	if _, err := app.FindRecordById("companies", companyID); err != nil {
		return nil, fmt.Errorf("company not found: %w", err)
	}

	// Re-validate before touching the database. The upload was validated at
	// preview time, but the commit arrives in a separate request.
	revalidationErrors := revalidateAssetRows(parsedRows)
	if len(revalidationErrors) > 0 {
		errorRowSet := make(map[int]bool)
		for _, e := range revalidationErrors {
			errorRowSet[e.Row] = true
		}
		return &ImportResult{
			TotalRows:  len(parsedRows),
			Failed:     len(errorRowSet),
			Errors:     revalidationErrors,
			RolledBack: true,
		}, nil
	}

	col, err := app.FindCollectionByNameOrId("media_assets")
	if err != nil {
		return nil, fmt.Errorf("media_assets collection not found: %w", err)
	}

	result := &ImportResult{TotalRows: len(parsedRows)}

	for chunkStart := 0; chunkStart < len(parsedRows); chunkStart += importBatchSize {
		chunkEnd := chunkStart + importBatchSize
		if chunkEnd > len(parsedRows) {
			chunkEnd = len(parsedRows)
		}
		chunk := parsedRows[chunkStart:chunkEnd]

		chunkErrors := insertAssetChunk(app, col, companyID, chunk, chunkStart)
		if len(chunkErrors) > 0 {
			result.Errors = append(result.Errors, chunkErrors...)
			result.Failed += len(chunk) // entire chunk failed
			result.RolledBack = true
		} else {
			result.Imported += len(chunk)
		}
	}

	return result, nil
}

// revalidateAssetRows reruns the field checks on already-parsed rows.
func revalidateAssetRows(parsedRows []map[string]string) []ImportRowError {
	var errs []ImportRowError
	fields := AssetTemplateFields()

	for i, row := range parsedRows {
		rowNum := i + 2 // 1-indexed plus header row
		for _, f := range fields {
			if f.AlwaysRequired && strings.TrimSpace(row[f.Key]) == "" {
				errs = append(errs, ImportRowError{
					Row:     rowNum,
					Field:   f.Key,
					Message: f.Label + " is required",
				})
			}
		}
		if v := strings.TrimSpace(row["dimensions"]); v != "" {
			if d := ParseDimensions(v); len(d.Faces) == 0 {
				errs = append(errs, ImportRowError{
					Row:     rowNum,
					Field:   "dimensions",
					Message: "Dimensions must look like 40x20 or 25x5-12x3",
				})
			}
		}
		if v := strings.TrimSpace(row["card_rate"]); v != "" {
			if rate, err := strconv.ParseFloat(v, 64); err != nil || rate <= 0 {
				errs = append(errs, ImportRowError{
					Row:     rowNum,
					Field:   "card_rate",
					Message: "Card Rate must be a positive number",
				})
			}
		}
	}
	return errs
}

// insertAssetChunk inserts a batch of rows within a RunInTransaction block.
// If any row fails, the entire chunk is rolled back and errors are returned.
func insertAssetChunk(
	app *pocketbase.PocketBase,
	col *core.Collection,
	companyID string,
	rows []map[string]string,
	startOffset int,
) []ImportRowError {
	var chunkErrors []ImportRowError

	err := app.RunInTransaction(func(txApp core.App) error {
		for i, rowData := range rows {
			rowNum := startOffset + i + 2

			record := core.NewRecord(col)
			record.Set("company", companyID)
			record.Set("media_type", strings.TrimSpace(rowData["media_type"]))
			record.Set("city", strings.TrimSpace(rowData["city"]))
			record.Set("area", strings.TrimSpace(rowData["area"]))
			record.Set("location", strings.TrimSpace(rowData["location"]))
			record.Set("direction", strings.TrimSpace(rowData["direction"]))
			record.Set("dimensions", strings.TrimSpace(rowData["dimensions"]))
			record.Set("illumination", strings.TrimSpace(rowData["illumination"]))
			record.Set("status", "available")

			sqft, _ := strconv.ParseFloat(strings.TrimSpace(rowData["sqft"]), 64)
			record.Set("sqft", AssetSqft(sqft, rowData["dimensions"]))

			cardRate, _ := strconv.ParseFloat(strings.TrimSpace(rowData["card_rate"]), 64)
			record.Set("card_rate", cardRate)

			if v := strings.TrimSpace(rowData["base_rate"]); v != "" {
				baseRate, _ := strconv.ParseFloat(v, 64)
				record.Set("base_rate", baseRate)
			}
			if v := strings.TrimSpace(rowData["available_from"]); v != "" {
				record.Set("available_from", v)
			}

			if err := txApp.Save(record); err != nil {
				chunkErrors = append(chunkErrors, ImportRowError{
					Row:     rowNum,
					Message: fmt.Sprintf("failed to save: %v", err),
				})
				return fmt.Errorf("row %d: %w", rowNum, err)
			}
		}
		return nil
	})
	if err != nil && len(chunkErrors) == 0 {
		chunkErrors = append(chunkErrors, ImportRowError{
			Row:     startOffset + 2,
			Message: err.Error(),
		})
	}
	return chunkErrors
}
