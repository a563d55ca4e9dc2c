package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/UnknownOlympus/storefinder/internal/models"
)

// Every column of the stores table except the surrogate key, as one JSON object per row.
const storesQuery = `
		SELECT to_jsonb(s) - 'store_id'
		FROM public.stores AS s
		ORDER BY s.store_id ASC;
	`

// storeColumns maps table columns to catalog column names.
// Columns not listed here reach the store under their table name.
var storeColumns = map[string]string{
	"store_name":     models.ColumnStoreName,
	"store_location": models.ColumnStoreLocation,
	"address":        models.ColumnAddress,
	"city":           models.ColumnCity,
	"state":          models.ColumnState,
	"zip_code":       models.ColumnZipCode,
	"latitude":       models.ColumnLatitude,
	"longitude":      models.ColumnLongitude,
	"county":         models.ColumnCounty,
}

// Stores streams the catalog in insertion order.
// The rows are closed when iteration stops; the first error ends the sequence.
func (r *Repository) Stores(ctx context.Context) iter.Seq2[models.StoreRecord, error] {
	return func(yield func(models.StoreRecord, error) bool) {
		rows, err := r.db.Query(ctx, storesQuery)
		if err != nil {
			yield(models.StoreRecord{}, fmt.Errorf("failed to query stores: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var body []byte
			if errScan := rows.Scan(&body); errScan != nil {
				yield(models.StoreRecord{}, fmt.Errorf("failed to scan store: %w", errScan))
				return
			}

			store, errDecode := decodeStore(body)
			if errDecode != nil {
				yield(models.StoreRecord{}, errDecode)
				return
			}

			if !yield(store, nil) {
				return
			}
		}

		if err = rows.Err(); err != nil {
			yield(models.StoreRecord{}, fmt.Errorf("failed to read row: %w", err))
		}
	}
}

// decodeStore turns a JSON row into a store. Strings are taken as is, null is empty and
// any other value keeps its JSON text, so numeric coordinates keep the digits Postgres printed.
func decodeStore(body []byte) (models.StoreRecord, error) {
	var columns map[string]json.RawMessage
	if err := json.Unmarshal(body, &columns); err != nil {
		return models.StoreRecord{}, fmt.Errorf("failed to decode store: %w", err)
	}

	row := make(map[string]string, len(columns))
	for name, raw := range columns {
		if column, ok := storeColumns[name]; ok {
			name = column
		}

		raw = bytes.TrimSpace(raw)
		switch {
		case bytes.Equal(raw, []byte("null")):
			row[name] = ""
		case len(raw) > 0 && raw[0] == '"':
			var value string
			if err := json.Unmarshal(raw, &value); err != nil {
				return models.StoreRecord{}, fmt.Errorf("failed to decode column %q: %w", name, err)
			}
			row[name] = value
		default:
			row[name] = string(raw)
		}
	}

	return models.NewStoreRecord(row), nil
}
