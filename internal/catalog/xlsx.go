package catalog

import (
	"context"
	"fmt"
	"iter"

	"github.com/UnknownOlympus/storefinder/internal/models"
	"github.com/xuri/excelize/v2"
)

// readXLSX yields the stores on the first sheet of a workbook. Row one is the header.
func readXLSX(ctx context.Context, path string) iter.Seq2[models.StoreRecord, error] {
	return func(yield func(models.StoreRecord, error) bool) {
		book, err := excelize.OpenFile(path)
		if err != nil {
			yield(models.StoreRecord{}, fmt.Errorf("failed to open catalog workbook: %w", err))
			return
		}
		defer book.Close()

		sheets := book.GetSheetList()
		if len(sheets) == 0 {
			return
		}

		rows, err := book.Rows(sheets[0])
		if err != nil {
			yield(models.StoreRecord{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err))
			return
		}
		defer rows.Close()

		var hdr header
		for rows.Next() {
			if err = ctx.Err(); err != nil {
				yield(models.StoreRecord{}, err)
				return
			}

			row, err := rows.Columns()
			if err != nil {
				yield(models.StoreRecord{}, fmt.Errorf("failed to read catalog row: %w", err))
				return
			}

			if hdr == nil {
				if hdr, err = newHeader(row); err != nil {
					yield(models.StoreRecord{}, err)
					return
				}
				continue
			}

			if len(row) == 0 {
				continue
			}

			if !yield(hdr.record(row), nil) {
				return
			}
		}

		if err = rows.Error(); err != nil {
			yield(models.StoreRecord{}, fmt.Errorf("failed to iterate sheet %q: %w", sheets[0], err))
		}
	}
}
