package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/UnknownOlympus/storefinder/internal/models"
)

func readCSV(ctx context.Context, path string) iter.Seq2[models.StoreRecord, error] {
	return func(yield func(models.StoreRecord, error) bool) {
		file, err := os.Open(path)
		if err != nil {
			yield(models.StoreRecord{}, fmt.Errorf("failed to open catalog: %w", err))
			return
		}
		defer file.Close()

		for store, err := range ReadCSV(ctx, file) {
			if !yield(store, err) || err != nil {
				return
			}
		}
	}
}

// ReadCSV yields the stores of a delimited catalog whose first row names the columns.
// Iteration ends after the first error.
func ReadCSV(ctx context.Context, r io.Reader) iter.Seq2[models.StoreRecord, error] {
	return func(yield func(models.StoreRecord, error) bool) {
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1

		names, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(models.StoreRecord{}, fmt.Errorf("failed to read catalog header: %w", err))
			return
		}

		hdr, err := newHeader(names)
		if err != nil {
			yield(models.StoreRecord{}, err)
			return
		}

		for {
			if err = ctx.Err(); err != nil {
				yield(models.StoreRecord{}, err)
				return
			}

			row, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(models.StoreRecord{}, fmt.Errorf("failed to read catalog row: %w", err))
				return
			}

			if !yield(hdr.record(row), nil) {
				return
			}
		}
	}
}
