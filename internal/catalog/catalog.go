// Package catalog streams store records from catalog files.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/UnknownOlympus/storefinder/internal/models"
)

// DefaultPath is the catalog file read from the working directory when none is configured.
const DefaultPath = "store-locations.csv"

var (
	// ErrMissingColumn is returned when a catalog header lacks a required column.
	ErrMissingColumn = errors.New("catalog is missing a required column")
	// ErrUnsupportedFormat is returned for catalog files that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Source yields catalog stores in catalog order. Each call to Stores starts a new forward-only pass.
type Source interface {
	Stores(ctx context.Context) iter.Seq2[models.StoreRecord, error]
}

// FileSource reads stores from a CSV or XLSX file, chosen by the file extension.
type FileSource struct {
	path string
	log  *slog.Logger
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string, log *slog.Logger) *FileSource {
	return &FileSource{path: path, log: log}
}

// Stores opens the file and yields its rows. The file is closed when iteration stops.
func (fs *FileSource) Stores(ctx context.Context) iter.Seq2[models.StoreRecord, error] {
	fs.log.DebugContext(ctx, "Reading store catalog", "path", fs.path)

	switch strings.ToLower(filepath.Ext(fs.path)) {
	case ".csv", ".txt", "":
		return readCSV(ctx, fs.path)
	case ".xlsx", ".xlsm":
		return readXLSX(ctx, fs.path)
	default:
		return failed(fmt.Errorf("%w: %s", ErrUnsupportedFormat, fs.path))
	}
}

// FromSlice yields the given stores in order.
func FromSlice(stores []models.StoreRecord) iter.Seq2[models.StoreRecord, error] {
	return func(yield func(models.StoreRecord, error) bool) {
		for _, store := range stores {
			if !yield(store, nil) {
				return
			}
		}
	}
}

func failed(err error) iter.Seq2[models.StoreRecord, error] {
	return func(yield func(models.StoreRecord, error) bool) {
		yield(models.StoreRecord{}, err)
	}
}

// header is the catalog's first row. Names are kept exactly as written, apart from a
// leading byte order mark.
type header []string

func newHeader(names []string) (header, error) {
	hdr := make(header, len(names))
	present := make(map[string]bool, len(names))
	for idx, name := range names {
		if idx == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		hdr[idx] = name
		present[name] = true
	}

	var missing []string
	for _, column := range models.Columns {
		if !present[column] {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return hdr, nil
}

// record builds a store from row, keyed by the header. Cells past the end of row are empty,
// cells past the end of the header are dropped, and a repeated column keeps its last cell.
func (h header) record(row []string) models.StoreRecord {
	values := make(map[string]string, len(h))
	for idx, name := range h {
		var value string
		if idx < len(row) {
			value = row[idx]
		}
		values[name] = value
	}

	return models.NewStoreRecord(values)
}
