package models

import (
	"encoding/json"
	"fmt"
)

// Catalog column names. They double as JSON keys in structured output.
const (
	ColumnStoreName     = "Store Name"
	ColumnStoreLocation = "Store Location"
	ColumnAddress       = "Address"
	ColumnCity          = "City"
	ColumnState         = "State"
	ColumnZipCode       = "Zip Code"
	ColumnLatitude      = "Latitude"
	ColumnLongitude     = "Longitude"
	ColumnCounty        = "County"
)

// Columns lists every column a catalog must provide, in catalog order.
var Columns = []string{
	ColumnStoreName,
	ColumnStoreLocation,
	ColumnAddress,
	ColumnCity,
	ColumnState,
	ColumnZipCode,
	ColumnLatitude,
	ColumnLongitude,
	ColumnCounty,
}

// StoreRecord is one row of the store catalog.
// Latitude and Longitude keep the catalog's decimal-degree text.
// Extra holds any further catalog columns, keyed by their header name.
type StoreRecord struct {
	StoreName     string
	StoreLocation string
	Address       string
	City          string
	State         string
	ZipCode       string
	Latitude      string
	Longitude     string
	County        string
	Extra         map[string]string
}

// NewStoreRecord builds a record from a row keyed by column name.
// Missing keys leave the field empty; keys outside Columns go to Extra.
func NewStoreRecord(row map[string]string) StoreRecord {
	store := StoreRecord{
		StoreName:     row[ColumnStoreName],
		StoreLocation: row[ColumnStoreLocation],
		Address:       row[ColumnAddress],
		City:          row[ColumnCity],
		State:         row[ColumnState],
		ZipCode:       row[ColumnZipCode],
		Latitude:      row[ColumnLatitude],
		Longitude:     row[ColumnLongitude],
		County:        row[ColumnCounty],
	}

	for column, value := range row {
		if isColumn(column) {
			continue
		}
		if store.Extra == nil {
			store.Extra = make(map[string]string)
		}
		store.Extra[column] = value
	}

	return store
}

// Fields returns the record keyed by column name, extra columns included.
func (s StoreRecord) Fields() map[string]string {
	fields := make(map[string]string, len(Columns)+len(s.Extra))
	for column, value := range s.Extra {
		fields[column] = value
	}

	fields[ColumnStoreName] = s.StoreName
	fields[ColumnStoreLocation] = s.StoreLocation
	fields[ColumnAddress] = s.Address
	fields[ColumnCity] = s.City
	fields[ColumnState] = s.State
	fields[ColumnZipCode] = s.ZipCode
	fields[ColumnLatitude] = s.Latitude
	fields[ColumnLongitude] = s.Longitude
	fields[ColumnCounty] = s.County

	return fields
}

func isColumn(name string) bool {
	for _, column := range Columns {
		if column == name {
			return true
		}
	}

	return false
}

// RankedStore is the selected store with its distance from the query location.
//
// It encodes to a flat JSON object: every catalog column plus "distance" and "units".
type RankedStore struct {
	StoreRecord

	Distance float64
	Units    Units
}

type rankedExtras struct {
	Distance float64 `json:"distance"`
	Units    Units   `json:"units"`
}

// MarshalJSON implements json.Marshaler.
func (r RankedStore) MarshalJSON() ([]byte, error) {
	fields := r.Fields()
	flat := make(map[string]any, len(fields)+2)
	for column, value := range fields {
		flat[column] = value
	}
	flat["distance"] = r.Distance
	flat["units"] = r.Units

	return json.Marshal(flat)
}

// UnmarshalJSON implements json.Unmarshaler. Every key other than "distance" and "units"
// is a catalog column and must hold a string.
func (r *RankedStore) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	var extras rankedExtras
	if err := json.Unmarshal(data, &extras); err != nil {
		return err
	}
	delete(flat, "distance")
	delete(flat, "units")

	row := make(map[string]string, len(flat))
	for column, raw := range flat {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return fmt.Errorf("failed to decode %q: %w", column, err)
		}
		row[column] = value
	}

	*r = RankedStore{StoreRecord: NewStoreRecord(row), Distance: extras.Distance, Units: extras.Units}

	return nil
}
