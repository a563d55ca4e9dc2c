package models_test

import (
	"encoding/json"
	"testing"

	"github.com/UnknownOlympus/storefinder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		query := models.NewQuery("", "94115")

		assert.Equal(t, models.UnitsMiles, query.Units)
		assert.Equal(t, models.OutputText, query.Output)
	})

	t.Run("address wins over zip", func(t *testing.T) {
		assert.Equal(t, "1770 Union St", models.NewQuery("1770 Union St", "94115").Location())
		assert.Equal(t, "94115", models.NewQuery("", "94115").Location())
		assert.Empty(t, models.Query{}.Location())
	})

	t.Run("string shows every argument", func(t *testing.T) {
		query := models.Query{Zip: "94115", Units: models.UnitsKilometers, Output: models.OutputJSON}

		assert.Equal(t, `{--address: "", --zip: "94115", --units: "km", --output: "json"}`, query.String())
	})
}

func TestStoreRecord_Fields(t *testing.T) {
	row := map[string]string{
		models.ColumnStoreName: "Crystal",
		models.ColumnCity:      "Crystal",
		models.ColumnLatitude:  "45.0521539",
		"Phone":                "763-533-2231",
	}

	store := models.NewStoreRecord(row)
	fields := store.Fields()

	assert.Equal(t, map[string]string{"Phone": "763-533-2231"}, store.Extra)
	assert.Len(t, fields, len(models.Columns)+1)
	for column, value := range row {
		assert.Equal(t, value, fields[column])
	}
	assert.Empty(t, fields[models.ColumnCounty])
}

func TestNewStoreRecord_NoExtra(t *testing.T) {
	store := models.NewStoreRecord(map[string]string{models.ColumnStoreName: "Crystal"})

	assert.Nil(t, store.Extra)
}

func TestRankedStore_JSON(t *testing.T) {
	t.Run("extra columns are kept", func(t *testing.T) {
		var store models.RankedStore
		err := json.Unmarshal([]byte(`{"City":"Crystal","Phone":"555","distance":1.5,"units":"km"}`), &store)

		require.NoError(t, err)
		assert.Equal(t, "Crystal", store.City)
		assert.Equal(t, map[string]string{"Phone": "555"}, store.Extra)
		assert.InDelta(t, 1.5, store.Distance, 1e-12)
		assert.Equal(t, models.UnitsKilometers, store.Units)
	})

	t.Run("encodes extra columns next to the catalog columns", func(t *testing.T) {
		store := models.RankedStore{
			StoreRecord: models.NewStoreRecord(map[string]string{
				models.ColumnStoreName: "Crystal",
				"Phone":                "555",
				"Zip Code ":            "55428",
			}),
			Distance: 2.5,
			Units:    models.UnitsMiles,
		}

		body, err := json.Marshal(store)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Len(t, decoded, len(models.Columns)+4)
		assert.Equal(t, "555", decoded["Phone"])
		assert.Equal(t, "55428", decoded["Zip Code "])
		assert.Equal(t, "Crystal", decoded["Store Name"])
		assert.Equal(t, "mi", decoded["units"])
	})

	t.Run("non-string column", func(t *testing.T) {
		var store models.RankedStore
		err := json.Unmarshal([]byte(`{"Latitude":45.05}`), &store)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Latitude"`)
	})
}
