// Package output renders lookup results for the terminal.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/UnknownOlympus/storefinder/internal/models"
)

// NotFoundPrefix starts every message for a query that could not be located.
const NotFoundPrefix = "Store was not found for input: "

// Format renders store as text or as a flat JSON object, following mode.
// Any mode other than json renders text.
func Format(store models.RankedStore, mode models.OutputMode) (string, error) {
	if mode == models.OutputJSON {
		body, err := json.Marshal(store)
		if err != nil {
			return "", fmt.Errorf("failed to encode store: %w", err)
		}

		return string(body), nil
	}

	return Text(store), nil
}

// Text renders store with the human-readable template.
func Text(store models.RankedStore) string {
	return fmt.Sprintf("%s  -  %.2f %s\n%s\n%s %s, %s",
		store.StoreLocation, store.Distance, store.Units,
		store.Address,
		store.City, store.State, store.ZipCode,
	)
}

// NotFound renders the message for a query that could not be located.
func NotFound(query models.Query) string {
	return NotFoundPrefix + query.String()
}
