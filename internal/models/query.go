package models

import "fmt"

// Units is the distance unit requested for the result.
type Units string

const (
	// UnitsMiles reports distances in miles. It is the default.
	UnitsMiles Units = "mi"
	// UnitsKilometers reports distances in kilometers.
	UnitsKilometers Units = "km"
)

// OutputMode selects how a result is rendered.
type OutputMode string

const (
	// OutputText renders the human-readable template. It is the default.
	OutputText OutputMode = "text"
	// OutputJSON renders a flat JSON object.
	OutputJSON OutputMode = "json"
)

// Query is a single store lookup built from the command line.
// Address takes precedence over Zip when both are present.
type Query struct {
	Address string     `validate:"required_without=Zip"`
	Zip     string     `validate:"required_without=Address"`
	Units   Units      `validate:"oneof=mi km"`
	Output  OutputMode `validate:"oneof=text json"`
}

// NewQuery returns a Query with the default units and output mode.
func NewQuery(address, zip string) Query {
	return Query{Address: address, Zip: zip, Units: UnitsMiles, Output: OutputText}
}

// Location returns the text to geocode, or an empty string when the query carries none.
func (q Query) Location() string {
	if q.Address != "" {
		return q.Address
	}

	return q.Zip
}

// String renders the raw arguments of the query.
func (q Query) String() string {
	return fmt.Sprintf("{--address: %q, --zip: %q, --units: %q, --output: %q}", q.Address, q.Zip, q.Units, q.Output)
}
