// Package cli wires the storefinder command line.
package cli

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/storefinder/internal/models"
	"github.com/spf13/cobra"
)

const usageExamples = `  storefinder --address="1770 Union St, San Francisco, CA 94123"
  storefinder --zip=94115 --units=km
  storefinder --zip=94115 --output=json`

// Finder answers a query with the rendered result.
type Finder interface {
	FindStore(ctx context.Context, query models.Query) (string, error)
}

// FinderFactory builds the Finder once the arguments are valid.
// catalogPath is empty unless --catalog was given.
type FinderFactory func(ctx context.Context, catalogPath string) (Finder, error)

// NewRootCmd returns the storefinder command.
func NewRootCmd(newFinder FinderFactory) *cobra.Command {
	var (
		address     string
		zip         string
		units       string
		outputMode  string
		catalogPath string
	)

	validator := newQueryValidator()

	cmd := &cobra.Command{
		Use:   "storefinder",
		Short: "Find the nearest store to an address or zip code",
		Long: `storefinder locates the nearest store (as the crow flies) from the store catalog,
prints the matching store address, as well as the distance to that store.
If there are multiple best matches for the address or zip, the first is used.`,
		Example:       usageExamples,
		Version:       "1.0",
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := models.Query{
				Address: address,
				Zip:     zip,
				Units:   models.Units(units),
				Output:  models.OutputMode(outputMode),
			}
			if err := validator.Check(query); err != nil {
				return err
			}

			// Arguments are valid; later failures are not usage errors.
			cmd.SilenceUsage = true

			finder, err := newFinder(cmd.Context(), catalogPath)
			if err != nil {
				return err
			}

			result, err := finder.FindStore(cmd.Context(), query)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.SetVersionTemplate("Find Store {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVar(&address, "address", "", "find nearest store to this address")
	flags.StringVar(&zip, "zip", "", "find nearest store to this zip code")
	flags.StringVar(&units, "units", string(models.UnitsMiles), "display units in miles or kilometers (mi|km)")
	flags.StringVar(&outputMode, "output", string(models.OutputText),
		"output in human-readable text, or in JSON (text|json)")
	flags.StringVar(&catalogPath, "catalog", "", "catalog file to search (default from configuration)")

	return cmd
}
