package repository

import (
	"log/slog"

	"github.com/UnknownOlympus/storefinder/internal/catalog"
)

// Repository reads the store catalog from PostgreSQL.
type Repository struct {
	db  Database
	log *slog.Logger
}

var _ catalog.Source = (*Repository)(nil)

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
