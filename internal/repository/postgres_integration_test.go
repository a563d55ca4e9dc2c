//go:build integration

package repository_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/UnknownOlympus/storefinder/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const seedStores = `
	CREATE TABLE public.stores (
		store_id       SERIAL PRIMARY KEY,
		store_name     TEXT NOT NULL,
		store_location TEXT NOT NULL,
		address        TEXT NOT NULL,
		city           TEXT NOT NULL,
		state          TEXT NOT NULL,
		zip_code       TEXT NOT NULL,
		latitude       DOUBLE PRECISION NOT NULL,
		longitude      DOUBLE PRECISION NOT NULL,
		county         TEXT NOT NULL,
		phone          TEXT
	);
	INSERT INTO public.stores
		(store_name, store_location, address, city, state, zip_code, latitude, longitude, county, phone)
	VALUES
		('Hayward', 'NEC Industrial Pkwy & Whipple Rd', '2499 Whipple Rd', 'Hayward', 'CA', '94544-7807',
			37.6076346, -122.0622772, 'Alameda County', '510-489-1100'),
		('Crystal', 'SWC Broadway & Bass Lake Rd', '5537 W Broadway Ave', 'Crystal', 'MN', '55428-3507',
			45.0521539, -93.364854, 'Hennepin County', NULL);
`

func TestStores_Integration(t *testing.T) {
	ctx := t.Context()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("storefinder"),
		postgres.WithUsername("storefinder"),
		postgres.WithPassword("storefinder"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := repository.NewDatabase(ctx, host, port.Port(), "storefinder", "storefinder", "storefinder")
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, seedStores)
	require.NoError(t, err)

	repo := repository.NewRepository(pool, slog.Default())
	stores, err := collect(t, repo)

	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "NEC Industrial Pkwy & Whipple Rd", stores[0].StoreLocation)
	assert.Equal(t, "37.6076346", stores[0].Latitude)
	assert.Equal(t, "-122.0622772", stores[0].Longitude)
	assert.Equal(t, map[string]string{"phone": "510-489-1100"}, stores[0].Extra)
	assert.Equal(t, "Crystal", stores[1].StoreName)
	assert.Equal(t, map[string]string{"phone": ""}, stores[1].Extra)
}
