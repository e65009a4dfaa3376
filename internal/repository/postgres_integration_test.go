//go:build integration

package repository

import (
	"context"
	"encoding/json"
	"testing"

	"contact-info-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	require.NoError(t, NewRepository(pool).CreateSchema(ctx))

	return pool
}

func TestRepository_ContactInfo(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	repo := NewRepository(setupTestDatabase(t))
	ctx := context.Background()

	missing, err := repo.GetContactInfo(ctx, "widget_contact_info-2")
	require.NoError(t, err)
	assert.Nil(t, missing)

	rec := &models.AddressRecord{
		InstanceID: "widget_contact_info-2",
		Title:      "Hours & Info",
		Address:    "3999 Mission Boulevard,\nSan Diego CA 92109",
		Phone:      "1-202-555-1212",
		Hours:      "Lunch: 11am - 2pm",
		ShowMap:    true,
		Lat:        32.8,
		Lon:        -117.2,
	}
	require.NoError(t, repo.SaveContactInfo(ctx, rec))
	assert.False(t, rec.UpdatedAt.IsZero())

	loaded, err := repo.GetContactInfo(ctx, rec.InstanceID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, rec.Address, loaded.Address)
	assert.Equal(t, 32.8, loaded.Lat)
	assert.Equal(t, -117.2, loaded.Lon)
	assert.True(t, loaded.ShowMap)

	rec.Address = "nowhere"
	rec.Lat, rec.Lon = 0, 0
	require.NoError(t, repo.SaveContactInfo(ctx, rec))

	loaded, err = repo.GetContactInfo(ctx, rec.InstanceID)
	require.NoError(t, err)
	assert.Equal(t, "nowhere", loaded.Address)
	assert.Zero(t, loaded.Lat)

	require.NoError(t, repo.DeleteContactInfo(ctx, rec.InstanceID))
	loaded, err = repo.GetContactInfo(ctx, rec.InstanceID)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	assert.NoError(t, repo.DeleteContactInfo(ctx, rec.InstanceID))
}

func TestRepository_Options(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	repo := NewRepository(setupTestDatabase(t))
	ctx := context.Background()

	value, err := repo.GetOption(ctx, "verification_services_codes")
	require.NoError(t, err)
	assert.Nil(t, value)

	added, err := repo.AddOption(ctx, "verification_services_codes", json.RawMessage(`0`))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.AddOption(ctx, "verification_services_codes", json.RawMessage(`1`))
	require.NoError(t, err)
	assert.False(t, added)

	value, err = repo.GetOption(ctx, "verification_services_codes")
	require.NoError(t, err)
	assert.JSONEq(t, `0`, string(value))

	require.NoError(t, repo.UpdateOption(ctx, "verification_services_codes", json.RawMessage(`{"google":"abc"}`)))
	value, err = repo.GetOption(ctx, "verification_services_codes")
	require.NoError(t, err)
	assert.JSONEq(t, `{"google":"abc"}`, string(value))
}
