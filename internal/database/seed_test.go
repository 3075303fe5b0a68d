package database_test

import (
	"context"
	"testing"

	"placement_backend/internal/database"
	"placement_backend/internal/models"
	"placement_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedInitialData_Idempotent(t *testing.T) {
	db := helpers.NewTestDB(t)

	require.NoError(t, database.SeedInitialData(context.Background(), db))
	require.NoError(t, database.SeedInitialData(context.Background(), db))

	var companies []models.Company
	require.NoError(t, db.Find(&companies).Error)
	require.Len(t, companies, 1)
	assert.Equal(t, "TechCorp Solutions", companies[0].Name)

	var drives []models.Drive
	require.NoError(t, db.Find(&drives).Error)
	require.Len(t, drives, 1)
	assert.Equal(t, "Software Intern", drives[0].Role)
	assert.Equal(t, companies[0].ID, drives[0].CompanyID)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := helpers.TestConfig()
	cfg.Database.Driver = "oracle"

	_, err := database.Open(cfg)
	assert.Error(t, err)
}
