//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scanner/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}

	return db
}

func testResume() types.ResumeRecord {
	rec := types.ResumeRecord{
		PersonalInfo: types.PersonalInfo{Name: "Integration Test", Email: "it@example.com", Phone: "555"},
		Summary:      "Integration test resume for scan persistence.",
	}
	rec.Normalize()
	return rec
}

func TestIntegration_Scan_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	result := types.ScanResult{OverallScore: 61, FormatScore: 70, KeywordScore: 40, StructureScore: 75, ContentScore: 60}
	result.EnsureLists()

	id, err := db.SaveScan(ctx, testResume(), "backend engineer posting", result, false)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)
	defer func() { _, _ = db.DeleteScan(ctx, id) }()

	t.Run("get scan", func(t *testing.T) {
		saved, err := db.GetScan(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, saved)

		assert.Equal(t, id, saved.ID)
		assert.Equal(t, 61, saved.OverallScore)
		assert.Equal(t, "backend engineer posting", saved.JobDescription)
		assert.Equal(t, "Integration Test", saved.Resume.PersonalInfo.Name)
		assert.Equal(t, result.KeywordScore, saved.Result.KeywordScore)
		assert.False(t, saved.AIAssisted)
		assert.False(t, saved.CreatedAt.IsZero())
	})

	t.Run("list scans includes saved", func(t *testing.T) {
		summaries, err := db.ListScans(ctx, 50)
		require.NoError(t, err)

		found := false
		for _, s := range summaries {
			if s.ID == id {
				found = true
				assert.Equal(t, 61, s.OverallScore)
			}
		}
		assert.True(t, found)
	})

	t.Run("delete scan", func(t *testing.T) {
		deleted, err := db.DeleteScan(ctx, id)
		require.NoError(t, err)
		assert.True(t, deleted)

		saved, err := db.GetScan(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, saved)
	})
}

func TestIntegration_GetScan_NotFound(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	saved, err := db.GetScan(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestIntegration_DeleteScan_NotFound(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	deleted, err := db.DeleteScan(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}
