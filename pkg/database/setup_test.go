package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Eursukkul/venue-staffing/internal/models"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestSetup_CreatesTablesAndSeeds(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, Setup(context.Background(), db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}

	var count int64
	require.NoError(t, db.Model(&models.Document{}).Count(&count).Error)
	assert.Equal(t, int64(len(seedDocuments)), count)
}

func TestSetup_RepeatedRunIsNoop(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, Setup(context.Background(), db))
	require.NoError(t, Setup(context.Background(), db))

	var count int64
	require.NoError(t, db.Model(&models.Document{}).Count(&count).Error)
	assert.Equal(t, int64(len(seedDocuments)), count)
}

func TestSetup_OneActiveAssignmentPerUser(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, Setup(context.Background(), db))

	first := &models.ShiftAssignment{ShiftID: "shift-1", UserID: "u-1"}
	require.NoError(t, db.Create(first).Error)

	dup := &models.ShiftAssignment{ShiftID: "shift-1", UserID: "u-1"}
	assert.Error(t, db.Create(dup).Error)

	require.NoError(t, db.Model(first).Update("status", models.AssignmentCancelled).Error)
	again := &models.ShiftAssignment{ShiftID: "shift-1", UserID: "u-1"}
	assert.NoError(t, db.Create(again).Error)
}
