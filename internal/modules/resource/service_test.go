package resource

import (
	"testing"

	"github.com/copperstate/realty-core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ResourceModel{}))
	return NewService(db)
}

func TestCreateDefaults(t *testing.T) {
	svc := newTestService(t)

	r, err := svc.Create(&CreateResourceDTO{
		Title:   "First-Time Buyer Checklist",
		FileURL: "https://cdn.example.com/buyer-checklist.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "pdf", r.FileType)
	assert.Equal(t, "general", r.Category)
	assert.True(t, r.IsActive)
	assert.Zero(t, r.DownloadCount)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&CreateResourceDTO{
		Title: "x", FileURL: "y", FileType: "exe",
	})
	assert.ErrorIs(t, err, ErrInvalidFileType)

	_, err = svc.Create(&CreateResourceDTO{
		Title: "x", FileURL: "y", Category: "misc",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestListOrdering(t *testing.T) {
	svc := newTestService(t)

	two := 2
	one := 1
	inactive := false
	for _, dto := range []CreateResourceDTO{
		{Title: "Second", FileURL: "u", SortOrder: &two},
		{Title: "First", FileURL: "u", SortOrder: &one},
		{Title: "Hidden", FileURL: "u", IsActive: &inactive},
	} {
		dto := dto
		_, err := svc.Create(&dto)
		require.NoError(t, err)
	}

	t.Run("active only, sort order ascending", func(t *testing.T) {
		active := true
		items, err := svc.List(&active, "")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "First", items[0].Title)
		assert.Equal(t, "Second", items[1].Title)
	})

	t.Run("nil filter includes hidden", func(t *testing.T) {
		items, err := svc.List(nil, "")
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})
}

func TestRecordDownload(t *testing.T) {
	svc := newTestService(t)

	r, err := svc.Create(&CreateResourceDTO{
		Title:        "Seller Net Sheet",
		FileURL:      "https://cdn.example.com/net-sheet.xlsx",
		FileType:     "xlsx",
		GHLFunnelURL: "https://funnel.example.com/net-sheet",
	})
	require.NoError(t, err)

	dl, err := svc.RecordDownload(r.ID)
	require.NoError(t, err)
	require.NotNil(t, dl)
	assert.Equal(t, r.FileURL, dl.FileURL)
	assert.Equal(t, r.GHLFunnelURL, dl.GHLFunnelURL)

	_, err = svc.RecordDownload(r.ID)
	require.NoError(t, err)

	stored, err := svc.GetByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.DownloadCount)

	t.Run("inactive resource is not downloadable", func(t *testing.T) {
		off := false
		_, err := svc.Update(r.ID, &UpdateResourceDTO{IsActive: &off})
		require.NoError(t, err)

		dl, err := svc.RecordDownload(r.ID)
		require.NoError(t, err)
		assert.Nil(t, dl)
	})

	t.Run("missing id", func(t *testing.T) {
		dl, err := svc.RecordDownload("nope")
		require.NoError(t, err)
		assert.Nil(t, dl)
	})
}
