package neighborhood

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
	require.NoError(t, db.AutoMigrate(&models.NeighborhoodModel{}))
	return NewService(db)
}

func create(t *testing.T, svc *Service, dto CreateNeighborhoodDTO) *models.NeighborhoodModel {
	t.Helper()
	if dto.ShortDescription == "" {
		dto.ShortDescription = "short"
	}
	if dto.FullDescription == "" {
		dto.FullDescription = "full"
	}
	n, err := svc.Create(&dto)
	require.NoError(t, err)
	return n
}

func TestCreateDerivesSlug(t *testing.T) {
	svc := newTestService(t)

	n := create(t, svc, CreateNeighborhoodDTO{Name: "Paradise Valley!"})
	assert.Equal(t, "paradise-valley", n.Slug)
	assert.True(t, n.IsActive, "active by default")
}

func TestCreateNormalizesExplicitSlug(t *testing.T) {
	svc := newTestService(t)

	n := create(t, svc, CreateNeighborhoodDTO{Name: "Gilbert", Slug: "  Old-Gilbert "})
	assert.Equal(t, "old-gilbert", n.Slug)
}

func TestCreateRequiredFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&CreateNeighborhoodDTO{
		Name: "   ", ShortDescription: "s", FullDescription: "f",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(&CreateNeighborhoodDTO{
		Name: "Mesa", ShortDescription: "", FullDescription: "f",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDuplicateSlugDoesNotMutateExisting(t *testing.T) {
	svc := newTestService(t)

	first := create(t, svc, CreateNeighborhoodDTO{
		Name: "Mesa", ShortDescription: "original short", FullDescription: "original full",
	})

	_, err := svc.Create(&CreateNeighborhoodDTO{
		Name: "Mesa", ShortDescription: "other", FullDescription: "other",
	})
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	stored, err := svc.GetByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "original short", stored.ShortDescription)
}

func TestVisibilityRules(t *testing.T) {
	svc := newTestService(t)

	inactive := false
	hidden := create(t, svc, CreateNeighborhoodDTO{Name: "Queen Creek", IsActive: &inactive})
	create(t, svc, CreateNeighborhoodDTO{Name: "Chandler"})

	t.Run("public list excludes inactive", func(t *testing.T) {
		active := true
		items, err := svc.List(&active)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Chandler", items[0].Name)
	})

	t.Run("nil filter returns everything", func(t *testing.T) {
		items, err := svc.List(nil)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("inactive not fetchable by slug publicly", func(t *testing.T) {
		n, err := svc.GetBySlug("queen-creek", true)
		require.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("admin slug fetch sees inactive", func(t *testing.T) {
		n, err := svc.GetBySlug("queen-creek", false)
		require.NoError(t, err)
		require.NotNil(t, n)
	})

	t.Run("fetch by id bypasses active filter", func(t *testing.T) {
		n, err := svc.GetByID(hidden.ID)
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.False(t, n.IsActive)
	})
}

func TestUpdateSlugRecheckOnlyOnChange(t *testing.T) {
	svc := newTestService(t)

	create(t, svc, CreateNeighborhoodDTO{Name: "Tempe"})
	target := create(t, svc, CreateNeighborhoodDTO{Name: "Ahwatukee"})

	t.Run("unchanged slug passes", func(t *testing.T) {
		same := "ahwatukee"
		short := "updated copy"
		n, err := svc.Update(target.ID, &UpdateNeighborhoodDTO{Slug: &same, ShortDescription: &short})
		require.NoError(t, err)
		assert.Equal(t, "updated copy", n.ShortDescription)
	})

	t.Run("colliding slug rejected", func(t *testing.T) {
		taken := "tempe"
		_, err := svc.Update(target.ID, &UpdateNeighborhoodDTO{Slug: &taken})
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})

	t.Run("missing id yields nil", func(t *testing.T) {
		short := "x"
		n, err := svc.Update("no-such-id", &UpdateNeighborhoodDTO{ShortDescription: &short})
		require.NoError(t, err)
		assert.Nil(t, n)
	})
}

func TestDeleteReportsMissing(t *testing.T) {
	svc := newTestService(t)

	n := create(t, svc, CreateNeighborhoodDTO{Name: "Scottsdale"})

	deleted, err := svc.Delete(n.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(n.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
