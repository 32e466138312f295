package content

import (
	"encoding/json"
	"testing"

	"github.com/copperstate/realty-core/internal/models"
	"github.com/copperstate/realty-core/internal/sitecontent"
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
	require.NoError(t, db.AutoMigrate(&models.SettingModel{}))
	return NewService(db)
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.GetOrCreate()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, sitecontent.Default().Home.HeroTitle, first.Home.HeroTitle)

	second, err := svc.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, svc.db.Model(&models.SettingModel{}).
		Where("name = ?", models.SettingSiteContent).Count(&count).Error)
	assert.Equal(t, int64(1), count, "exactly one singleton row")
}

func TestGetSectionValidatesName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetSection("pricing")
	assert.ErrorIs(t, err, ErrInvalidSection)

	raw, err := svc.GetSection("contact")
	require.NoError(t, err)

	var section sitecontent.ContactSection
	require.NoError(t, json.Unmarshal(raw, &section))
	assert.Equal(t, sitecontent.Default().Contact.Phone, section.Phone)
}

func TestUpdateSectionMergesAndPersists(t *testing.T) {
	svc := newTestService(t)

	partial := map[string]json.RawMessage{
		"heading": json.RawMessage(`"Let's Talk"`),
	}
	raw, err := svc.UpdateSection("contact", partial)
	require.NoError(t, err)

	var section sitecontent.ContactSection
	require.NoError(t, json.Unmarshal(raw, &section))
	assert.Equal(t, "Let's Talk", section.Heading)
	assert.Equal(t, sitecontent.Default().Contact.Phone, section.Phone, "untouched fields preserved")

	// A fresh read must reflect the write.
	doc, err := svc.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, "Let's Talk", doc.Contact.Heading)
}

func TestUpdateSectionRejectsUnknownName(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.UpdateSection("pricing", map[string]json.RawMessage{})
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestUpdateSectionDropsUnknownKeys(t *testing.T) {
	svc := newTestService(t)

	partial := map[string]json.RawMessage{
		"heading":   json.RawMessage(`"Kept"`),
		"notAField": json.RawMessage(`"dropped"`),
	}
	raw, err := svc.UpdateSection("contact", partial)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "notAField")
}

func TestUpdateDocument(t *testing.T) {
	svc := newTestService(t)

	partial := map[string]map[string]json.RawMessage{
		"home":   {"heroTitle": json.RawMessage(`"Fresh"`)},
		"footer": {"copyright": json.RawMessage(`"© 2026"`)},
	}
	doc, err := svc.UpdateDocument(partial)
	require.NoError(t, err)
	assert.Equal(t, "Fresh", doc.Home.HeroTitle)

	_, err = svc.UpdateDocument(map[string]map[string]json.RawMessage{
		"pricing": {},
	})
	assert.ErrorIs(t, err, ErrInvalidSection)
}
