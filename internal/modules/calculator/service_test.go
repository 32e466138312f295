package calculator

import (
	"encoding/json"
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
	require.NoError(t, db.AutoMigrate(&models.SettingModel{}))
	return NewService(db)
}

func TestGetSeedsDefaults(t *testing.T) {
	svc := newTestService(t)

	cfg, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)

	again, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestUpdateMergesPerGroup(t *testing.T) {
	svc := newTestService(t)

	partial := map[string]map[string]json.RawMessage{
		"paymentCalculator": {
			"interestRate":    json.RawMessage(`{"default":7.0,"min":0,"max":15,"step":0.125}`),
			"loanTermOptions": json.RawMessage(`[15,30]`),
		},
	}
	cfg, err := svc.Update(partial)
	require.NoError(t, err)

	assert.Equal(t, 7.0, cfg.PaymentCalculator.InterestRate.Default)
	assert.Equal(t, []int{15, 30}, cfg.PaymentCalculator.LoanTermOptions, "arrays replaced wholesale")
	// Fields absent from the partial keep their stored values.
	assert.Equal(t, Defaults().PaymentCalculator.HomePrice, cfg.PaymentCalculator.HomePrice)
	assert.Equal(t, Defaults().AffordabilityCalculator, cfg.AffordabilityCalculator)

	// The merge persisted.
	stored, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, cfg, stored)
}

func TestUpdateRejectsUnknownGroup(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(map[string]map[string]json.RawMessage{
		"refinanceCalculator": {},
	})
	assert.ErrorIs(t, err, ErrInvalidGroup)
}

func TestReset(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(map[string]map[string]json.RawMessage{
		"displaySettings": {"showRefinance": json.RawMessage(`true`)},
	})
	require.NoError(t, err)

	cfg, err := svc.Reset()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)

	stored, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *stored)
}
