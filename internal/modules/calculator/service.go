package calculator

import (
	"encoding/json"
	"errors"

	"github.com/copperstate/realty-core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidGroup marks an unknown settings group in an update payload.
var ErrInvalidGroup = errors.New("invalid calculator settings group")

// Service owns the calculator settings singleton.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the settings singleton, seeding it from defaults when absent.
func (s *Service) Get() (*Settings, error) {
	raw, err := s.getOrCreateRaw()
	if err != nil {
		return nil, err
	}
	var cfg Settings
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Update shallow-merges partial fields group by group. Fields absent from a
// group's partial are preserved; loanTermOptions arrays are replaced
// wholesale when present.
func (s *Service) Update(partial map[string]map[string]json.RawMessage) (*Settings, error) {
	for name := range partial {
		if !isGroup(name) {
			return nil, ErrInvalidGroup
		}
	}

	raw, err := s.getOrCreateRaw()
	if err != nil {
		return nil, err
	}

	var doc map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for name, fields := range partial {
		group := doc[name]
		if group == nil {
			group = map[string]json.RawMessage{}
		}
		for k, v := range fields {
			group[k] = v
		}
		doc[name] = group
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var cfg Settings
	if err := json.Unmarshal(merged, &cfg); err != nil {
		return nil, err
	}
	if err := s.persist(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Reset restores the hard-coded defaults.
func (s *Service) Reset() (*Settings, error) {
	cfg := Defaults()
	if err := s.persist(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Service) getOrCreateRaw() (json.RawMessage, error) {
	var setting models.SettingModel
	err := s.db.Where("name = ?", models.SettingCalculator).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := Defaults()
		if err := s.persist(&defaults); err != nil {
			return nil, err
		}
		return json.Marshal(defaults)
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(setting.Value), nil
}

func (s *Service) persist(cfg *Settings) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	setting := models.SettingModel{Name: models.SettingCalculator, Value: string(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}
