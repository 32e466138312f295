package content

import (
	"encoding/json"
	"errors"

	"github.com/copperstate/realty-core/internal/models"
	"github.com/copperstate/realty-core/internal/sitecontent"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidSection marks an unknown section name.
var ErrInvalidSection = errors.New("invalid section name")

// Service owns the SiteContent singleton. The document is read from the store
// on every call; nothing is cached across requests, so every response reflects
// current persisted state.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GetOrCreate returns the singleton document, creating it from defaults when
// absent. Idempotent on repeat calls once created.
func (s *Service) GetOrCreate() (*sitecontent.SiteContent, error) {
	raw, err := s.getOrCreateRaw()
	if err != nil {
		return nil, err
	}
	var doc sitecontent.SiteContent
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetSection returns one section of the document. Fails with
// ErrInvalidSection when name is not in the fixed section set.
func (s *Service) GetSection(name string) (json.RawMessage, error) {
	if !sitecontent.IsSection(name) {
		return nil, ErrInvalidSection
	}
	raw, err := s.getOrCreateRaw()
	if err != nil {
		return nil, err
	}
	return sitecontent.SectionOf(raw, name)
}

// UpdateSection shallow-merges partial fields into one section and persists
// the result. Fields absent from the partial are preserved; array-valued
// fields present in the partial replace stored arrays wholesale.
func (s *Service) UpdateSection(name string, partial map[string]json.RawMessage) (json.RawMessage, error) {
	if !sitecontent.IsSection(name) {
		return nil, ErrInvalidSection
	}

	raw, err := s.getOrCreateRaw()
	if err != nil {
		return nil, err
	}

	merged, err := sitecontent.MergeSection(raw, name, partial)
	if err != nil {
		return nil, err
	}

	doc, err := normalize(merged)
	if err != nil {
		return nil, err
	}
	if err := s.persist(doc); err != nil {
		return nil, err
	}

	canonical, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return sitecontent.SectionOf(canonical, name)
}

// UpdateDocument applies the shallow section merge independently for every
// top-level section key present in the payload and returns the full document.
func (s *Service) UpdateDocument(partial map[string]map[string]json.RawMessage) (*sitecontent.SiteContent, error) {
	for name := range partial {
		if !sitecontent.IsSection(name) {
			return nil, ErrInvalidSection
		}
	}

	raw, err := s.getOrCreateRaw()
	if err != nil {
		return nil, err
	}

	merged, err := sitecontent.MergeDocument(raw, partial)
	if err != nil {
		return nil, err
	}

	doc, err := normalize(merged)
	if err != nil {
		return nil, err
	}
	if err := s.persist(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// getOrCreateRaw loads the stored document JSON, seeding it with defaults on
// first read.
func (s *Service) getOrCreateRaw() (json.RawMessage, error) {
	var setting models.SettingModel
	err := s.db.Where("name = ?", models.SettingSiteContent).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := sitecontent.Default()
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

// normalize funnels merged JSON through the typed document, enforcing the
// canonical shape and dropping unknown keys.
func normalize(raw []byte) (*sitecontent.SiteContent, error) {
	var doc sitecontent.SiteContent
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) persist(doc *sitecontent.SiteContent) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	setting := models.SettingModel{Name: models.SettingSiteContent, Value: string(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}
