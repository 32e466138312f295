package models

// SettingModel is a generic key-value store holding the singleton documents
// (site content, calculator settings) as JSON.
type SettingModel struct {
	ID    uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name"  gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:longtext"` // JSON-encoded document
}

func (SettingModel) TableName() string { return "settings" }

const (
	// SettingSiteContent is the fixed key of the SiteContent singleton.
	SettingSiteContent = "site-content"
	// SettingCalculator is the fixed key of the CalculatorSettings singleton.
	SettingCalculator = "calculator-settings"
)
