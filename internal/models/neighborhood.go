package models

// NeighborhoodStats holds the at-a-glance figures shown on a profile page.
type NeighborhoodStats struct {
	MedianPrice    string `json:"medianPrice"`
	SchoolDistrict string `json:"schoolDistrict"`
	HomeValues     string `json:"homeValues"`
	CostOfLiving   string `json:"costOfLiving"`
	Lifestyle      string `json:"lifestyle"`
}

// SummaryItem is one feature/description row in a neighborhood summary table.
type SummaryItem struct {
	Feature     string `json:"feature"`
	Description string `json:"description"`
}

// NeighborhoodModel is a neighborhood profile page.
type NeighborhoodModel struct {
	Base
	Name             string            `json:"name"             gorm:"not null"`
	Slug             string            `json:"slug"             gorm:"uniqueIndex;not null"`
	ThumbnailImage   string            `json:"thumbnailImage"`
	ShortDescription string            `json:"shortDescription" gorm:"type:text;not null"`
	FullDescription  string            `json:"fullDescription"  gorm:"type:longtext;not null"`
	VideoURL         string            `json:"videoUrl"`
	Highlights       StringSlice       `json:"highlights"       gorm:"type:json;serializer:json"`
	Stats            NeighborhoodStats `json:"stats"            gorm:"type:json;serializer:json"`
	DidYouKnow       string            `json:"didYouKnow"       gorm:"type:text"`
	Schools          string            `json:"schools"          gorm:"type:text"`
	Summary          []SummaryItem     `json:"summary"          gorm:"type:json;serializer:json"`
	CTAButtons       StringSlice       `json:"ctaButtons"       gorm:"column:cta_buttons;type:json;serializer:json"`
	IsActive         bool              `json:"isActive"         gorm:"index"`
}

func (NeighborhoodModel) TableName() string { return "neighborhoods" }
