package models

// Resource file types and categories.
var (
	ResourceFileTypes  = []string{"pdf", "doc", "docx", "xls", "xlsx", "video", "other"}
	ResourceCategories = []string{"buying", "selling", "investing", "general"}
)

// IsResourceFileType reports whether t is a valid file type.
func IsResourceFileType(t string) bool {
	for _, v := range ResourceFileTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsResourceCategory reports whether c is a valid resource category.
func IsResourceCategory(c string) bool {
	for _, v := range ResourceCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ResourceModel is a downloadable guide offered on the resources page.
type ResourceModel struct {
	Base
	Title         string `json:"title"         gorm:"not null"`
	Description   string `json:"description"   gorm:"type:text"`
	FileURL       string `json:"fileUrl"       gorm:"not null"`
	FileType      string `json:"fileType"      gorm:"default:'pdf'"`
	Category      string `json:"category"      gorm:"index;default:'general'"`
	IsActive      bool   `json:"isActive"      gorm:"index"`
	SortOrder     int    `json:"order"         gorm:"column:sort_order;index"`
	RequiresEmail bool   `json:"requiresEmail"`
	GHLFunnelURL  string `json:"ghlFunnelUrl"  gorm:"column:ghl_funnel_url"`
	DownloadCount int    `json:"downloadCount" gorm:"default:0"`
}

func (ResourceModel) TableName() string { return "resources" }
