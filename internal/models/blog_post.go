package models

import "time"

// Blog post statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// BlogCategories is the fixed set of valid post categories.
var BlogCategories = []string{
	"buying",
	"selling",
	"market-updates",
	"home-improvement",
	"neighborhood-guides",
	"lifestyle",
}

// IsBlogCategory reports whether c is a member of the fixed category set.
func IsBlogCategory(c string) bool {
	for _, v := range BlogCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Author is the embedded post author reference.
type Author struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// SEOMeta holds per-post search engine metadata.
type SEOMeta struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
}

// BlogPostModel is a blog post.
type BlogPostModel struct {
	Base
	Title         string      `json:"title"         gorm:"not null"`
	Slug          string      `json:"slug"          gorm:"uniqueIndex;not null"`
	Excerpt       string      `json:"excerpt"       gorm:"size:300"`
	Content       string      `json:"content"       gorm:"type:longtext"`
	ContentFormat string      `json:"contentFormat" gorm:"default:'html'"` // html | markdown
	FeaturedImage string      `json:"featuredImage"`
	Category      string      `json:"category"      gorm:"index;not null"`
	Tags          StringSlice `json:"tags"          gorm:"type:json;serializer:json"`
	Author        Author      `json:"author"        gorm:"type:json;serializer:json"`
	Status        string      `json:"status"        gorm:"index;default:'draft'"`
	PublishedAt   *time.Time  `json:"publishedAt"`
	ReadTime      int         `json:"readTime"`
	SEO           SEOMeta     `json:"seo"           gorm:"column:seo;type:json;serializer:json"`
}

func (BlogPostModel) TableName() string { return "blog_posts" }
