package blog

import (
	"time"

	"github.com/copperstate/realty-core/internal/models"
)

// CreateBlogPostDTO is the request body for creating a post.
type CreateBlogPostDTO struct {
	Title         string          `json:"title"   binding:"required"`
	Slug          string          `json:"slug"`
	Excerpt       string          `json:"excerpt"`
	Content       string          `json:"content" binding:"required"`
	ContentFormat string          `json:"contentFormat"`
	FeaturedImage string          `json:"featuredImage"`
	Category      string          `json:"category" binding:"required"`
	Tags          []string        `json:"tags"`
	Author        *models.Author  `json:"author"`
	Status        string          `json:"status"`
	PublishedAt   *time.Time      `json:"publishedAt"`
	SEO           *models.SEOMeta `json:"seo"`
}

// UpdateBlogPostDTO is the request body for updating a post (all fields
// optional).
type UpdateBlogPostDTO struct {
	Title         *string         `json:"title"`
	Slug          *string         `json:"slug"`
	Excerpt       *string         `json:"excerpt"`
	Content       *string         `json:"content"`
	ContentFormat *string         `json:"contentFormat"`
	FeaturedImage *string         `json:"featuredImage"`
	Category      *string         `json:"category"`
	Tags          []string        `json:"tags"`
	Author        *models.Author  `json:"author"`
	Status        *string         `json:"status"`
	PublishedAt   *time.Time      `json:"publishedAt"`
	SEO           *models.SEOMeta `json:"seo"`
}

// ListQuery holds query params for listing posts.
type ListQuery struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Sort     string `form:"sort"`
}

// listItem is the projection used in list views; the full body is excluded.
type listItem struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Excerpt       string         `json:"excerpt"`
	FeaturedImage string         `json:"featuredImage"`
	Category      string         `json:"category"`
	Tags          []string       `json:"tags"`
	Author        models.Author  `json:"author"`
	Status        string         `json:"status"`
	PublishedAt   *time.Time     `json:"publishedAt"`
	ReadTime      int            `json:"readTime"`
	SEO           models.SEOMeta `json:"seo"`
	Created       time.Time      `json:"created"`
	Modified      time.Time      `json:"modified"`
}

func toListItem(p *models.BlogPostModel) listItem {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return listItem{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		Category:      p.Category,
		Tags:          tags,
		Author:        p.Author,
		Status:        p.Status,
		PublishedAt:   p.PublishedAt,
		ReadTime:      p.ReadTime,
		SEO:           p.SEO,
		Created:       p.CreatedAt,
		Modified:      p.UpdatedAt,
	}
}

// postResponse is the single-post response shape. ContentHTML carries the
// rendered body for markdown-authored posts.
type postResponse struct {
	models.BlogPostModel
	ContentHTML string `json:"contentHtml,omitempty"`
}
