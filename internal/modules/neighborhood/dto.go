package neighborhood

import "github.com/copperstate/realty-core/internal/models"

// CreateNeighborhoodDTO is the request body for creating a neighborhood.
type CreateNeighborhoodDTO struct {
	Name             string                   `json:"name"             binding:"required"`
	Slug             string                   `json:"slug"`
	ThumbnailImage   string                   `json:"thumbnailImage"`
	ShortDescription string                   `json:"shortDescription" binding:"required"`
	FullDescription  string                   `json:"fullDescription"  binding:"required"`
	VideoURL         string                   `json:"videoUrl"`
	Highlights       []string                 `json:"highlights"`
	Stats            models.NeighborhoodStats `json:"stats"`
	DidYouKnow       string                   `json:"didYouKnow"`
	Schools          string                   `json:"schools"`
	Summary          []models.SummaryItem     `json:"summary"`
	CTAButtons       []string                 `json:"ctaButtons"`
	IsActive         *bool                    `json:"isActive"`
}

// UpdateNeighborhoodDTO is the request body for updating a neighborhood (all
// fields optional).
type UpdateNeighborhoodDTO struct {
	Name             *string                   `json:"name"`
	Slug             *string                   `json:"slug"`
	ThumbnailImage   *string                   `json:"thumbnailImage"`
	ShortDescription *string                   `json:"shortDescription"`
	FullDescription  *string                   `json:"fullDescription"`
	VideoURL         *string                   `json:"videoUrl"`
	Highlights       []string                  `json:"highlights"`
	Stats            *models.NeighborhoodStats `json:"stats"`
	DidYouKnow       *string                   `json:"didYouKnow"`
	Schools          *string                   `json:"schools"`
	Summary          []models.SummaryItem      `json:"summary"`
	CTAButtons       []string                  `json:"ctaButtons"`
	IsActive         *bool                     `json:"isActive"`
}
