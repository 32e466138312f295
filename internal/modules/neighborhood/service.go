package neighborhood

import (
	"errors"
	"strings"

	"github.com/copperstate/realty-core/internal/models"
	"github.com/copperstate/realty-core/internal/pkg/slug"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateSlug marks a slug uniqueness collision.
	ErrDuplicateSlug = errors.New("a neighborhood with this slug already exists")
	// ErrValidation marks a missing required field.
	ErrValidation = errors.New("name, shortDescription and fullDescription are required")
)

// Service handles neighborhood business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns neighborhoods ordered by name. activeOnly filters to visible
// profiles; nil returns everything (admin listing).
func (s *Service) List(active *bool) ([]models.NeighborhoodModel, error) {
	tx := s.db.Order("name ASC")
	if active != nil {
		tx = tx.Where("is_active = ?", *active)
	}
	var items []models.NeighborhoodModel
	return items, tx.Find(&items).Error
}

// GetBySlug fetches a neighborhood by slug. Public fetches see active
// profiles only; an inactive neighborhood is not retrievable by slug even if
// its id is known.
func (s *Service) GetBySlug(slugVal string, publicOnly bool) (*models.NeighborhoodModel, error) {
	tx := s.db.Where("slug = ?", slugVal)
	if publicOnly {
		tx = tx.Where("is_active = ?", true)
	}
	var n models.NeighborhoodModel
	if err := tx.First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// GetByID fetches a neighborhood by id, bypassing the active filter. This is
// the admin edit path.
func (s *Service) GetByID(id string) (*models.NeighborhoodModel, error) {
	var n models.NeighborhoodModel
	if err := s.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// Create inserts a new neighborhood. The slug is derived from the name when
// absent; an explicit slug is lowercased and trimmed.
func (s *Service) Create(dto *CreateNeighborhoodDTO) (*models.NeighborhoodModel, error) {
	if strings.TrimSpace(dto.Name) == "" ||
		strings.TrimSpace(dto.ShortDescription) == "" ||
		strings.TrimSpace(dto.FullDescription) == "" {
		return nil, ErrValidation
	}

	slugVal := slug.Normalize(dto.Slug)
	if slugVal == "" {
		slugVal = slug.Make(dto.Name)
	}

	taken, err := s.slugTaken(slugVal, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateSlug
	}

	n := models.NeighborhoodModel{
		Name:             dto.Name,
		Slug:             slugVal,
		ThumbnailImage:   dto.ThumbnailImage,
		ShortDescription: dto.ShortDescription,
		FullDescription:  dto.FullDescription,
		VideoURL:         dto.VideoURL,
		Highlights:       dto.Highlights,
		Stats:            dto.Stats,
		DidYouKnow:       dto.DidYouKnow,
		Schools:          dto.Schools,
		Summary:          dto.Summary,
		CTAButtons:       dto.CTAButtons,
		IsActive:         true,
	}
	if dto.IsActive != nil {
		n.IsActive = *dto.IsActive
	}

	if err := s.db.Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// Update patches a neighborhood by id. Slug uniqueness is re-checked only
// when the slug actually changes.
func (s *Service) Update(id string, dto *UpdateNeighborhoodDTO) (*models.NeighborhoodModel, error) {
	n, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Slug != nil {
		newSlug := slug.Normalize(*dto.Slug)
		if newSlug == "" && dto.Name != nil {
			newSlug = slug.Make(*dto.Name)
		}
		if newSlug != "" && newSlug != n.Slug {
			taken, err := s.slugTaken(newSlug, n.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrDuplicateSlug
			}
			updates["slug"] = newSlug
		}
	}
	if dto.Name != nil {
		if strings.TrimSpace(*dto.Name) == "" {
			return nil, ErrValidation
		}
		updates["name"] = *dto.Name
	}
	if dto.ShortDescription != nil {
		if strings.TrimSpace(*dto.ShortDescription) == "" {
			return nil, ErrValidation
		}
		updates["short_description"] = *dto.ShortDescription
	}
	if dto.FullDescription != nil {
		if strings.TrimSpace(*dto.FullDescription) == "" {
			return nil, ErrValidation
		}
		updates["full_description"] = *dto.FullDescription
	}
	if dto.ThumbnailImage != nil {
		updates["thumbnail_image"] = *dto.ThumbnailImage
	}
	if dto.VideoURL != nil {
		updates["video_url"] = *dto.VideoURL
	}
	if dto.Highlights != nil {
		updates["highlights"] = models.StringSlice(dto.Highlights)
	}
	if dto.Stats != nil {
		updates["stats"] = *dto.Stats
	}
	if dto.DidYouKnow != nil {
		updates["did_you_know"] = *dto.DidYouKnow
	}
	if dto.Schools != nil {
		updates["schools"] = *dto.Schools
	}
	if dto.Summary != nil {
		updates["summary"] = dto.Summary
	}
	if dto.CTAButtons != nil {
		updates["cta_buttons"] = models.StringSlice(dto.CTAButtons)
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(n).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete hard-deletes a neighborhood by id.
func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.NeighborhoodModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// slugTaken reports whether another document already holds the slug. The
// unique index is the real guard; this is a best-effort early rejection.
func (s *Service) slugTaken(slugVal, excludeID string) (bool, error) {
	tx := s.db.Model(&models.NeighborhoodModel{}).Where("slug = ?", slugVal)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
