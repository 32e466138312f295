package resource

import (
	"errors"
	"strings"

	"github.com/copperstate/realty-core/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrInvalidFileType marks an unknown file type.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrInvalidCategory marks an unknown resource category.
	ErrInvalidCategory = errors.New("invalid resource category")
)

// Service handles resource business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns resources ordered by sort order, then creation time. active
// filters on visibility; nil returns everything (admin listing).
func (s *Service) List(active *bool, category string) ([]models.ResourceModel, error) {
	tx := s.db.Order("sort_order ASC, created_at ASC")
	if active != nil {
		tx = tx.Where("is_active = ?", *active)
	}
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	var items []models.ResourceModel
	return items, tx.Find(&items).Error
}

// GetByID fetches a resource by id regardless of visibility.
func (s *Service) GetByID(id string) (*models.ResourceModel, error) {
	var r models.ResourceModel
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// Create inserts a new resource. FileType and category fall back to their
// defaults when absent.
func (s *Service) Create(dto *CreateResourceDTO) (*models.ResourceModel, error) {
	r := models.ResourceModel{
		Title:        strings.TrimSpace(dto.Title),
		Description:  dto.Description,
		FileURL:      dto.FileURL,
		FileType:     "pdf",
		Category:     "general",
		IsActive:     true,
		GHLFunnelURL: dto.GHLFunnelURL,
	}

	if dto.FileType != "" {
		if !models.IsResourceFileType(dto.FileType) {
			return nil, ErrInvalidFileType
		}
		r.FileType = dto.FileType
	}
	if dto.Category != "" {
		if !models.IsResourceCategory(dto.Category) {
			return nil, ErrInvalidCategory
		}
		r.Category = dto.Category
	}
	if dto.IsActive != nil {
		r.IsActive = *dto.IsActive
	}
	if dto.SortOrder != nil {
		r.SortOrder = *dto.SortOrder
	}
	if dto.RequiresEmail != nil {
		r.RequiresEmail = *dto.RequiresEmail
	}

	if err := s.db.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// Update patches a resource by id.
func (s *Service) Update(id string, dto *UpdateResourceDTO) (*models.ResourceModel, error) {
	r, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = strings.TrimSpace(*dto.Title)
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.FileURL != nil {
		updates["file_url"] = *dto.FileURL
	}
	if dto.FileType != nil {
		if !models.IsResourceFileType(*dto.FileType) {
			return nil, ErrInvalidFileType
		}
		updates["file_type"] = *dto.FileType
	}
	if dto.Category != nil {
		if !models.IsResourceCategory(*dto.Category) {
			return nil, ErrInvalidCategory
		}
		updates["category"] = *dto.Category
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}
	if dto.SortOrder != nil {
		updates["sort_order"] = *dto.SortOrder
	}
	if dto.RequiresEmail != nil {
		updates["requires_email"] = *dto.RequiresEmail
	}
	if dto.GHLFunnelURL != nil {
		updates["ghl_funnel_url"] = *dto.GHLFunnelURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(r).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete hard-deletes a resource by id.
func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.ResourceModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RecordDownload bumps the download counter of an active resource and
// returns what the client needs to complete the download.
func (s *Service) RecordDownload(id string) (*downloadResponse, error) {
	r, err := s.GetByID(id)
	if err != nil || r == nil {
		return nil, err
	}
	if !r.IsActive {
		return nil, nil
	}

	err = s.db.Model(r).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error
	if err != nil {
		return nil, err
	}

	return &downloadResponse{
		FileURL:       r.FileURL,
		RequiresEmail: r.RequiresEmail,
		GHLFunnelURL:  r.GHLFunnelURL,
	}, nil
}
