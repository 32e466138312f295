package blog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/copperstate/realty-core/internal/models"
	"github.com/copperstate/realty-core/internal/pkg/pagination"
	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/copperstate/realty-core/internal/pkg/slug"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateSlug marks a slug uniqueness collision.
	ErrDuplicateSlug = errors.New("a post with this slug already exists")
	// ErrInvalidCategory marks a category outside the fixed set.
	ErrInvalidCategory = errors.New("unknown blog category")
	// ErrInvalidStatus marks a status other than draft/published.
	ErrInvalidStatus = errors.New("status must be draft or published")
	// ErrExcerptTooLong marks an excerpt over the 300 character cap.
	ErrExcerptTooLong = errors.New("excerpt must be 300 characters or fewer")
)

const wordsPerMinute = 200

// ReadTime computes estimated reading minutes from the whitespace-separated
// word count of content, rounded up, minimum 1.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Service handles blog post business logic.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// List returns a paginated page of posts. An empty status filters to
// published; "all" disables the status filter. Category and tag filters
// intersect with the status filter. The content body is excluded from list
// rows.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.BlogPostModel, response.Pagination, error) {
	tx := s.db.Model(&models.BlogPostModel{}).Omit("content")

	switch lq.Status {
	case "", models.StatusPublished:
		tx = tx.Where("status = ?", models.StatusPublished)
	case "all":
		// every status
	case models.StatusDraft:
		tx = tx.Where("status = ?", models.StatusDraft)
	default:
		return nil, response.Pagination{}, ErrInvalidStatus
	}

	if lq.Category != "" {
		tx = tx.Where("category = ?", lq.Category)
	}
	if lq.Tag != "" {
		// tags are a JSON array column; match the quoted element
		tx = tx.Where("tags LIKE ?", fmt.Sprintf("%%%q%%", lq.Tag))
	}

	if lq.Sort == "oldest" {
		tx = tx.Order("published_at ASC, created_at ASC")
	} else {
		tx = tx.Order("published_at DESC, created_at DESC")
	}

	var posts []models.BlogPostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// GetBySlug fetches a single post by slug. Single-post reads carry no status
// filter; drafts are reachable by direct slug, only listings gate on status.
func (s *Service) GetBySlug(slugVal string) (*models.BlogPostModel, error) {
	var post models.BlogPostModel
	if err := s.db.Where("slug = ?", slugVal).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByID fetches a single post by id.
func (s *Service) GetByID(id string) (*models.BlogPostModel, error) {
	var post models.BlogPostModel
	if err := s.db.Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post. The slug is derived from the title only when the
// caller did not supply one; an explicit slug is stored verbatim. Read time
// is computed from the content, and publishing sets the published timestamp.
func (s *Service) Create(dto *CreateBlogPostDTO) (*models.BlogPostModel, error) {
	if len(dto.Excerpt) > 300 {
		return nil, ErrExcerptTooLong
	}
	if !models.IsBlogCategory(dto.Category) {
		return nil, ErrInvalidCategory
	}

	status := dto.Status
	if status == "" {
		status = models.StatusDraft
	}
	if status != models.StatusDraft && status != models.StatusPublished {
		return nil, ErrInvalidStatus
	}

	slugVal := dto.Slug
	if slugVal == "" {
		slugVal = slug.Make(dto.Title)
	}

	taken, err := s.slugTaken(slugVal, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateSlug
	}

	format := dto.ContentFormat
	if format == "" {
		format = "html"
	}

	post := models.BlogPostModel{
		Title:         dto.Title,
		Slug:          slugVal,
		Excerpt:       dto.Excerpt,
		Content:       dto.Content,
		ContentFormat: format,
		FeaturedImage: dto.FeaturedImage,
		Category:      dto.Category,
		Tags:          dto.Tags,
		Status:        status,
		PublishedAt:   dto.PublishedAt,
		ReadTime:      ReadTime(dto.Content),
	}
	if dto.Author != nil {
		post.Author = *dto.Author
	}
	if dto.SEO != nil {
		post.SEO = *dto.SEO
	}
	if post.Status == models.StatusPublished && post.PublishedAt == nil {
		now := s.now()
		post.PublishedAt = &now
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update patches a post by id. Slug uniqueness is re-checked only when the
// slug changes; read time is recomputed when the content changes; the first
// transition to published stamps publishedAt and never overwrites an
// existing value.
func (s *Service) Update(id string, dto *UpdateBlogPostDTO) (*models.BlogPostModel, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}

	if dto.Slug != nil && *dto.Slug != "" && *dto.Slug != post.Slug {
		taken, err := s.slugTaken(*dto.Slug, post.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicateSlug
		}
		updates["slug"] = *dto.Slug
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Excerpt != nil {
		if len(*dto.Excerpt) > 300 {
			return nil, ErrExcerptTooLong
		}
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
		updates["read_time"] = ReadTime(*dto.Content)
	}
	if dto.ContentFormat != nil {
		updates["content_format"] = *dto.ContentFormat
	}
	if dto.FeaturedImage != nil {
		updates["featured_image"] = *dto.FeaturedImage
	}
	if dto.Category != nil {
		if !models.IsBlogCategory(*dto.Category) {
			return nil, ErrInvalidCategory
		}
		updates["category"] = *dto.Category
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringSlice(dto.Tags)
	}
	if dto.Author != nil {
		updates["author"] = *dto.Author
	}
	if dto.SEO != nil {
		updates["seo"] = *dto.SEO
	}
	if dto.PublishedAt != nil {
		updates["published_at"] = *dto.PublishedAt
	}
	if dto.Status != nil {
		if *dto.Status != models.StatusDraft && *dto.Status != models.StatusPublished {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *dto.Status
		if *dto.Status == models.StatusPublished && post.PublishedAt == nil && dto.PublishedAt == nil {
			updates["published_at"] = s.now()
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(post).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete hard-deletes a post by id.
func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.BlogPostModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Categories returns the distinct categories used by published posts.
func (s *Service) Categories() ([]string, error) {
	var cats []string
	err := s.db.Model(&models.BlogPostModel{}).
		Where("status = ?", models.StatusPublished).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &cats).Error
	if cats == nil {
		cats = []string{}
	}
	return cats, err
}

// Tags returns the distinct tags used by published posts. The tags column is
// a JSON array, so deduplication happens here rather than in SQL.
func (s *Service) Tags() ([]string, error) {
	var rows []models.BlogPostModel
	if err := s.db.Select("tags").
		Where("status = ?", models.StatusPublished).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	tags := []string{}
	for _, row := range rows {
		for _, t := range row.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags, nil
}

func (s *Service) slugTaken(slugVal, excludeID string) (bool, error) {
	tx := s.db.Model(&models.BlogPostModel{}).Where("slug = ?", slugVal)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
