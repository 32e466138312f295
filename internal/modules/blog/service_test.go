package blog

import (
	"strings"
	"testing"
	"time"

	"github.com/copperstate/realty-core/internal/models"
	"github.com/copperstate/realty-core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BlogPostModel{}))
	return NewService(db)
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 1, ReadTime("hello"))
	assert.Equal(t, 1, ReadTime(""))
	assert.Equal(t, 1, ReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, ReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 2, ReadTime(strings.Repeat("word ", 400)))
}

func TestCreateDefaults(t *testing.T) {
	svc := newTestService(t)

	post, err := svc.Create(&CreateBlogPostDTO{
		Title:    "Spring Market Update for the East Valley",
		Content:  strings.Repeat("word ", 400),
		Category: "market-updates",
	})
	require.NoError(t, err)

	assert.Equal(t, "spring-market-update-for-the-east-valley", post.Slug)
	assert.Equal(t, models.StatusDraft, post.Status)
	assert.Equal(t, 2, post.ReadTime)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, "html", post.ContentFormat)
}

func TestCreateExplicitSlugStoredVerbatim(t *testing.T) {
	svc := newTestService(t)

	post, err := svc.Create(&CreateBlogPostDTO{
		Title:    "Staging Tips",
		Slug:     "Staging-TIPS",
		Content:  "short",
		Category: "selling",
	})
	require.NoError(t, err)
	assert.Equal(t, "Staging-TIPS", post.Slug)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&CreateBlogPostDTO{
		Title: "x", Content: "y", Category: "nonsense",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.Create(&CreateBlogPostDTO{
		Title: "x", Content: "y", Category: "buying", Status: "archived",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Create(&CreateBlogPostDTO{
		Title: "x", Content: "y", Category: "buying",
		Excerpt: strings.Repeat("a", 301),
	})
	assert.ErrorIs(t, err, ErrExcerptTooLong)
}

func TestCreateDuplicateSlug(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&CreateBlogPostDTO{
		Title: "Mesa Living", Content: "a", Category: "lifestyle",
	})
	require.NoError(t, err)

	_, err = svc.Create(&CreateBlogPostDTO{
		Title: "Mesa Living", Content: "b", Category: "buying",
	})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestPublishTimestamp(t *testing.T) {
	svc := newTestService(t)
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	post, err := svc.Create(&CreateBlogPostDTO{
		Title: "First Time Buyer Guide", Content: "a", Category: "buying",
	})
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	t.Run("draft to published stamps once", func(t *testing.T) {
		status := models.StatusPublished
		updated, err := svc.Update(post.ID, &UpdateBlogPostDTO{Status: &status})
		require.NoError(t, err)
		require.NotNil(t, updated.PublishedAt)
		assert.True(t, updated.PublishedAt.Equal(stamp))
	})

	t.Run("re-saving published keeps the stamp", func(t *testing.T) {
		svc.now = func() time.Time { return stamp.Add(48 * time.Hour) }
		status := models.StatusPublished
		title := "First Time Buyer Guide, Revised"
		updated, err := svc.Update(post.ID, &UpdateBlogPostDTO{Status: &status, Title: &title})
		require.NoError(t, err)
		require.NotNil(t, updated.PublishedAt)
		assert.True(t, updated.PublishedAt.Equal(stamp))
	})

	t.Run("explicit publishedAt wins", func(t *testing.T) {
		backdate := stamp.Add(-240 * time.Hour)
		updated, err := svc.Update(post.ID, &UpdateBlogPostDTO{PublishedAt: &backdate})
		require.NoError(t, err)
		require.NotNil(t, updated.PublishedAt)
		assert.True(t, updated.PublishedAt.Equal(backdate))
	})
}

func TestUpdateRecomputesReadTime(t *testing.T) {
	svc := newTestService(t)

	post, err := svc.Create(&CreateBlogPostDTO{
		Title: "Short One", Content: "tiny", Category: "lifestyle",
	})
	require.NoError(t, err)
	require.Equal(t, 1, post.ReadTime)

	longer := strings.Repeat("word ", 600)
	updated, err := svc.Update(post.ID, &UpdateBlogPostDTO{Content: &longer})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ReadTime)
}

func TestListStatusFilter(t *testing.T) {
	svc := newTestService(t)

	published := models.StatusPublished
	for _, p := range []CreateBlogPostDTO{
		{Title: "Pub One", Content: "a", Category: "buying", Status: published},
		{Title: "Pub Two", Content: "a", Category: "selling", Status: published, Tags: []string{"hoa", "tips"}},
		{Title: "Draft One", Content: "a", Category: "buying"},
	} {
		p := p
		_, err := svc.Create(&p)
		require.NoError(t, err)
	}

	q := pagination.Query{Page: 1, Limit: 10}

	t.Run("default is published only", func(t *testing.T) {
		posts, pag, err := svc.List(q, ListQuery{})
		require.NoError(t, err)
		assert.Len(t, posts, 2)
		assert.Equal(t, int64(2), pag.Total)
	})

	t.Run("all lifts the filter", func(t *testing.T) {
		posts, _, err := svc.List(q, ListQuery{Status: "all"})
		require.NoError(t, err)
		assert.Len(t, posts, 3)
	})

	t.Run("draft filter", func(t *testing.T) {
		posts, _, err := svc.List(q, ListQuery{Status: models.StatusDraft})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Draft One", posts[0].Title)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, _, err := svc.List(q, ListQuery{Status: "archived"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("category intersects with status", func(t *testing.T) {
		posts, _, err := svc.List(q, ListQuery{Category: "buying"})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Pub One", posts[0].Title)
	})

	t.Run("tag filter", func(t *testing.T) {
		posts, _, err := svc.List(q, ListQuery{Tag: "hoa"})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Pub Two", posts[0].Title)
	})

	t.Run("content omitted from list rows", func(t *testing.T) {
		posts, _, err := svc.List(q, ListQuery{})
		require.NoError(t, err)
		for _, p := range posts {
			assert.Empty(t, p.Content)
		}
	})
}

func TestSingleFetchHasNoStatusGate(t *testing.T) {
	svc := newTestService(t)

	post, err := svc.Create(&CreateBlogPostDTO{
		Title: "Unlisted Draft", Content: "a", Category: "lifestyle",
	})
	require.NoError(t, err)

	bySlug, err := svc.GetBySlug(post.Slug)
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, post.ID, bySlug.ID)

	byID, err := svc.GetByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
}

func TestMetaEndpointsCoverPublishedOnly(t *testing.T) {
	svc := newTestService(t)

	published := models.StatusPublished
	_, err := svc.Create(&CreateBlogPostDTO{
		Title: "Pub", Content: "a", Category: "buying", Status: published,
		Tags: []string{"schools", "parks", "schools"},
	})
	require.NoError(t, err)
	_, err = svc.Create(&CreateBlogPostDTO{
		Title: "Draft", Content: "a", Category: "selling", Tags: []string{"hidden"},
	})
	require.NoError(t, err)

	cats, err := svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"buying"}, cats)

	tags, err := svc.Tags()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"schools", "parks"}, tags)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)

	post, err := svc.Create(&CreateBlogPostDTO{
		Title: "Gone Soon", Content: "a", Category: "lifestyle",
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(post.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(post.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
