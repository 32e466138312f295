package blog

import (
	"errors"

	"github.com/copperstate/realty-core/internal/models"
	"github.com/copperstate/realty-core/internal/pkg/markdown"
	"github.com/copperstate/realty-core/internal/pkg/pagination"
	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles blog HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/blog")

	g.GET("", h.list)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/meta/categories", h.categories)
	g.GET("/meta/tags", h.tags)
	g.GET("/:id", h.getByID)

	authed := g.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

// list GET /blog?status=&category=&tag=&page=&limit=&sort=
// Without a status param only published posts are returned; status=all
// lifts the filter entirely.
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, pag, err := h.svc.List(q, lq)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	items := make([]listItem, len(posts))
	for i, p := range posts {
		items[i] = toListItem(&p)
	}
	response.Paged(c, items, pag)
}

// getBySlug GET /blog/slug/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	post, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "post not found")
		return
	}
	response.OK(c, toPostResponse(post))
}

// getByID GET /blog/:id
func (h *Handler) getByID(c *gin.Context) {
	post, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "post not found")
		return
	}
	response.OK(c, toPostResponse(post))
}

// categories GET /blog/meta/categories
func (h *Handler) categories(c *gin.Context) {
	cats, err := h.svc.Categories()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cats)
}

// tags GET /blog/meta/tags
func (h *Handler) tags(c *gin.Context) {
	tags, err := h.svc.Tags()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, tags)
}

// create POST /blog  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto CreateBlogPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Create(&dto)
	if err != nil {
		if isValidationErr(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toPostResponse(post))
}

// update PUT /blog/:id  [admin]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateBlogPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if isValidationErr(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "post not found")
		return
	}
	response.OK(c, toPostResponse(post))
}

// delete DELETE /blog/:id  [admin]
func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "post not found")
		return
	}
	response.Message(c, "post deleted")
}

func isValidationErr(err error) bool {
	return errors.Is(err, ErrDuplicateSlug) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrExcerptTooLong)
}

func toPostResponse(p *models.BlogPostModel) postResponse {
	resp := postResponse{BlogPostModel: *p}
	if p.ContentFormat == "markdown" {
		resp.ContentHTML = markdown.Render(p.Content)
	}
	return resp
}
