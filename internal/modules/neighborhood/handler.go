package neighborhood

import (
	"errors"
	"strconv"

	"github.com/copperstate/realty-core/internal/middleware"
	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles neighborhood HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/neighborhoods")

	g.GET("", h.list)
	g.GET("/:slug", h.getBySlug)

	authed := g.Group("", authMW)
	authed.GET("/id/:id", h.getByID)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

// list GET /neighborhoods?active=
// Public callers see active profiles only. Admin callers see everything
// unless they pass an explicit active filter.
func (h *Handler) list(c *gin.Context) {
	var active *bool
	if middleware.IsAdmin(c) {
		if raw, ok := c.GetQuery("active"); ok {
			if v, err := strconv.ParseBool(raw); err == nil {
				active = &v
			}
		}
	} else {
		v := true
		active = &v
	}

	items, err := h.svc.List(active)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// getBySlug GET /neighborhoods/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	publicOnly := !middleware.IsAdmin(c)
	n, err := h.svc.GetBySlug(c.Param("slug"), publicOnly)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if n == nil {
		response.NotFound(c, "neighborhood not found")
		return
	}
	response.OK(c, n)
}

// getByID GET /neighborhoods/id/:id  [admin]
func (h *Handler) getByID(c *gin.Context) {
	n, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if n == nil {
		response.NotFound(c, "neighborhood not found")
		return
	}
	response.OK(c, n)
}

// create POST /neighborhoods  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto CreateNeighborhoodDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	n, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrDuplicateSlug) || errors.Is(err, ErrValidation) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, n)
}

// update PUT /neighborhoods/:id  [admin]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateNeighborhoodDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	n, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrDuplicateSlug) || errors.Is(err, ErrValidation) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if n == nil {
		response.NotFound(c, "neighborhood not found")
		return
	}
	response.OK(c, n)
}

// delete DELETE /neighborhoods/:id  [admin]
func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "neighborhood not found")
		return
	}
	response.Message(c, "neighborhood deleted")
}
