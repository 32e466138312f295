package resource

import (
	"errors"
	"strconv"

	"github.com/copperstate/realty-core/internal/middleware"
	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles resource HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/resources")

	g.GET("", h.list)
	g.GET("/:id", h.getByID)
	g.POST("/:id/download", h.download)

	authed := g.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

// list GET /resources?active=&category=
// Public callers see active resources only. Admin callers see everything
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

	items, err := h.svc.List(active, c.Query("category"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// getByID GET /resources/:id
func (h *Handler) getByID(c *gin.Context) {
	r, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if r == nil || (!r.IsActive && !middleware.IsAdmin(c)) {
		response.NotFound(c, "resource not found")
		return
	}
	response.OK(c, r)
}

// download POST /resources/:id/download
// Bumps the download counter and returns the file location.
func (h *Handler) download(c *gin.Context) {
	dl, err := h.svc.RecordDownload(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if dl == nil {
		response.NotFound(c, "resource not found")
		return
	}
	response.OK(c, dl)
}

// create POST /resources  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto CreateResourceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	r, err := h.svc.Create(&dto)
	if err != nil {
		if isValidationErr(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, r)
}

// update PUT /resources/:id  [admin]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateResourceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	r, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if isValidationErr(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if r == nil {
		response.NotFound(c, "resource not found")
		return
	}
	response.OK(c, r)
}

// delete DELETE /resources/:id  [admin]
func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "resource not found")
		return
	}
	response.Message(c, "resource deleted")
}

func isValidationErr(err error) bool {
	return errors.Is(err, ErrInvalidFileType) || errors.Is(err, ErrInvalidCategory)
}
