package content

import (
	"encoding/json"
	"errors"

	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles site content HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/content")

	g.GET("", h.get)
	g.GET("/:section", h.getSection)

	authed := g.Group("", authMW)
	authed.PUT("", h.update)
	authed.PUT("/:section", h.updateSection)
}

// get GET /content
func (h *Handler) get(c *gin.Context) {
	doc, err := h.svc.GetOrCreate()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, doc)
}

// getSection GET /content/:section
func (h *Handler) getSection(c *gin.Context) {
	section, err := h.svc.GetSection(c.Param("section"))
	if err != nil {
		if errors.Is(err, ErrInvalidSection) {
			response.BadRequest(c, "unknown content section")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, section)
}

// update PUT /content  [admin]
func (h *Handler) update(c *gin.Context) {
	var partial map[string]map[string]json.RawMessage
	if err := c.ShouldBindJSON(&partial); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	doc, err := h.svc.UpdateDocument(partial)
	if err != nil {
		if errors.Is(err, ErrInvalidSection) {
			response.BadRequest(c, "unknown content section")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, doc)
}

// updateSection PUT /content/:section  [admin]
func (h *Handler) updateSection(c *gin.Context) {
	var partial map[string]json.RawMessage
	if err := c.ShouldBindJSON(&partial); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	section, err := h.svc.UpdateSection(c.Param("section"), partial)
	if err != nil {
		if errors.Is(err, ErrInvalidSection) {
			response.BadRequest(c, "unknown content section")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, section)
}
