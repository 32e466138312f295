package backup

import (
	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles backup HTTP requests. All routes are admin-only.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/backup", authMW)

	g.GET("", h.list)
	g.POST("", h.run)
}

// list GET /backup  [admin]
func (h *Handler) list(c *gin.Context) {
	archives, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, archives)
}

// run POST /backup  [admin]
func (h *Handler) run(c *gin.Context) {
	archive, err := h.svc.Run(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, archive)
}
