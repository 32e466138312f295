package health

import (
	"time"

	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler answers liveness probes.
type Handler struct {
	db      *gorm.DB
	started time.Time
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db, started: time.Now()}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.check)
}

// check GET /health
func (h *Handler) check(c *gin.Context) {
	dbState := "up"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		dbState = "down"
	}
	response.OK(c, gin.H{
		"status":   "ok",
		"database": dbState,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}
