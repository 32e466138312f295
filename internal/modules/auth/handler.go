package auth

import (
	"encoding/base64"
	"net/http"

	"github.com/copperstate/realty-core/internal/config"
	"github.com/copperstate/realty-core/internal/middleware"
	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler exposes the login endpoint. The returned token is the base64-encoded
// credential pair, replayed by the admin UI as a Basic header on writes. This
// is a fixed external contract, not a session scheme.
type Handler struct {
	cfg *config.AppConfig
}

func NewHandler(cfg *config.AppConfig) *Handler { return &Handler{cfg: cfg} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.login)
}

type loginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	if !middleware.ValidateCredentials(h.cfg, dto.Username, dto.Password) {
		response.Unauthorized(c, "invalid username or password")
		return
	}

	token := base64.StdEncoding.EncodeToString([]byte(dto.Username + ":" + dto.Password))
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
