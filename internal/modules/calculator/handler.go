package calculator

import (
	"encoding/json"
	"errors"

	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles calculator HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/calculators")

	g.GET("/settings", h.getSettings)
	g.POST("/payment", h.payment)
	g.POST("/affordability", h.affordability)

	authed := g.Group("", authMW)
	authed.PUT("/settings", h.updateSettings)
	authed.POST("/settings/reset", h.resetSettings)
}

// getSettings GET /calculators/settings
func (h *Handler) getSettings(c *gin.Context) {
	cfg, err := h.svc.Get()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cfg)
}

// updateSettings PUT /calculators/settings  [admin]
func (h *Handler) updateSettings(c *gin.Context) {
	var partial map[string]map[string]json.RawMessage
	if err := c.ShouldBindJSON(&partial); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cfg, err := h.svc.Update(partial)
	if err != nil {
		if errors.Is(err, ErrInvalidGroup) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, cfg)
}

// resetSettings POST /calculators/settings/reset  [admin]
func (h *Handler) resetSettings(c *gin.Context) {
	cfg, err := h.svc.Reset()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cfg)
}

// payment POST /calculators/payment
func (h *Handler) payment(c *gin.Context) {
	var in PaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if in.HomePrice <= 0 || in.LoanTermYears <= 0 {
		response.BadRequest(c, "homePrice and loanTermYears must be positive")
		return
	}
	response.OK(c, Payment(in))
}

// affordability POST /calculators/affordability
func (h *Handler) affordability(c *gin.Context) {
	var in AffordabilityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if in.AnnualIncome <= 0 || in.LoanTermYears <= 0 || in.DTIRatio <= 0 {
		response.BadRequest(c, "annualIncome, loanTermYears and dtiRatio must be positive")
		return
	}
	response.OK(c, Affordability(in))
}
