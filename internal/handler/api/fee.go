package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "manga-cafe-billing/internal/handler/dto/request"
	resdto "manga-cafe-billing/internal/handler/dto/response"
	"manga-cafe-billing/internal/handler/httperr"
	"manga-cafe-billing/internal/pkg/config"
	"manga-cafe-billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FeeHandler struct {
	uc  usecase.FeeUseCase
	loc *time.Location
}

func NewFeeHandler(uc usecase.FeeUseCase, cfg config.Config) *FeeHandler {
	return &FeeHandler{
		uc:  uc,
		loc: cfg.Tariff.Location(),
	}
}

// @Summary List plans
// @Description List the available plans in display order
// @Tags plans
// @Produce json
// @Success 200 {array} resdto.PlanResponse
// @Failure 500 {object} httperr.Response
// @Router /api/plans [get]
func (h *FeeHandler) ListPlans(c *gin.Context) {
	res, err := resdto.FromPlans(h.uc.ListPlans(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load plans", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Quote a stay
// @Description Calculate the fee for a stay, including extension blocks, night surcharge and tax
// @Tags fees
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/fees/quote [post]
func (h *FeeHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid timestamp", err.Error())
		return
	}

	q, err := h.uc.Quote(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPlan):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid plan", err.Error())
		case errors.Is(err, usecase.ErrInvalidInterval):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid stay interval", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	res, err := resdto.FromQuote(q)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build quote", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
