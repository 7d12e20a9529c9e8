package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/dealership_finance_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_finance_app/internal/dto"
	"github.com/SscSPs/dealership_finance_app/internal/middleware"
	"github.com/SscSPs/dealership_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates and overrides.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	posthogClient       *utils.PosthogClientWrapper
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, posthogClient *utils.PosthogClientWrapper) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		posthogClient:       posthogClient,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates. rateLimit
// guards the routes that may call the live rate provider.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, posthogClient *utils.PosthogClientWrapper, rateLimit gin.HandlerFunc) {
	h := newExchangeRateHandler(exchangeRateService, posthogClient)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.POST("/convert", rateLimit, h.convert)
		exchangeRates.GET("/:from/:to", rateLimit, h.resolveRate)
		exchangeRates.GET("/recorded/:from/:to", h.getRecordedExchangeRate)

		overrides := exchangeRates.Group("/overrides")
		overrides.GET("", h.listOverrides)
		overrides.GET("/:from/:to", h.getOverride)
		overrides.PUT("/:from/:to", h.setOverride)
		overrides.DELETE("/:from/:to", h.clearOverride)
	}
}

// createExchangeRate godoc
// @Summary Record an exchange rate
// @Description Stores a dated exchange rate between two currencies. A rate already recorded for the same pair and date is replaced.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "CreateExchangeRate request")
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create exchange rate",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.String("rate", req.Rate.String()),
		slog.String("date_effective", req.DateEffective),
	)

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.String("rate_id", createdRate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// getRecordedExchangeRate godoc
// @Summary Get the latest recorded exchange rate
// @Description Retrieves the most recent stored rate for a pair, or the inverse of the reverse pair
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code"
// @Param   to   path string true "To Currency Code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/recorded/{from}/{to} [get]
func (h *exchangeRateHandler) getRecordedExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("from_code", c.Param("from")), slog.String("to_code", c.Param("to")))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		respondWithError(c, logger, err, "retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// resolveRate godoc
// @Summary Resolve the effective exchange rate
// @Description Applies identity, then the caller's override, then the live rate. Never falls back to 1 for distinct currencies.
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code (aliases such as TL allowed)"
// @Param   to   path string true "To Currency Code"
// @Success 200 {object} dto.RateQuoteResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 503 {object} map[string]string "No rate available"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) resolveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("from_code", c.Param("from")), slog.String("to_code", c.Param("to")))

	quote, err := h.exchangeRateService.ResolveRate(c.Request.Context(), userID, c.Param("from"), c.Param("to"))
	if err != nil {
		respondWithError(c, logger, err, "resolve exchange rate")
		return
	}

	logger.Debug("Exchange rate resolved", slog.String("source", string(quote.Source)))
	c.JSON(http.StatusOK, dto.ToRateQuoteResponse(quote))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount with the resolved rate; the result is rounded to 2 decimal places
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 503 {object} map[string]string "No rate available"
// @Security BearerAuth
// @Router /exchange-rates/convert [post]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "Convert request")
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	conversion, err := h.exchangeRateService.Convert(c.Request.Context(), userID, req.Amount, req.FromCurrencyCode, req.ToCurrencyCode)
	if err != nil {
		respondWithError(c, logger, err, "convert amount")
		return
	}
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion, req.Locale))
}

// listOverrides godoc
// @Summary List the caller's rate overrides
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.OverrideResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list overrides"
// @Security BearerAuth
// @Router /exchange-rates/overrides [get]
func (h *exchangeRateHandler) listOverrides(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	overrides, err := h.exchangeRateService.ListOverrides(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "list overrides")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOverrideResponse(overrides))
}

// getOverride godoc
// @Summary Get the caller's override for a pair
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code"
// @Param   to   path string true "To Currency Code"
// @Success 200 {object} dto.OverrideResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No override"
// @Security BearerAuth
// @Router /exchange-rates/overrides/{from}/{to} [get]
func (h *exchangeRateHandler) getOverride(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	override, err := h.exchangeRateService.GetOverride(c.Request.Context(), userID, c.Param("from"), c.Param("to"))
	if err != nil {
		respondWithError(c, logger, err, "retrieve override")
		return
	}
	c.JSON(http.StatusOK, dto.ToOverrideResponse(override))
}

// setOverride godoc
// @Summary Set the caller's override for a pair
// @Description Replaces any existing override for the pair. The rate must be positive.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   from path string true "From Currency Code"
// @Param   to   path string true "To Currency Code"
// @Param   override body dto.SetOverrideRequest true "Override rate"
// @Success 200 {object} dto.OverrideResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /exchange-rates/overrides/{from}/{to} [put]
func (h *exchangeRateHandler) setOverride(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "SetOverride request")
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	override, err := h.exchangeRateService.SetOverride(c.Request.Context(), userID, c.Param("from"), c.Param("to"), req.Rate)
	if err != nil {
		respondWithError(c, logger, err, "set override")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "rate_override_set", map[string]any{
		"pair": override.Pair().Key(),
	})
	logger.Info("Rate override set", slog.String("pair", override.Pair().Key()), slog.String("rate", override.Rate.String()))
	c.JSON(http.StatusOK, dto.ToOverrideResponse(override))
}

// clearOverride godoc
// @Summary Clear the caller's override for a pair
// @Tags exchange rates
// @Param   from path string true "From Currency Code"
// @Param   to   path string true "To Currency Code"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No override"
// @Security BearerAuth
// @Router /exchange-rates/overrides/{from}/{to} [delete]
func (h *exchangeRateHandler) clearOverride(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.exchangeRateService.ClearOverride(c.Request.Context(), userID, c.Param("from"), c.Param("to")); err != nil {
		respondWithError(c, logger, err, "clear override")
		return
	}
	c.Status(http.StatusNoContent)
}
