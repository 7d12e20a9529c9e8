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

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies and amount formatting.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
	rg.GET("/format", h.formatAmount)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves every currency the app can quote and format
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "list currencies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves a supported currency by its ISO code or alias
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, logger.With(slog.String("currency_code", code)), err, "retrieve currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// formatAmount godoc
// @Summary Format an amount for display
// @Description Formats an amount in a currency for a locale. Absent or non-numeric amounts format as "-".
// @Tags currencies
// @Produce  json
// @Param   amount   query string false "Amount"
// @Param   currency query string true  "Currency code"
// @Param   locale   query string false "BCP 47 locale, e.g. de-DE"
// @Success 200 {object} dto.FormatAmountResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /format [get]
func (h *currencyHandler) formatAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.FormatAmountParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "format query")
		return
	}

	formatted := utils.FormatAmountString(params.Amount, params.CurrencyCode, params.Locale)
	c.JSON(http.StatusOK, dto.FormatAmountResponse{Formatted: formatted})
}
