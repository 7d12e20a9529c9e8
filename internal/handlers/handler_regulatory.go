package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/dealership_finance_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_finance_app/internal/dto"
	"github.com/SscSPs/dealership_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// regulatoryHandler serves the Japan import duty table.
type regulatoryHandler struct {
	regulatoryService portssvc.RegulatorySvcFacade
}

func newRegulatoryHandler(rs portssvc.RegulatorySvcFacade) *regulatoryHandler {
	return &regulatoryHandler{regulatoryService: rs}
}

// registerRegulatoryRoutes registers routes related to import duty.
func registerRegulatoryRoutes(rg *gin.RouterGroup, regulatoryService portssvc.RegulatorySvcFacade) {
	h := newRegulatoryHandler(regulatoryService)

	regulatory := rg.Group("/regulatory")
	{
		regulatory.GET("/makers", h.listMakers)
		regulatory.GET("/makers/:maker/models", h.listModels)
		regulatory.GET("/makers/:maker/models/:model/grades", h.listGrades)
		regulatory.GET("/duty", h.getDuty)
	}
}

// listMakers godoc
// @Summary List vehicle makers
// @Tags regulatory
// @Produce  json
// @Success 200 {array} string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list makers"
// @Security BearerAuth
// @Router /regulatory/makers [get]
func (h *regulatoryHandler) listMakers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	makers, err := h.regulatoryService.ListMakers(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "list makers")
		return
	}
	c.JSON(http.StatusOK, makers)
}

// listModels godoc
// @Summary List a maker's models
// @Tags regulatory
// @Produce  json
// @Param   maker path string true "Maker key"
// @Success 200 {array} string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Maker not found"
// @Security BearerAuth
// @Router /regulatory/makers/{maker}/models [get]
func (h *regulatoryHandler) listModels(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("maker", c.Param("maker")))

	models, err := h.regulatoryService.ListModels(c.Request.Context(), c.Param("maker"))
	if err != nil {
		respondWithError(c, logger, err, "list models")
		return
	}
	c.JSON(http.StatusOK, models)
}

// listGrades godoc
// @Summary List a model's grades
// @Tags regulatory
// @Produce  json
// @Param   maker path string true "Maker key"
// @Param   model path string true "Model key"
// @Success 200 {array} string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Maker or model not found"
// @Security BearerAuth
// @Router /regulatory/makers/{maker}/models/{model}/grades [get]
func (h *regulatoryHandler) listGrades(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("maker", c.Param("maker")), slog.String("model", c.Param("model")))

	grades, err := h.regulatoryService.ListGrades(c.Request.Context(), c.Param("maker"), c.Param("model"))
	if err != nil {
		respondWithError(c, logger, err, "list grades")
		return
	}
	c.JSON(http.StatusOK, grades)
}

// getDuty godoc
// @Summary Look up import duty
// @Description Without a currency, returns the duty bracket of the grade. With one, also applies it to the grade's value in that currency.
// @Tags regulatory
// @Produce  json
// @Param   maker    query string true  "Maker key"
// @Param   model    query string true  "Model key"
// @Param   grade    query string true  "Grade key"
// @Param   currency query string false "Currency of the value to apply the duty to"
// @Param   locale   query string false "Locale for formatted amounts"
// @Success 200 {object} dto.DutyEstimateResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry or value not found"
// @Security BearerAuth
// @Router /regulatory/duty [get]
func (h *regulatoryHandler) getDuty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DutyEstimateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "duty query")
		return
	}
	logger = logger.With(slog.String("maker", params.Maker), slog.String("model", params.Model), slog.String("grade", params.Grade))

	if params.CurrencyCode == "" {
		quote, err := h.regulatoryService.Lookup(c.Request.Context(), params.Maker, params.Model, params.Grade)
		if err != nil {
			respondWithError(c, logger, err, "look up duty")
			return
		}
		c.JSON(http.StatusOK, dto.ToDutyQuoteResponse(quote))
		return
	}

	estimate, err := h.regulatoryService.EstimateDuty(c.Request.Context(), params.Maker, params.Model, params.Grade, params.CurrencyCode)
	if err != nil {
		respondWithError(c, logger, err, "estimate duty")
		return
	}
	c.JSON(http.StatusOK, dto.ToDutyEstimateResponse(estimate, params.Locale))
}
