package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/dealership_finance_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_finance_app/internal/dto"
	"github.com/SscSPs/dealership_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// installmentHandler handles installment sales, their payments and ledger views.
type installmentHandler struct {
	installmentService portssvc.InstallmentSvcFacade
}

func newInstallmentHandler(is portssvc.InstallmentSvcFacade) *installmentHandler {
	return &installmentHandler{installmentService: is}
}

// registerInstallmentRoutes registers routes related to installment sales.
func registerInstallmentRoutes(rg *gin.RouterGroup, installmentService portssvc.InstallmentSvcFacade) {
	h := newInstallmentHandler(installmentService)

	sales := rg.Group("/installment-sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)

		sale := sales.Group("/:saleID")
		sale.GET("", h.getSale)
		sale.PUT("", h.updateSale)
		sale.DELETE("", h.deleteSale)
		sale.GET("/summary", h.getSummary)
		sale.GET("/schedule", h.getSchedule)

		payments := sale.Group("/payments")
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
		payments.PUT("/:paymentID", h.updatePayment)
		payments.DELETE("/:paymentID", h.deletePayment)
	}
}

// createSale godoc
// @Summary Create an installment sale
// @Description Opens a sale paid as a down payment plus equal installments. The installment amount is derived.
// @Tags installment sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateInstallmentSaleRequest true "Sale details"
// @Success 201 {object} dto.InstallmentSaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create installment sale"
// @Security BearerAuth
// @Router /installment-sales [post]
func (h *installmentHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInstallmentSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "CreateInstallmentSale request")
		return
	}
	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	sale, err := h.installmentService.CreateSale(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "create installment sale")
		return
	}

	logger.Info("Installment sale created", slog.String("sale_id", sale.SaleID))
	c.JSON(http.StatusCreated, dto.ToInstallmentSaleResponse(sale))
}

// listSales godoc
// @Summary List installment sales
// @Description Newest sale date first, paginated with nextToken
// @Tags installment sales
// @Produce  json
// @Param   limit     query int    false "Page size (1-100, default 20)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListInstallmentSalesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /installment-sales [get]
func (h *installmentHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInstallmentSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "ListInstallmentSales query")
		return
	}

	resp, err := h.installmentService.ListSales(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "list installment sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getSale godoc
// @Summary Get an installment sale
// @Tags installment sales
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Success 200 {object} dto.InstallmentSaleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /installment-sales/{saleID} [get]
func (h *installmentHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("sale_id", c.Param("saleID")))

	sale, err := h.installmentService.GetSale(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondWithError(c, logger, err, "retrieve installment sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToInstallmentSaleResponse(sale))
}

// updateSale godoc
// @Summary Update an installment sale
// @Description Changes any subset of fields; the installment amount is recomputed
// @Tags installment sales
// @Accept  json
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Param   sale body dto.UpdateInstallmentSaleRequest true "Fields to change"
// @Success 200 {object} dto.InstallmentSaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /installment-sales/{saleID} [put]
func (h *installmentHandler) updateSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("sale_id", c.Param("saleID")))
	var req dto.UpdateInstallmentSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "UpdateInstallmentSale request")
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	sale, err := h.installmentService.UpdateSale(c.Request.Context(), c.Param("saleID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "update installment sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToInstallmentSaleResponse(sale))
}

// deleteSale godoc
// @Summary Delete an installment sale
// @Description Deletes the sale together with its payments
// @Tags installment sales
// @Param   saleID path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /installment-sales/{saleID} [delete]
func (h *installmentHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("sale_id", c.Param("saleID")))

	if err := h.installmentService.DeleteSale(c.Request.Context(), c.Param("saleID")); err != nil {
		respondWithError(c, logger, err, "delete installment sale")
		return
	}
	logger.Info("Installment sale deleted")
	c.Status(http.StatusNoContent)
}

// getSummary godoc
// @Summary Get the ledger summary of a sale
// @Description Paid and remaining installments, balances, status and overdue state
// @Tags installment sales
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Param   locale query string false "Locale for formatted amounts"
// @Success 200 {object} dto.InstallmentSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /installment-sales/{saleID}/summary [get]
func (h *installmentHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("sale_id", c.Param("saleID")))

	summary, err := h.installmentService.GetSummary(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondWithError(c, logger, err, "summarize installment sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToInstallmentSummaryResponse(summary, c.Query("locale")))
}

// getSchedule godoc
// @Summary Get the installment schedule of a sale
// @Description Monthly due dates from the sale date; the last installment absorbs rounding
// @Tags installment sales
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Param   locale query string false "Locale for formatted amounts"
// @Success 200 {array} dto.ScheduledInstallmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /installment-sales/{saleID}/schedule [get]
func (h *installmentHandler) getSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("sale_id", c.Param("saleID")))

	sale, err := h.installmentService.GetSale(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondWithError(c, logger, err, "retrieve installment sale")
		return
	}
	schedule, err := h.installmentService.GetSchedule(c.Request.Context(), sale.SaleID)
	if err != nil {
		respondWithError(c, logger, err, "build installment schedule")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(schedule, sale.CurrencyCode, c.Query("locale")))
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records the down payment or a numbered installment. The currency must match the sale's.
// @Tags installment sales
// @Accept  json
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 409 {object} map[string]string "Payment already recorded"
// @Security BearerAuth
// @Router /installment-sales/{saleID}/payments [post]
func (h *installmentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("sale_id", c.Param("saleID")))
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "RecordPayment request")
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	payment, err := h.installmentService.RecordPayment(c.Request.Context(), c.Param("saleID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("payment_type", string(payment.PaymentType)))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List the payments of a sale
// @Tags installment sales
// @Produce  json
// @Param   saleID path string true "Sale ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /installment-sales/{saleID}/payments [get]
func (h *installmentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("sale_id", c.Param("saleID")))

	payments, err := h.installmentService.ListPayments(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondWithError(c, logger, err, "list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// updatePayment godoc
// @Summary Update a payment
// @Tags installment sales
// @Accept  json
// @Produce  json
// @Param   saleID    path string true "Sale ID"
// @Param   paymentID path string true "Payment ID"
// @Param   payment body dto.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment already recorded"
// @Security BearerAuth
// @Router /installment-sales/{saleID}/payments/{paymentID} [put]
func (h *installmentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("sale_id", c.Param("saleID")), slog.String("payment_id", c.Param("paymentID")))
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "UpdatePayment request")
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	payment, err := h.installmentService.UpdatePayment(c.Request.Context(), c.Param("saleID"), c.Param("paymentID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "update payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags installment sales
// @Param   saleID    path string true "Sale ID"
// @Param   paymentID path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /installment-sales/{saleID}/payments/{paymentID} [delete]
func (h *installmentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("sale_id", c.Param("saleID")), slog.String("payment_id", c.Param("paymentID")))

	if err := h.installmentService.DeletePayment(c.Request.Context(), c.Param("saleID"), c.Param("paymentID")); err != nil {
		respondWithError(c, logger, err, "delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}
