package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/dealership_finance_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_finance_app/internal/core/services"
	"github.com/SscSPs/dealership_finance_app/internal/dto"
	"github.com/SscSPs/dealership_finance_app/internal/handlers"
	"github.com/SscSPs/dealership_finance_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	jwtSecret           string
	userID              string
	mockExchangeRateSvc *MockExchangeRateService
	mockInstallmentSvc  *MockInstallmentService
	mockRegulatorySvc   *MockRegulatoryService
}

func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockExchangeRateSvc = new(MockExchangeRateService)
	suite.mockInstallmentSvc = new(MockInstallmentService)
	suite.mockRegulatorySvc = new(MockRegulatoryService)

	container := &portssvc.ServiceContainer{
		Currency:     services.NewCurrencyService(),
		ExchangeRate: suite.mockExchangeRateSvc,
		Installment:  suite.mockInstallmentSvc,
		Regulatory:   suite.mockRegulatorySvc,
	}
	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, container, handlers.RouteDeps{})
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), "Failed to unmarshal response body")
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth_NoAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestAPI_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestListCurrencies() {
	w := suite.do(http.MethodGet, "/api/v1/currencies", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.CurrencyResponse
	suite.decode(w, &resp)
	suite.NotEmpty(resp)
}

func (suite *HandlerTestSuite) TestGetCurrency_Alias() {
	w := suite.do(http.MethodGet, "/api/v1/currencies/tl", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CurrencyResponse
	suite.decode(w, &resp)
	suite.Equal("TRY", resp.CurrencyCode)
}

func (suite *HandlerTestSuite) TestGetCurrency_Unknown() {
	w := suite.do(http.MethodGet, "/api/v1/currencies/XYZ", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestFormat_Placeholder() {
	w := suite.do(http.MethodGet, "/api/v1/format?currency=USD&amount=abc", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.FormatAmountResponse
	suite.decode(w, &resp)
	suite.Equal("-", resp.Formatted)
}

func (suite *HandlerTestSuite) TestFormat_MissingCurrency() {
	w := suite.do(http.MethodGet, "/api/v1/format?amount=10", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestResolveRate_Success() {
	quote := &domain.RateQuote{
		FromCurrency: "USD",
		ToCurrency:   "TRY",
		Rate:         decimal.RequireFromString("32.5"),
		Source:       domain.RateSourceOverride,
		LiveRate:     decimal.NullDecimal{},
		Notice:       "live rate unavailable",
	}
	suite.mockExchangeRateSvc.On("ResolveRate", mock.Anything, suite.userID, "USD", "TL").Return(quote, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/USD/TL", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RateQuoteResponse
	suite.decode(w, &resp)
	suite.True(resp.Rate.Equal(decimal.RequireFromString("32.5")))
	suite.Equal(domain.RateSourceOverride, resp.Source)
	suite.False(resp.LiveRate.Valid)
	suite.Equal("live rate unavailable", resp.Notice)
	suite.mockExchangeRateSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestResolveRate_Unavailable() {
	err := apperrors.NewAppError(http.StatusServiceUnavailable, "no rate for USD_TRY", apperrors.ErrRateUnavailable)
	suite.mockExchangeRateSvc.On("ResolveRate", mock.Anything, suite.userID, "USD", "TRY").Return(nil, err).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/USD/TRY", nil)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.mockExchangeRateSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestConvert_UnsupportedCurrency() {
	body := map[string]any{"amount": "100", "fromCurrencyCode": "XYZ", "toCurrencyCode": "TRY"}

	w := suite.do(http.MethodPost, "/api/v1/exchange-rates/convert", body)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExchangeRateSvc.AssertNotCalled(suite.T(), "Convert")
}

func (suite *HandlerTestSuite) TestConvert_Success() {
	amount := decimal.NewFromInt(100)
	conversion := &domain.Conversion{
		Amount:    amount,
		Converted: decimal.RequireFromString("3250.00"),
		Quote: domain.RateQuote{
			FromCurrency: "USD", ToCurrency: "TRY",
			Rate: decimal.RequireFromString("32.5"), Source: domain.RateSourceLive,
			LiveRate: decimal.NewNullDecimal(decimal.RequireFromString("32.5")),
		},
	}
	suite.mockExchangeRateSvc.On("Convert", mock.Anything, suite.userID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(amount) }), "USD", "TRY").
		Return(conversion, nil).Once()

	body := map[string]any{"amount": "100", "fromCurrencyCode": "USD", "toCurrencyCode": "TRY"}
	w := suite.do(http.MethodPost, "/api/v1/exchange-rates/convert", body)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ConversionResponse
	suite.decode(w, &resp)
	suite.True(resp.Converted.Equal(decimal.RequireFromString("3250")))
	suite.NotEmpty(resp.FormattedConverted)
	suite.mockExchangeRateSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSetOverride() {
	rate := decimal.RequireFromString("33.1")
	override := &domain.ExchangeRateOverride{FromCurrency: "USD", ToCurrency: "TRY", Rate: rate, SetAt: time.Now().UTC()}
	suite.mockExchangeRateSvc.On("SetOverride", mock.Anything, suite.userID, "USD", "TRY",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(rate) })).
		Return(override, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/exchange-rates/overrides/USD/TRY", map[string]any{"rate": "33.1"})
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.OverrideResponse
	suite.decode(w, &resp)
	suite.Equal("USD", resp.FromCurrencyCode)
	suite.True(resp.Rate.Equal(rate))
	suite.mockExchangeRateSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSetOverride_Invalid() {
	err := apperrors.NewValidationError("override rate must be positive")
	suite.mockExchangeRateSvc.On("SetOverride", mock.Anything, suite.userID, "USD", "TRY", mock.Anything).Return(nil, err).Once()

	w := suite.do(http.MethodPut, "/api/v1/exchange-rates/overrides/USD/TRY", map[string]any{"rate": "0"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestClearOverride() {
	suite.mockExchangeRateSvc.On("ClearOverride", mock.Anything, suite.userID, "USD", "TRY").Return(nil).Once()
	suite.mockExchangeRateSvc.On("ClearOverride", mock.Anything, suite.userID, "EUR", "TRY").
		Return(apperrors.NewNotFoundError("no override for EUR_TRY")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/exchange-rates/overrides/USD/TRY", nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/exchange-rates/overrides/EUR/TRY", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockExchangeRateSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListOverrides() {
	overrides := []domain.ExchangeRateOverride{
		{FromCurrency: "EUR", ToCurrency: "TRY", Rate: decimal.NewFromInt(35)},
		{FromCurrency: "USD", ToCurrency: "TRY", Rate: decimal.NewFromInt(32)},
	}
	suite.mockExchangeRateSvc.On("ListOverrides", mock.Anything, suite.userID).Return(overrides, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/overrides", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.OverrideResponse
	suite.decode(w, &resp)
	suite.Len(resp, 2)
}

func (suite *HandlerTestSuite) TestCreateSale() {
	saleDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	sale := &domain.InstallmentSale{
		SaleID:            uuid.NewString(),
		VehicleID:         "VIN-1",
		CustomerName:      "A. Customer",
		TotalAmount:       decimal.NewFromInt(12000),
		DownPayment:       decimal.NewFromInt(2000),
		InstallmentCount:  10,
		InstallmentAmount: decimal.NewFromInt(1000),
		CurrencyCode:      "USD",
		SaleDate:          saleDate,
	}
	suite.mockInstallmentSvc.On("CreateSale", mock.Anything,
		mock.MatchedBy(func(r dto.CreateInstallmentSaleRequest) bool {
			return r.VehicleID == "VIN-1" && r.InstallmentCount == 10 && r.TotalAmount.Equal(decimal.NewFromInt(12000))
		}), suite.userID).Return(sale, nil).Once()

	body := map[string]any{
		"vehicleID":        "VIN-1",
		"customerName":     "A. Customer",
		"totalAmount":      "12000",
		"downPayment":      "2000",
		"installmentCount": 10,
		"currencyCode":     "USD",
		"saleDate":         "2024-01-15",
	}
	w := suite.do(http.MethodPost, "/api/v1/installment-sales", body)
	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.InstallmentSaleResponse
	suite.decode(w, &resp)
	suite.Equal(sale.SaleID, resp.SaleID)
	suite.Equal("2024-01-15", resp.SaleDate)
	suite.True(resp.InstallmentAmount.Equal(decimal.NewFromInt(1000)))
	suite.mockInstallmentSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateSale_BadDate() {
	body := map[string]any{
		"vehicleID":        "VIN-1",
		"customerName":     "A. Customer",
		"totalAmount":      "12000",
		"installmentCount": 10,
		"currencyCode":     "USD",
		"saleDate":         "15/01/2024",
	}
	w := suite.do(http.MethodPost, "/api/v1/installment-sales", body)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInstallmentSvc.AssertNotCalled(suite.T(), "CreateSale")
}

func (suite *HandlerTestSuite) TestRecordPayment_Duplicate() {
	saleID := uuid.NewString()
	err := apperrors.NewAppError(http.StatusConflict, "installment 1 already paid", apperrors.ErrDuplicate)
	suite.mockInstallmentSvc.On("RecordPayment", mock.Anything, saleID,
		mock.AnythingOfType("dto.RecordPaymentRequest"), suite.userID).Return(nil, err).Once()

	body := map[string]any{
		"paymentType":       "installment",
		"installmentNumber": 1,
		"amount":            "1000",
		"paymentDate":       "2024-02-15",
	}
	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/installment-sales/%s/payments", saleID), body)
	suite.Equal(http.StatusConflict, w.Code)
	suite.mockInstallmentSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRecordPayment_BadType() {
	body := map[string]any{"paymentType": "refund", "amount": "1000", "paymentDate": "2024-02-15"}
	w := suite.do(http.MethodPost, "/api/v1/installment-sales/sale-1/payments", body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetSummary() {
	saleID := uuid.NewString()
	summary := &domain.InstallmentSummary{
		SaleID:                  saleID,
		CurrencyCode:            "USD",
		TotalAmount:             decimal.NewFromInt(12000),
		DownPayment:             decimal.NewFromInt(2000),
		InstallmentCount:        10,
		InstallmentAmount:       decimal.NewFromInt(1000),
		StoredInstallmentAmount: decimal.NewFromInt(1000),
		PaidInstallments:        3,
		RemainingInstallments:   7,
		NextInstallmentNumber:   4,
		TotalPaid:               decimal.NewFromInt(5000),
		RemainingBalance:        decimal.NewFromInt(7000),
		DisplayRemainingBalance: decimal.NewFromInt(7000),
		Status:                  domain.SaleStatusActive,
	}
	suite.mockInstallmentSvc.On("GetSummary", mock.Anything, saleID).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/installment-sales/%s/summary", saleID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.InstallmentSummaryResponse
	suite.decode(w, &resp)
	suite.Equal(7, resp.RemainingInstallments)
	suite.Equal(domain.SaleStatusActive, resp.Status)
	suite.Nil(resp.Overdue)
	suite.NotEmpty(resp.FormattedRemainingBalance)
}

func (suite *HandlerTestSuite) TestGetSale_NotFound() {
	suite.mockInstallmentSvc.On("GetSale", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("installment sale missing not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/installment-sales/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteSale() {
	suite.mockInstallmentSvc.On("DeleteSale", mock.Anything, "sale-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/installment-sales/sale-1", nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockInstallmentSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) dutyQuote() domain.DutyQuote {
	usd := decimal.NewFromInt(17800)
	return domain.DutyQuote{
		Entry: domain.RegulatoryRateEntry{
			MakerKey: "toyota", ModelKey: "corolla", GradeKey: "hybrid_g",
			EngineDisplacementLabel: "1798 CC",
			Values:                  map[string]*decimal.Decimal{"USD": &usd, "TRY": nil},
		},
		CC:                1798,
		DisplacementKnown: true,
		DutyRate:          decimal.RequireFromString("0.1"),
	}
}

func (suite *HandlerTestSuite) TestDuty_QuoteOnly() {
	quote := suite.dutyQuote()
	suite.mockRegulatorySvc.On("Lookup", mock.Anything, "toyota", "corolla", "hybrid_g").Return(&quote, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/regulatory/duty?maker=toyota&model=corolla&grade=hybrid_g", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DutyQuoteResponse
	suite.decode(w, &resp)
	suite.Equal(1798, resp.CC)
	suite.True(resp.Values["USD"].Valid)
	suite.False(resp.Values["TRY"].Valid)
	suite.mockRegulatorySvc.AssertNotCalled(suite.T(), "EstimateDuty")
}

func (suite *HandlerTestSuite) TestDuty_Estimate() {
	estimate := &domain.DutyEstimate{
		Quote:        suite.dutyQuote(),
		CurrencyCode: "USD",
		Value:        decimal.NewFromInt(17800),
		Duty:         decimal.NewFromInt(1780),
	}
	suite.mockRegulatorySvc.On("EstimateDuty", mock.Anything, "toyota", "corolla", "hybrid_g", "USD").Return(estimate, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/regulatory/duty?maker=toyota&model=corolla&grade=hybrid_g&currency=USD", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DutyEstimateResponse
	suite.decode(w, &resp)
	suite.True(resp.Duty.Equal(decimal.NewFromInt(1780)))
	suite.mockRegulatorySvc.AssertNotCalled(suite.T(), "Lookup")
}

func (suite *HandlerTestSuite) TestDuty_MissingGrade() {
	w := suite.do(http.MethodGet, "/api/v1/regulatory/duty?maker=toyota&model=corolla", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListModels_UnknownMaker() {
	suite.mockRegulatorySvc.On("ListModels", mock.Anything, "lada").
		Return(nil, apperrors.NewNotFoundError("maker lada not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/regulatory/makers/lada/models", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
