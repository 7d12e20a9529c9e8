package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dealership_finance_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_finance_app/internal/dto"
	"github.com/SscSPs/dealership_finance_app/internal/utils/accounting"
	"github.com/google/uuid"
)

const defaultSalesPageSize = 20

// installmentService manages installment sales, their payments and the derived ledger.
type installmentService struct {
	BaseService
	saleRepo         portsrepo.InstallmentSaleRepositoryFacade
	paymentRepo      portsrepo.PaymentRepositoryFacade
	overdueThreshold int
}

// InstallmentOption configures the installment service
type InstallmentOption func(*installmentService)

// WithOverdueThreshold sets the number of days without a payment after which a sale is overdue.
func WithOverdueThreshold(days int) InstallmentOption {
	return func(s *installmentService) {
		if days > 0 {
			s.overdueThreshold = days
		}
	}
}

// WithInstallmentClock replaces the service clock.
func WithInstallmentClock(now func() time.Time) InstallmentOption {
	return func(s *installmentService) {
		s.now = now
	}
}

// NewInstallmentService creates a new installment service.
func NewInstallmentService(
	saleRepo portsrepo.InstallmentSaleRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	options ...InstallmentOption,
) portssvc.InstallmentSvcFacade {
	svc := &installmentService{
		saleRepo:         saleRepo,
		paymentRepo:      paymentRepo,
		overdueThreshold: accounting.DefaultOverdueThresholdDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InstallmentSvcFacade = (*installmentService)(nil)

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", apperrors.ErrValidation, field)
	}
	return t, nil
}

func validateSaleTerms(sale domain.InstallmentSale) error {
	if !sale.TotalAmount.IsPositive() {
		return fmt.Errorf("%w: total amount must be positive", apperrors.ErrValidation)
	}
	if sale.DownPayment.IsNegative() {
		return fmt.Errorf("%w: down payment cannot be negative", apperrors.ErrValidation)
	}
	if sale.DownPayment.GreaterThan(sale.TotalAmount) {
		return fmt.Errorf("%w: down payment cannot exceed the total amount", apperrors.ErrValidation)
	}
	if sale.InstallmentCount < 1 {
		return fmt.Errorf("%w: installment count must be at least 1", apperrors.ErrValidation)
	}
	if strings.TrimSpace(sale.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}
	return nil
}

func (s *installmentService) CreateSale(ctx context.Context, req dto.CreateInstallmentSaleRequest, creatorUserID string) (*domain.InstallmentSale, error) {
	currencyCode := domain.NormalizeCurrencyCode(req.CurrencyCode)
	if !domain.IsSupportedCurrency(currencyCode) {
		return nil, fmt.Errorf("%w: currency %q is not supported", apperrors.ErrValidation, req.CurrencyCode)
	}
	saleDate, err := parseDate("saleDate", req.SaleDate)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	sale := domain.InstallmentSale{
		SaleID:           uuid.NewString(),
		VehicleID:        req.VehicleID,
		CustomerName:     req.CustomerName,
		TotalAmount:      req.TotalAmount,
		DownPayment:      req.DownPayment,
		InstallmentCount: req.InstallmentCount,
		CurrencyCode:     currencyCode,
		SaleDate:         saleDate,
		AuditFields:      domain.NewAuditFields(creatorUserID, now),
	}
	if err := validateSaleTerms(sale); err != nil {
		return nil, err
	}
	sale.InstallmentAmount = accounting.InstallmentAmount(sale.TotalAmount, sale.DownPayment, sale.InstallmentCount)

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save installment sale", slog.String("vehicle_id", sale.VehicleID))
		return nil, fmt.Errorf("failed to create installment sale: %w", err)
	}

	s.LogInfo(ctx, "Installment sale created", slog.String("sale_id", sale.SaleID))
	return &sale, nil
}

func (s *installmentService) GetSale(ctx context.Context, saleID string) (*domain.InstallmentSale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get installment sale: %w", err)
	}
	return sale, nil
}

func (s *installmentService) ListSales(ctx context.Context, params dto.ListInstallmentSalesParams) (*dto.ListInstallmentSalesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSalesPageSize
	}

	sales, nextToken, err := s.saleRepo.ListSales(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list installment sales")
		return nil, fmt.Errorf("failed to list installment sales: %w", err)
	}

	return &dto.ListInstallmentSalesResponse{
		Sales:     dto.ToListInstallmentSaleResponse(sales),
		NextToken: nextToken,
	}, nil
}

// UpdateSale applies the non-nil fields of req. The installment amount is always
// recomputed from the resulting terms.
func (s *installmentService) UpdateSale(ctx context.Context, saleID string, req dto.UpdateInstallmentSaleRequest, userID string) (*domain.InstallmentSale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get installment sale: %w", err)
	}

	if req.VehicleID != nil {
		sale.VehicleID = *req.VehicleID
	}
	if req.CustomerName != nil {
		sale.CustomerName = *req.CustomerName
	}
	if req.TotalAmount != nil {
		sale.TotalAmount = *req.TotalAmount
	}
	if req.DownPayment != nil {
		sale.DownPayment = *req.DownPayment
	}
	if req.InstallmentCount != nil {
		sale.InstallmentCount = *req.InstallmentCount
	}
	if req.SaleDate != nil {
		sale.SaleDate, err = parseDate("saleDate", *req.SaleDate)
		if err != nil {
			return nil, err
		}
	}
	if err := validateSaleTerms(*sale); err != nil {
		return nil, err
	}
	if req.InstallmentCount != nil {
		payments, err := s.paymentRepo.ListPaymentsBySale(ctx, saleID)
		if err != nil {
			return nil, fmt.Errorf("failed to list payments: %w", err)
		}
		if highest := highestPaidInstallment(payments); highest > sale.InstallmentCount {
			return nil, fmt.Errorf("%w: installment count %d is below paid installment %d", apperrors.ErrValidation, sale.InstallmentCount, highest)
		}
	}

	sale.InstallmentAmount = accounting.InstallmentAmount(sale.TotalAmount, sale.DownPayment, sale.InstallmentCount)
	sale.Touch(userID, s.Now())

	if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
		s.LogError(ctx, err, "Failed to update installment sale", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to update installment sale: %w", err)
	}
	return sale, nil
}

func highestPaidInstallment(payments []domain.Payment) int {
	highest := 0
	for _, p := range payments {
		if p.PaymentType == domain.PaymentTypeInstallment && p.InstallmentNumber != nil && *p.InstallmentNumber > highest {
			highest = *p.InstallmentNumber
		}
	}
	return highest
}

func (s *installmentService) DeleteSale(ctx context.Context, saleID string) error {
	if err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		return fmt.Errorf("failed to delete installment sale: %w", err)
	}
	s.LogInfo(ctx, "Installment sale deleted", slog.String("sale_id", saleID))
	return nil
}

// checkPaymentAgainstSale enforces the rules that need the sale and its other
// payments: installment number range, one down payment, one payment per number.
func checkPaymentAgainstSale(sale *domain.InstallmentSale, payment domain.Payment, others []domain.Payment) error {
	if err := payment.Validate(); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if payment.CurrencyCode != sale.CurrencyCode {
		return fmt.Errorf("%w: payment currency %s does not match sale currency %s", apperrors.ErrValidation, payment.CurrencyCode, sale.CurrencyCode)
	}
	if payment.InstallmentNumber != nil && *payment.InstallmentNumber > sale.InstallmentCount {
		return fmt.Errorf("%w: installment number %d exceeds installment count %d", apperrors.ErrValidation, *payment.InstallmentNumber, sale.InstallmentCount)
	}

	for _, other := range others {
		if other.PaymentID == payment.PaymentID || other.PaymentType != payment.PaymentType {
			continue
		}
		switch payment.PaymentType {
		case domain.PaymentTypeDownPayment:
			return fmt.Errorf("%w: sale already has a down payment", apperrors.ErrDuplicate)
		case domain.PaymentTypeInstallment:
			if other.InstallmentNumber != nil && *other.InstallmentNumber == *payment.InstallmentNumber {
				return fmt.Errorf("%w: installment %d is already paid", apperrors.ErrDuplicate, *payment.InstallmentNumber)
			}
		}
	}
	return nil
}

func (s *installmentService) RecordPayment(ctx context.Context, saleID string, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get installment sale: %w", err)
	}
	paymentDate, err := parseDate("paymentDate", req.PaymentDate)
	if err != nil {
		return nil, err
	}

	currencyCode := sale.CurrencyCode
	if req.CurrencyCode != "" {
		currencyCode = domain.NormalizeCurrencyCode(req.CurrencyCode)
	}

	now := s.Now()
	payment := domain.Payment{
		PaymentID:         uuid.NewString(),
		InstallmentSaleID: sale.SaleID,
		PaymentType:       req.PaymentType,
		InstallmentNumber: req.InstallmentNumber,
		Amount:            req.Amount,
		CurrencyCode:      currencyCode,
		PaymentDate:       paymentDate,
		Notes:             req.Notes,
		AuditFields:       domain.NewAuditFields(creatorUserID, now),
	}

	existing, err := s.paymentRepo.ListPaymentsBySale(ctx, sale.SaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if err := checkPaymentAgainstSale(sale, payment, existing); err != nil {
		s.LogWarn(ctx, "Payment rejected", slog.String("sale_id", saleID), slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("sale_id", saleID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("payment_type", string(payment.PaymentType)))
	return &payment, nil
}

// findSalePayment loads a payment and checks it belongs to saleID.
func (s *installmentService) findSalePayment(ctx context.Context, saleID, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if payment.InstallmentSaleID != saleID {
		return nil, apperrors.NewNotFoundError("payment " + paymentID + " not found for sale " + saleID)
	}
	return payment, nil
}

func (s *installmentService) UpdatePayment(ctx context.Context, saleID, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get installment sale: %w", err)
	}
	payment, err := s.findSalePayment(ctx, saleID, paymentID)
	if err != nil {
		return nil, err
	}

	if req.PaymentType != nil {
		payment.PaymentType = *req.PaymentType
		if payment.PaymentType == domain.PaymentTypeDownPayment {
			payment.InstallmentNumber = nil
		}
	}
	if req.InstallmentNumber != nil {
		payment.InstallmentNumber = req.InstallmentNumber
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		payment.PaymentDate, err = parseDate("paymentDate", *req.PaymentDate)
		if err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}

	existing, err := s.paymentRepo.ListPaymentsBySale(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if err := checkPaymentAgainstSale(sale, *payment, existing); err != nil {
		return nil, err
	}

	payment.Touch(userID, s.Now())
	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return payment, nil
}

func (s *installmentService) DeletePayment(ctx context.Context, saleID, paymentID string) error {
	if _, err := s.findSalePayment(ctx, saleID, paymentID); err != nil {
		return err
	}
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	s.LogInfo(ctx, "Payment deleted", slog.String("sale_id", saleID), slog.String("payment_id", paymentID))
	return nil
}

func (s *installmentService) ListPayments(ctx context.Context, saleID string) ([]domain.Payment, error) {
	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, fmt.Errorf("failed to get installment sale: %w", err)
	}
	payments, err := s.paymentRepo.ListPaymentsBySale(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// GetSummary derives balances and overdue status from the sale's current payments.
func (s *installmentService) GetSummary(ctx context.Context, saleID string) (*domain.InstallmentSummary, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get installment sale: %w", err)
	}
	payments, err := s.paymentRepo.ListPaymentsBySale(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	summary := accounting.Summarize(*sale, payments, s.Now(), s.overdueThreshold)
	if summary.InstallmentAmountDrift {
		s.LogWarn(ctx, "Stored installment amount differs from derived amount",
			slog.String("sale_id", saleID),
			slog.String("stored", summary.StoredInstallmentAmount.String()),
			slog.String("derived", summary.InstallmentAmount.String()))
	}
	return &summary, nil
}

func (s *installmentService) GetSchedule(ctx context.Context, saleID string) ([]domain.ScheduledInstallment, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get installment sale: %w", err)
	}
	return accounting.BuildSchedule(*sale), nil
}
