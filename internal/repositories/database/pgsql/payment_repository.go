package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/dealership_finance_app/internal/models"
	"github.com/SscSPs/dealership_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `
	payment_id, installment_sale_id, payment_type, installment_number, amount,
	currency_code, payment_date, notes,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade.
type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID, &m.InstallmentSaleID, &m.PaymentType, &m.InstallmentNumber, &m.Amount,
		&m.CurrencyCode, &m.PaymentDate, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// duplicatePaymentError maps the partial unique indexes on payments to ErrDuplicate.
func duplicatePaymentError(err error) error {
	if isUniqueViolation(err) {
		return apperrors.NewAppError(409, "payment already recorded for this sale", apperrors.ErrDuplicate)
	}
	return nil
}

// SavePayment inserts a payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.PaymentID, m.InstallmentSaleID, m.PaymentType, m.InstallmentNumber, m.Amount,
		m.CurrencyCode, m.PaymentDate, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if dupErr := duplicatePaymentError(err); dupErr != nil {
			return dupErr
		}
		return apperrors.NewAppError(500, "failed to save payment", err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	m, err := scanPayment(r.Pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1;`, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payment with ID " + paymentID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find payment", err)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// ListPaymentsBySale returns a sale's payments in payment date order.
func (r *PgxPaymentRepository) ListPaymentsBySale(ctx context.Context, saleID string) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE installment_sale_id = $1
		ORDER BY payment_date ASC, created_at ASC;`, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for sale "+saleID, err)
	}
	defer rows.Close()

	var modelPayments []models.Payment
	for rows.Next() {
		m, scanErr := scanPayment(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", scanErr)
		}
		modelPayments = append(modelPayments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

// UpdatePayment overwrites the mutable columns of a payment.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE payments
		SET payment_type = $1, installment_number = $2, amount = $3, currency_code = $4,
			payment_date = $5, notes = $6, last_updated_at = $7, last_updated_by = $8
		WHERE payment_id = $9`,
		m.PaymentType, m.InstallmentNumber, m.Amount, m.CurrencyCode,
		m.PaymentDate, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy, m.PaymentID,
	)
	if err != nil {
		if dupErr := duplicatePaymentError(err); dupErr != nil {
			return dupErr
		}
		return apperrors.NewAppError(500, "failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment with ID " + payment.PaymentID + " not found")
	}
	return nil
}

// DeletePayment removes a payment.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1`, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment with ID " + paymentID + " not found")
	}
	return nil
}
