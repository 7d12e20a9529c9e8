package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/dealership_finance_app/internal/models"
	"github.com/SscSPs/dealership_finance_app/internal/utils/mapping"
	"github.com/SscSPs/dealership_finance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const saleColumns = `
	sale_id, vehicle_id, customer_name, total_amount, down_payment,
	installment_count, installment_amount, currency_code, sale_date,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxInstallmentSaleRepository implements portsrepo.InstallmentSaleRepositoryFacade.
type PgxInstallmentSaleRepository struct {
	BaseRepository
}

func newPgxInstallmentSaleRepository(db *pgxpool.Pool) *PgxInstallmentSaleRepository {
	return &PgxInstallmentSaleRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.InstallmentSaleRepositoryFacade = (*PgxInstallmentSaleRepository)(nil)

func scanSale(row pgx.Row) (models.InstallmentSale, error) {
	var m models.InstallmentSale
	err := row.Scan(
		&m.SaleID, &m.VehicleID, &m.CustomerName, &m.TotalAmount, &m.DownPayment,
		&m.InstallmentCount, &m.InstallmentAmount, &m.CurrencyCode, &m.SaleDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveSale inserts a new sale.
func (r *PgxInstallmentSaleRepository) SaveSale(ctx context.Context, sale domain.InstallmentSale) error {
	m := mapping.ToModelInstallmentSale(sale)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO installment_sales (`+saleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.SaleID, m.VehicleID, m.CustomerName, m.TotalAmount, m.DownPayment,
		m.InstallmentCount, m.InstallmentAmount, m.CurrencyCode, m.SaleDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "sale "+sale.SaleID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save installment sale", err)
	}
	return nil
}

// FindSaleByID retrieves a sale by its ID.
func (r *PgxInstallmentSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.InstallmentSale, error) {
	m, err := scanSale(r.Pool.QueryRow(ctx, `SELECT `+saleColumns+` FROM installment_sales WHERE sale_id = $1;`, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("installment sale with ID " + saleID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find installment sale", err)
	}
	sale := mapping.ToDomainInstallmentSale(m)
	return &sale, nil
}

// ListSales returns sales ordered by sale_date DESC, sale_id DESC using a keyset cursor.
func (r *PgxInstallmentSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.InstallmentSale, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + saleColumns + ` FROM installment_sales`
	orderByClause := `ORDER BY sale_date DESC, sale_id DESC`

	var args []any
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", apperrors.ErrValidation)
		}
		query += ` WHERE (sale_date, sale_id) < ($1, $2)`
		args = append(args, lastDate, lastID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query installment sales", err)
	}
	defer rows.Close()

	modelSales := make([]models.InstallmentSale, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanSale(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan installment sale row", scanErr)
		}
		modelSales = append(modelSales, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating installment sale rows", err)
	}

	var nextTokenVal *string
	results := modelSales
	if len(modelSales) > limit {
		last := modelSales[limit-1]
		token := pagination.EncodeToken(last.SaleDate, last.SaleID)
		nextTokenVal = &token
		results = modelSales[:limit]
	}

	return mapping.ToDomainInstallmentSaleSlice(results), nextTokenVal, nil
}

// UpdateSale overwrites the mutable columns of a sale.
func (r *PgxInstallmentSaleRepository) UpdateSale(ctx context.Context, sale domain.InstallmentSale) error {
	m := mapping.ToModelInstallmentSale(sale)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE installment_sales
		SET vehicle_id = $1, customer_name = $2, total_amount = $3, down_payment = $4,
			installment_count = $5, installment_amount = $6, currency_code = $7, sale_date = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE sale_id = $11`,
		m.VehicleID, m.CustomerName, m.TotalAmount, m.DownPayment,
		m.InstallmentCount, m.InstallmentAmount, m.CurrencyCode, m.SaleDate,
		m.LastUpdatedAt, m.LastUpdatedBy, m.SaleID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update installment sale", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("installment sale with ID " + sale.SaleID + " not found")
	}
	return nil
}

// DeleteSale removes the sale and its payments in one transaction.
func (r *PgxInstallmentSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE installment_sale_id = $1`, saleID); err != nil {
		return apperrors.NewAppError(500, "failed to delete payments of sale "+saleID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM installment_sales WHERE sale_id = $1`, saleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete installment sale", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("installment sale with ID " + saleID + " not found")
	}
	return r.Commit(ctx, tx)
}
