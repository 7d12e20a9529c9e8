package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayment_Validate(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		payment domain.Payment
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid down payment",
			payment: domain.Payment{
				PaymentType: domain.PaymentTypeDownPayment,
				Amount:      decimal.NewFromInt(2000),
				PaymentDate: date,
			},
		},
		{
			name: "valid installment",
			payment: domain.Payment{
				PaymentType:       domain.PaymentTypeInstallment,
				InstallmentNumber: intPtr(3),
				Amount:            decimal.NewFromInt(1000),
				PaymentDate:       date,
			},
		},
		{
			name: "installment without number",
			payment: domain.Payment{
				PaymentType: domain.PaymentTypeInstallment,
				Amount:      decimal.NewFromInt(1000),
				PaymentDate: date,
			},
			wantErr: true,
			errMsg:  "installment number is required",
		},
		{
			name: "down payment with number",
			payment: domain.Payment{
				PaymentType:       domain.PaymentTypeDownPayment,
				InstallmentNumber: intPtr(1),
				Amount:            decimal.NewFromInt(1000),
				PaymentDate:       date,
			},
			wantErr: true,
			errMsg:  "must be empty for down payments",
		},
		{
			name: "zero amount",
			payment: domain.Payment{
				PaymentType: domain.PaymentTypeDownPayment,
				Amount:      decimal.Zero,
				PaymentDate: date,
			},
			wantErr: true,
			errMsg:  "must be positive",
		},
		{
			name: "unknown type",
			payment: domain.Payment{
				PaymentType: "refund",
				Amount:      decimal.NewFromInt(1),
				PaymentDate: date,
			},
			wantErr: true,
			errMsg:  "unknown payment type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func intPtr(i int) *int {
	return &i
}

func TestAuditFields_Touch(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	a := domain.NewAuditFields("u1", created)
	assert.Equal(t, created, a.LastUpdatedAt)
	assert.Equal(t, "u1", a.LastUpdatedBy)

	later := created.Add(time.Hour)
	a.Touch("u2", later)
	assert.Equal(t, created, a.CreatedAt)
	assert.Equal(t, "u1", a.CreatedBy)
	assert.Equal(t, later, a.LastUpdatedAt)
	assert.Equal(t, "u2", a.LastUpdatedBy)
}
