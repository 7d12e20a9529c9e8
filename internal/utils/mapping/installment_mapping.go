package mapping

import (
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/SscSPs/dealership_finance_app/internal/models"
)

// ToModelInstallmentSale converts a domain InstallmentSale to a model InstallmentSale
func ToModelInstallmentSale(d domain.InstallmentSale) models.InstallmentSale {
	return models.InstallmentSale{
		SaleID:            d.SaleID,
		VehicleID:         d.VehicleID,
		CustomerName:      d.CustomerName,
		TotalAmount:       d.TotalAmount,
		DownPayment:       d.DownPayment,
		InstallmentCount:  d.InstallmentCount,
		InstallmentAmount: d.InstallmentAmount,
		CurrencyCode:      d.CurrencyCode,
		SaleDate:          d.SaleDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInstallmentSale converts a model InstallmentSale to a domain InstallmentSale
func ToDomainInstallmentSale(m models.InstallmentSale) domain.InstallmentSale {
	return domain.InstallmentSale{
		SaleID:            m.SaleID,
		VehicleID:         m.VehicleID,
		CustomerName:      m.CustomerName,
		TotalAmount:       m.TotalAmount,
		DownPayment:       m.DownPayment,
		InstallmentCount:  m.InstallmentCount,
		InstallmentAmount: m.InstallmentAmount,
		CurrencyCode:      m.CurrencyCode,
		SaleDate:          m.SaleDate,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInstallmentSaleSlice converts a slice of model sales to domain sales
func ToDomainInstallmentSaleSlice(ms []models.InstallmentSale) []domain.InstallmentSale {
	sales := make([]domain.InstallmentSale, len(ms))
	for i, m := range ms {
		sales[i] = ToDomainInstallmentSale(m)
	}
	return sales
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:         d.PaymentID,
		InstallmentSaleID: d.InstallmentSaleID,
		PaymentType:       string(d.PaymentType),
		InstallmentNumber: d.InstallmentNumber,
		Amount:            d.Amount,
		CurrencyCode:      d.CurrencyCode,
		PaymentDate:       d.PaymentDate,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:         m.PaymentID,
		InstallmentSaleID: m.InstallmentSaleID,
		PaymentType:       domain.PaymentType(m.PaymentType),
		InstallmentNumber: m.InstallmentNumber,
		Amount:            m.Amount,
		CurrencyCode:      m.CurrencyCode,
		PaymentDate:       m.PaymentDate,
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model payments to domain payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	payments := make([]domain.Payment, len(ms))
	for i, m := range ms {
		payments[i] = ToDomainPayment(m)
	}
	return payments
}
