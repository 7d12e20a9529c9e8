package accounting

import (
	"time"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultOverdueThresholdDays is the gap after which a sale counts as overdue.
const DefaultOverdueThresholdDays = 30

// InstallmentAmount derives the per-installment amount as
// (total - down) / count rounded to two places. A non-positive count yields zero.
func InstallmentAmount(total, down decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	financed := total.Sub(down)
	return RoundMoney(Divide(Valid(financed), Valid(decimal.NewFromInt(int64(count)))))
}

// PaidInstallmentCount counts installment payments. Down payments are excluded.
func PaidInstallmentCount(payments []domain.Payment) int {
	n := 0
	for _, p := range payments {
		if p.PaymentType == domain.PaymentTypeInstallment {
			n++
		}
	}
	return n
}

// LatestPayment returns the payment of the given type with the latest PaymentDate.
// Payments sharing a date are interchangeable; the first one seen wins.
func LatestPayment(payments []domain.Payment, paymentType domain.PaymentType) (domain.Payment, bool) {
	var latest domain.Payment
	found := false
	for _, p := range payments {
		if p.PaymentType != paymentType {
			continue
		}
		if !found || p.PaymentDate.After(latest.PaymentDate) {
			latest = p
			found = true
		}
	}
	return latest, found
}

// DaysBetween counts whole calendar days from `from` to `to`, comparing UTC dates.
func DaysBetween(from, to time.Time) int {
	f := truncateToDate(from)
	t := truncateToDate(to)
	return int(t.Sub(f).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DetectOverdue applies the overdue policy:
//   - with installment payments, days are counted from the latest one;
//   - otherwise from the down payment;
//   - with neither, the status is unknown (nil).
//
// The sale is overdue once the count reaches thresholdDays. A payment dated
// after now counts as zero days elapsed.
func DetectOverdue(payments []domain.Payment, now time.Time, thresholdDays int) *domain.OverdueStatus {
	anchor, ok := LatestPayment(payments, domain.PaymentTypeInstallment)
	if !ok {
		anchor, ok = LatestPayment(payments, domain.PaymentTypeDownPayment)
		if !ok {
			return nil
		}
	}

	days := DaysBetween(anchor.PaymentDate, now)
	if days < 0 {
		days = 0
	}
	return &domain.OverdueStatus{
		Overdue:     days >= thresholdDays,
		DaysElapsed: days,
		Since:       anchor.PaymentDate,
		BasedOn:     anchor.PaymentType,
	}
}

// TotalPaid sums every payment amount regardless of type.
func TotalPaid(payments []domain.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// RemainingBalance is total minus everything paid. It is signed: overpayment
// produces a negative balance.
func RemainingBalance(total decimal.Decimal, payments []domain.Payment) decimal.Decimal {
	return total.Sub(TotalPaid(payments))
}

// StatusForBalance reports completed once nothing is left to pay.
func StatusForBalance(remaining decimal.Decimal) domain.SaleStatus {
	if remaining.LessThanOrEqual(decimal.Zero) {
		return domain.SaleStatusCompleted
	}
	return domain.SaleStatusActive
}

// DisplayBalance clamps a signed balance at zero for user-facing output.
func DisplayBalance(remaining decimal.Decimal) decimal.Decimal {
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Summarize derives the full ledger view of a sale from its payment history.
func Summarize(sale domain.InstallmentSale, payments []domain.Payment, now time.Time, thresholdDays int) domain.InstallmentSummary {
	derived := InstallmentAmount(sale.TotalAmount, sale.DownPayment, sale.InstallmentCount)
	paid := PaidInstallmentCount(payments)
	remaining := RemainingBalance(sale.TotalAmount, payments)

	remainingInstallments := sale.InstallmentCount - paid
	if remainingInstallments < 0 {
		remainingInstallments = 0
	}
	next := 0
	if paid < sale.InstallmentCount {
		next = paid + 1
	}

	return domain.InstallmentSummary{
		SaleID:                  sale.SaleID,
		CurrencyCode:            sale.CurrencyCode,
		TotalAmount:             sale.TotalAmount,
		DownPayment:             sale.DownPayment,
		InstallmentCount:        sale.InstallmentCount,
		InstallmentAmount:       derived,
		StoredInstallmentAmount: sale.InstallmentAmount,
		InstallmentAmountDrift:  !derived.Equal(sale.InstallmentAmount),
		PaidInstallments:        paid,
		RemainingInstallments:   remainingInstallments,
		NextInstallmentNumber:   next,
		TotalPaid:               TotalPaid(payments),
		RemainingBalance:        remaining,
		DisplayRemainingBalance: DisplayBalance(remaining),
		Status:                  StatusForBalance(remaining),
		Overdue:                 DetectOverdue(payments, now, thresholdDays),
	}
}

// BuildSchedule lays out monthly installments starting one month after the sale
// date. The last installment absorbs the rounding remainder so the schedule sums to
// exactly total - down.
func BuildSchedule(sale domain.InstallmentSale) []domain.ScheduledInstallment {
	if sale.InstallmentCount <= 0 {
		return nil
	}
	amount := InstallmentAmount(sale.TotalAmount, sale.DownPayment, sale.InstallmentCount)
	financed := sale.TotalAmount.Sub(sale.DownPayment)

	schedule := make([]domain.ScheduledInstallment, 0, sale.InstallmentCount)
	allocated := decimal.Zero
	for i := 1; i <= sale.InstallmentCount; i++ {
		due := amount
		if i == sale.InstallmentCount {
			due = financed.Sub(allocated)
		}
		allocated = allocated.Add(due)
		schedule = append(schedule, domain.ScheduledInstallment{
			Number:  i,
			DueDate: sale.SaleDate.AddDate(0, i, 0),
			Amount:  due,
		})
	}
	return schedule
}
