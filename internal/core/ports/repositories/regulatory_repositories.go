package repositories

import (
	"context"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
)

// RegulatoryTableSource reads the immutable regulatory rate table from its backing
// store. Callers cache the result; sources re-read on every call.
type RegulatoryTableSource interface {
	LoadRegulatoryTable(ctx context.Context) (domain.RegulatoryTable, error)
}
