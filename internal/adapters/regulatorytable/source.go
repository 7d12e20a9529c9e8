// Package regulatorytable loads the Japan import duty table from JSON.
package regulatorytable

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

//go:embed data/japan_import_rates.json
var embeddedTable []byte

// rawEntry is one grade in the file: maker -> model -> grade -> rawEntry.
type rawEntry struct {
	EngineDisplacement string                      `json:"engineDisplacement"`
	Values             map[string]*decimal.Decimal `json:"values"`
}

// Source reads the table from a file, or from the bundled dataset when no path is set.
type Source struct {
	path string
}

// NewSource creates a Source. An empty path selects the embedded dataset.
func NewSource(path string) *Source {
	return &Source{path: path}
}

var _ portsrepo.RegulatoryTableSource = (*Source)(nil)

// LoadRegulatoryTable reads and parses the table. It does not cache.
func (s *Source) LoadRegulatoryTable(ctx context.Context) (domain.RegulatoryTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := embeddedTable
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read regulatory table %s: %w", s.path, err)
		}
		raw = b
	}
	return Parse(raw)
}

// Parse decodes a maker -> model -> grade document. Keys are lower-cased and trimmed,
// currency codes are normalized.
func Parse(raw []byte) (domain.RegulatoryTable, error) {
	var doc map[string]map[string]map[string]rawEntry
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse regulatory table: %w", err)
	}

	table := make(domain.RegulatoryTable, len(doc))
	for maker, models := range doc {
		makerKey := normalize(maker)
		if makerKey == "" {
			return nil, fmt.Errorf("regulatory table has an empty maker key")
		}
		if _, ok := table[makerKey]; !ok {
			table[makerKey] = make(map[string]map[string]domain.RegulatoryRateEntry, len(models))
		}
		for model, grades := range models {
			modelKey := normalize(model)
			if _, ok := table[makerKey][modelKey]; !ok {
				table[makerKey][modelKey] = make(map[string]domain.RegulatoryRateEntry, len(grades))
			}
			for grade, entry := range grades {
				gradeKey := normalize(grade)
				values := make(map[string]*decimal.Decimal, len(entry.Values))
				for code, v := range entry.Values {
					values[domain.NormalizeCurrencyCode(code)] = v
				}
				table[makerKey][modelKey][gradeKey] = domain.RegulatoryRateEntry{
					MakerKey:                makerKey,
					ModelKey:                modelKey,
					GradeKey:                gradeKey,
					EngineDisplacementLabel: entry.EngineDisplacement,
					Values:                  values,
				}
			}
		}
	}
	return table, nil
}

func normalize(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
