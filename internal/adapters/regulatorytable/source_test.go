package regulatorytable_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/dealership_finance_app/internal/adapters/regulatorytable"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Embedded(t *testing.T) {
	table, err := regulatorytable.NewSource("").LoadRegulatoryTable(context.Background())
	require.NoError(t, err)

	require.Contains(t, table, "toyota")
	entry, ok := table["toyota"]["corolla"]["hybrid_g"]
	require.True(t, ok)
	assert.Equal(t, "1798 CC", entry.EngineDisplacementLabel)
	assert.Equal(t, "toyota", entry.MakerKey)
	require.NotNil(t, entry.Values["USD"])
	assert.True(t, decimal.NewFromInt(17800).Equal(*entry.Values["USD"]))

	v, present := entry.Values["TRY"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	doc := `{" Toyota ": {"Corolla": {"GR": {"engineDisplacement": "1618cc", "values": {"usd": "36000.50", "tl": null}}}}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	table, err := regulatorytable.NewSource(path).LoadRegulatoryTable(context.Background())
	require.NoError(t, err)

	entry := table["toyota"]["corolla"]["gr"]
	assert.Equal(t, "gr", entry.GradeKey)
	require.NotNil(t, entry.Values["USD"])
	assert.True(t, decimal.RequireFromString("36000.50").Equal(*entry.Values["USD"]))
	_, hasTRY := entry.Values["TRY"]
	assert.True(t, hasTRY)
}

func TestSource_Errors(t *testing.T) {
	_, err := regulatorytable.NewSource(filepath.Join(t.TempDir(), "missing.json")).LoadRegulatoryTable(context.Background())
	assert.Error(t, err)

	_, err = regulatorytable.Parse([]byte(`[1,2,3]`))
	assert.Error(t, err)

	_, err = regulatorytable.Parse([]byte(`{"  ": {}}`))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = regulatorytable.NewSource("").LoadRegulatoryTable(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
