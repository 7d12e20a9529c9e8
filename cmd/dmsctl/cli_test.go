package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDutyCmd(t *testing.T) {
	tests := []struct {
		label string
		want  []string
	}{
		{label: "1798 CC", want: []string{"displacement: 1798 cc", "duty rate: 3%"}},
		{label: "2494cc", want: []string{"displacement: 2494 cc", "duty rate: 6%"}},
		{label: "3345 CC", want: []string{"displacement: 3345 cc", "duty rate: 8%"}},
		{label: "2.8L diesel", want: []string{"displacement: unknown", "duty rate: 3%"}},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			out, err := run(t, "duty", "--label", tt.label)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestDutyCmd_RequiresLabel(t *testing.T) {
	_, err := run(t, "duty")
	assert.Error(t, err)
}

func TestPlanCmd(t *testing.T) {
	out, err := run(t, "plan", "--total", "12000", "--down", "2000", "--count", "3",
		"--currency", "USD", "--start", "2024-01-15")
	require.NoError(t, err)

	assert.Contains(t, out, "installment amount: $3,333.33")
	assert.Contains(t, out, "2024-02-15")
	assert.Contains(t, out, "2024-04-15")
	// the last row absorbs the rounding remainder
	assert.Contains(t, out, "$3,333.34")
}

func TestPlanCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero count", args: []string{"--total", "1000", "--count", "0"}},
		{name: "down above total", args: []string{"--total", "1000", "--down", "2000", "--count", "2"}},
		{name: "bad total", args: []string{"--total", "lots", "--count", "2"}},
		{name: "bad currency", args: []string{"--total", "1000", "--count", "2", "--currency", "XYZ"}},
		{name: "bad start", args: []string{"--total", "1000", "--count", "2", "--start", "15/01/2024"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"plan"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestFormatCmd(t *testing.T) {
	out, err := run(t, "format", "--amount", "1234.5", "--currency", "TL")
	require.NoError(t, err)
	assert.Equal(t, "₺1.234,50\n", out)

	out, err = run(t, "format", "--amount", "abc", "--currency", "USD")
	require.NoError(t, err)
	assert.Equal(t, "-\n", out)
}

func TestRegulatoryCmd(t *testing.T) {
	out, err := run(t, "regulatory")
	require.NoError(t, err)
	assert.Equal(t, "honda\nmazda\nnissan\nsubaru\ntoyota\n", out)

	out, err = run(t, "regulatory", "Toyota")
	require.NoError(t, err)
	assert.Contains(t, out, "corolla\n")
	assert.Contains(t, out, "land_cruiser\n")

	out, err = run(t, "regulatory", "toyota", "land_cruiser")
	require.NoError(t, err)
	assert.Contains(t, out, "gx\tunknown\t3%")
	assert.Contains(t, out, "zx\t3345 cc\t8%")
}

func TestRegulatoryCmd_UnknownMaker(t *testing.T) {
	_, err := run(t, "regulatory", "lada")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestRegulatoryCmd_CustomTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	raw := `{"Lada": {"Niva": {"Base": {"engineDisplacement": "1690 CC", "values": {"EUR": 9000}}}}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	out, err := run(t, "regulatory", "--table", path, "lada", "niva")
	require.NoError(t, err)
	assert.Equal(t, "base\t1690 cc\t3%\n", out)
}
