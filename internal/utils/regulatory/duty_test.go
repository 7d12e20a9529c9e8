package regulatory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCCFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{label: "1498 CC", want: 1498},
		{label: "1498CC", want: 1498},
		{label: "2494 cc", want: 2494},
		{label: "  3456   Cc ", want: 3456},
		{label: "bogus", want: 0},
		{label: "", want: 0},
		{label: "CC 1498", want: 0},
		{label: "1.5 L", want: 0},
		{label: "99999999999999999999 CC", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, CCFromLabel(tt.label))
		})
	}
}

func TestDutyRateForCC(t *testing.T) {
	tests := []struct {
		cc   int
		want string
	}{
		{cc: 0, want: "0.03"},
		{cc: 1999, want: "0.03"},
		{cc: 2000, want: "0.06"},
		{cc: 2500, want: "0.06"},
		{cc: 3000, want: "0.06"},
		{cc: 3001, want: "0.08"},
		{cc: 6000, want: "0.08"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DutyRateForCC(tt.cc).String(), "cc=%d", tt.cc)
	}
}
