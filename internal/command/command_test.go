package command

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestResultKind(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		text bool
	}{
		{name: "value", res: ValueResult(decimal.NewFromInt(3)), text: false},
		{name: "zero value", res: ValueResult(decimal.Zero), text: false},
		{name: "text", res: TextResult("History is empty."), text: true},
		{name: "empty text", res: TextResult(""), text: true},
		{name: "zero result", res: Result{}, text: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.res.IsText(); got != tc.text {
				t.Fatalf("expected IsText %t, got %t", tc.text, got)
			}
		})
	}
}
