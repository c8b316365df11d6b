package history

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"go-calc/internal/calculator"
	"go-calc/internal/command"
)

func newCommand(t *testing.T) (*Command, *calculator.Calculator) {
	t.Helper()
	calc := calculator.New(calculator.NewHistory(), nil)
	cmd, err := Plugin.New(command.Env{Calculator: calc})
	if err != nil {
		t.Fatalf("building history command: %v", err)
	}
	return cmd.(*Command), calc
}

func TestHistoryEmpty(t *testing.T) {
	cmd, _ := newCommand(t)

	res, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Text != "History is empty." {
		t.Fatalf("expected empty history text, got %q", res.Text)
	}
}

func TestHistoryListsAndFilters(t *testing.T) {
	ctx := context.Background()
	cmd, calc := newCommand(t)
	_, _ = calc.Add(ctx, decimal.NewFromInt(2), decimal.NewFromInt(3))
	_, _ = calc.Multiply(ctx, decimal.NewFromInt(4), decimal.NewFromInt(5))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all",
			want: "History:\n - Calculation(2, 3, add)\n - Calculation(4, 5, multiply)\nLatest: Calculation(4, 5, multiply)",
		},
		{
			name: "filtered",
			args: []string{"add"},
			want: "History:\n - Calculation(2, 3, add)\nLatest: Calculation(4, 5, multiply)",
		},
		{
			name: "no match",
			args: []string{"divide"},
			want: "History is empty.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := cmd.ExecuteText(ctx, tc.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if res.Text != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, res.Text)
			}
		})
	}
}

func TestHistoryTooManyArgs(t *testing.T) {
	cmd, _ := newCommand(t)

	_, err := cmd.ExecuteText(context.Background(), "add", "subtract")

	var countErr *command.OperandCountError
	if !errors.As(err, &countErr) {
		t.Fatalf("expected *command.OperandCountError, got %v", err)
	}
}
