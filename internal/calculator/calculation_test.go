package calculator

import (
	"errors"
	"testing"
)

func TestCalculationOperate(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		op   Operation
		want string
	}{
		{name: "add", a: "8", b: "4", op: Add, want: "12"},
		{name: "subtract", a: "3", b: "3", op: Subtract, want: "0"},
		{name: "divide", a: "12", b: "3", op: Divide, want: "4"},
		{name: "multiply", a: "2", b: "3", op: Multiply, want: "6"},
		{name: "add decimals", a: "3.0", b: "2.0", op: Add, want: "5.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calc := NewCalculation(d(tc.a), d(tc.b), tc.op)

			got, err := calc.Operate()
			if err != nil {
				t.Fatalf("operate: %v", err)
			}
			if !got.Equal(d(tc.want)) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}

			again, _ := calc.Operate()
			if !again.Equal(got) {
				t.Fatalf("expected repeated operate to return %s, got %s", got, again)
			}
		})
	}
}

func TestCalculationString(t *testing.T) {
	tests := []struct {
		a, b string
		op   Operation
		want string
	}{
		{a: "2", b: "2", op: Add, want: "Calculation(2, 2, add)"},
		{a: "3.0", b: "2.0", op: Add, want: "Calculation(3.0, 2.0, add)"},
		{a: "-1.50", b: "0.25", op: Divide, want: "Calculation(-1.50, 0.25, divide)"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			calc := NewCalculation(d(tc.a), d(tc.b), tc.op)
			if got := calc.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCalculationDivideByZero(t *testing.T) {
	calc := NewCalculation(d("5"), d("0"), Divide)

	got, err := calc.Operate()
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v (result %s)", err, got)
	}
	if err.Error() != "Cannot divide by zero" {
		t.Fatalf("expected message %q, got %q", "Cannot divide by zero", err.Error())
	}
}

func TestCalculationWithoutImplementation(t *testing.T) {
	calc := NewCalculation(d("1"), d("2"), Operation{Name: "noop"})

	if _, err := calc.Operate(); err == nil {
		t.Fatal("expected error for operation without implementation")
	}
}

func TestCalculationEqual(t *testing.T) {
	a := NewCalculation(d("3.0"), d("2"), Add)
	b := NewCalculation(d("3"), d("2.00"), Add)
	c := NewCalculation(d("3"), d("2"), Subtract)

	if !a.Equal(b) {
		t.Fatalf("expected %s to equal %s", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("did not expect %s to equal %s", a, c)
	}
}
