package calculator

import "github.com/shopspring/decimal"

// Operation is a named binary function over exact decimals. Two operations
// are the same operation when their names match.
type Operation struct {
	Name  string
	Apply func(a, b decimal.Decimal) (decimal.Decimal, error)
}

// The four arithmetic operations.
var (
	Add      = Operation{Name: "add", Apply: add}
	Subtract = Operation{Name: "subtract", Apply: subtract}
	Multiply = Operation{Name: "multiply", Apply: multiply}
	Divide   = Operation{Name: "divide", Apply: divide}
)

// Operations lists the arithmetic operations in their canonical order.
func Operations() []Operation {
	return []Operation{Add, Subtract, Multiply, Divide}
}

// OperationByName returns the arithmetic operation with the given name.
func OperationByName(name string) (Operation, bool) {
	for _, op := range Operations() {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

func add(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Add(b), nil
}

func subtract(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Sub(b), nil
}

func multiply(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Mul(b), nil
}

// divide is undefined for a zero divisor. Exact quotients keep the scale
// the operands imply, so 9 / 3 is 3 and 7.50 / 2.5 is 3.0; inexact ones
// carry decimal.DivisionPrecision places.
func divide(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	return reduce(a.Div(b), a.Exponent()-b.Exponent()), nil
}
