package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Calculation pairs two operands with an operation. It is not validated on
// construction; a zero divisor is only reported by Operate.
type Calculation struct {
	A         decimal.Decimal
	B         decimal.Decimal
	Operation Operation
}

// NewCalculation builds a calculation record.
func NewCalculation(a, b decimal.Decimal, op Operation) Calculation {
	return Calculation{A: a, B: b, Operation: op}
}

// Operate evaluates the operation on the operands. The result is computed on
// every call.
func (c Calculation) Operate() (decimal.Decimal, error) {
	if c.Operation.Apply == nil {
		return decimal.Decimal{}, fmt.Errorf("calculation %s: operation has no implementation", c)
	}
	return c.Operation.Apply(c.A, c.B)
}

// Equal reports whether both calculations hold equal operands and the same
// operation name.
func (c Calculation) Equal(other Calculation) bool {
	return c.A.Equal(other.A) && c.B.Equal(other.B) && c.Operation.Name == other.Operation.Name
}

// String renders the calculation as Calculation(<a>, <b>, <operation>).
func (c Calculation) String() string {
	return fmt.Sprintf("Calculation(%s, %s, %s)", Format(c.A), Format(c.B), c.Operation.Name)
}
