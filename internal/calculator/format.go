package calculator

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Format renders v with its own scale, so 3.0 + 2.0 prints as 5.0 rather
// than 5. Values with a positive exponent print as plain integers.
func Format(v decimal.Decimal) string {
	places := -v.Exponent()
	if places < 0 {
		places = 0
	}
	return v.StringFixed(places)
}

// reduce strips trailing zeros from the coefficient of v while the exponent
// stays at or below floor. A zero value takes the floor exponent.
func reduce(v decimal.Decimal, floor int32) decimal.Decimal {
	coef := v.Coefficient()
	exp := v.Exponent()
	if coef.Sign() == 0 {
		return decimal.New(0, floor)
	}
	ten := big.NewInt(10)
	q, r := new(big.Int), new(big.Int)
	for exp < floor {
		q.QuoRem(coef, ten, r)
		if r.Sign() != 0 {
			break
		}
		coef.Set(q)
		exp++
	}
	return decimal.NewFromBigInt(coef, exp)
}
