package domain

// Sum func
func Sum(a, b float64) float64 {
	return a + b
}

// Subtract func
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply func
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide func - Fails with ErrDivisionByZero when b is zero
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
