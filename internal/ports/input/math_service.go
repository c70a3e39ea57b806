package input

// MathService interface - Input port (use case)
// Stateless arithmetic over float64 operands
type MathService interface {
	Sum(a, b float64) float64
	Subtract(a, b float64) float64
	Multiply(a, b float64) float64
	Divide(a, b float64) (float64, error)
}
