package application

import (
	"todolist-api/internal/domain"
	"todolist-api/internal/ports/input"
)

var _ input.MathService = MathService{}

// MathService struct - Stateless arithmetic use cases
type MathService struct{}

// NewMathService func
func NewMathService() MathService {
	return MathService{}
}

// Sum func
func (MathService) Sum(a, b float64) float64 { return domain.Sum(a, b) }

// Subtract func
func (MathService) Subtract(a, b float64) float64 { return domain.Subtract(a, b) }

// Multiply func
func (MathService) Multiply(a, b float64) float64 { return domain.Multiply(a, b) }

// Divide func
func (MathService) Divide(a, b float64) (float64, error) { return domain.Divide(a, b) }
