package application

import (
	"errors"
	"testing"

	"todolist-api/internal/domain"
)

func TestMathService(t *testing.T) {
	svc := NewMathService()

	if got := svc.Sum(1.5, 2.5); got != 4 {
		t.Errorf("Sum: expected 4, got %v", got)
	}
	if got := svc.Subtract(100, 100); got != 0 {
		t.Errorf("Subtract: expected 0, got %v", got)
	}
	if got := svc.Multiply(-2, 5); got != -10 {
		t.Errorf("Multiply: expected -10, got %v", got)
	}
	if got, err := svc.Divide(9, 3); err != nil || got != 3 {
		t.Errorf("Divide: expected 3, got %v, %v", got, err)
	}
	if _, err := svc.Divide(10, 0); !errors.Is(err, domain.ErrDivisionByZero) {
		t.Errorf("Divide: expected ErrDivisionByZero, got %v", err)
	}
}
