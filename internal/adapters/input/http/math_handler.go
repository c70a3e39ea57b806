package http

import (
	"errors"
	"math"
	"strconv"

	"todolist-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// MsgNotFinite is returned when an operand or result is Inf or NaN
const MsgNotFinite = "operands and result must be finite numbers"

var errNotFinite = errors.New(MsgNotFinite)

// Sum godoc
// @Summary Sum
// @Tags MATH
// @Produce json
// @Param a path number true "first operand"
// @Param b path number true "second operand"
// @Success 200 {object} ResponseBody{data=number}
// @Failure 400 {object} ResponseBody
// @Router /math/sum/{a}/{b} [get]
func (hdl *HTTPHandler) Sum(c *fiber.Ctx) error {
	return hdl.binary(c, hdl.math.Sum)
}

// Subtract godoc
// @Summary Subtract
// @Tags MATH
// @Produce json
// @Param a path number true "minuend"
// @Param b path number true "subtrahend"
// @Success 200 {object} ResponseBody{data=number}
// @Failure 400 {object} ResponseBody
// @Router /math/sub/{a}/{b} [get]
func (hdl *HTTPHandler) Subtract(c *fiber.Ctx) error {
	return hdl.binary(c, hdl.math.Subtract)
}

// Multiply godoc
// @Summary Multiply
// @Tags MATH
// @Produce json
// @Param a path number true "first factor"
// @Param b path number true "second factor"
// @Success 200 {object} ResponseBody{data=number}
// @Failure 400 {object} ResponseBody
// @Router /math/mult/{a}/{b} [get]
func (hdl *HTTPHandler) Multiply(c *fiber.Ctx) error {
	return hdl.binary(c, hdl.math.Multiply)
}

// Divide godoc
// @Summary Divide
// @Description Fails with 400 when the divisor is zero
// @Tags MATH
// @Produce json
// @Param a path number true "dividend"
// @Param b path number true "divisor"
// @Success 200 {object} ResponseBody{data=number}
// @Failure 400 {object} ResponseBody
// @Router /math/div/{a}/{b} [get]
func (hdl *HTTPHandler) Divide(c *fiber.Ctx) error {
	a, b, err := parseOperands(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	result, err := hdl.math.Divide(a, b)
	if errors.Is(err, domain.ErrDivisionByZero) {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: withMessage(BadRequest, err.Error())})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return writeResult(c, result)
}

func (hdl *HTTPHandler) binary(c *fiber.Ctx, op func(a, b float64) float64) error {
	a, b, err := parseOperands(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	return writeResult(c, op(a, b))
}

// writeResult answers 400 for a result JSON cannot carry (overflow to ±Inf)
func writeResult(c *fiber.Ctx, result float64) error {
	if !isFinite(result) {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: withMessage(BadRequest, MsgNotFinite)})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: result})
}

// parseOperands reads :a and :b, rejecting Inf and NaN
func parseOperands(c *fiber.Ctx) (float64, float64, error) {
	a, err := strconv.ParseFloat(c.Params("a"), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(c.Params("b"), 64)
	if err != nil {
		return 0, 0, err
	}
	if !isFinite(a) || !isFinite(b) {
		return 0, 0, errNotFinite
	}
	return a, b, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
