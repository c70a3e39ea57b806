package http

import (
	"todolist-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// GetClimate godoc
// @Summary Latest climate reading
// @Description Temperature and humidity from the sensor device, "--" when unavailable
// @Tags SENSOR
// @Produce json
// @Success 200 {object} ResponseBody{data=ClimateResponse}
// @Router /sensors/climate [get]
func (hdl *HTTPHandler) GetClimate(c *fiber.Ctx) error {
	var (
		reading domain.ClimateReading
		ok      bool
	)
	if hdl.sensor != nil {
		reading, ok = hdl.sensor.Latest()
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toClimateResponse(reading, ok)})
}
