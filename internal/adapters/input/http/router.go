package http

import (
	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes func - Mounts every endpoint on router
func (hdl *HTTPHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/swagger/*", swagger.HandlerDefault) // default
	router.Get("/health", hdl.HealthCheck)

	todos := router.Group("/todos")
	{
		todos.Get("/", hdl.GetTodos)
		todos.Post("/", hdl.CreateTodo)
		todos.Get("/:id", hdl.GetTodo)
		todos.Put("/:id", hdl.UpdateTodo)
		todos.Delete("/:id", hdl.DeleteTodo)
	}

	math := router.Group("/math")
	{
		math.Get("/sum/:a/:b", hdl.Sum)
		math.Get("/sub/:a/:b", hdl.Subtract)
		math.Get("/mult/:a/:b", hdl.Multiply)
		math.Get("/div/:a/:b", hdl.Divide)
	}

	sensors := router.Group("/sensors")
	{
		sensors.Get("/climate", hdl.GetClimate)
	}
}
