package http

import (
	"errors"

	"todolist-api/internal/domain"
	"todolist-api/internal/ports/input"
	"todolist-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv         input.TodoService
	math        input.MathService
	sensor      input.SensorService
	storeDriver string
	validator   validator.Validator
}

// New func - Creates new HTTP handler. sensor may be nil when polling is disabled.
func New(srv input.TodoService, math input.MathService, sensor input.SensorService, storeDriver string) *HTTPHandler {
	return &HTTPHandler{
		srv:         srv,
		math:        math,
		sensor:      sensor,
		storeDriver: storeDriver,
		validator:   validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if _, err := hdl.srv.GetAll(); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: HealthResponse{Store: hdl.storeDriver}})
}

// GetTodos godoc
// @Summary List todos
// @Description List every todo in insertion order
// @Tags TODO
// @Produce json
// @Success 200 {object} ResponseBody{data=[]TodoResponse}
// @Router /todos [get]
func (hdl *HTTPHandler) GetTodos(c *fiber.Ctx) error {
	items, err := hdl.srv.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	data := make([]TodoResponse, 0, len(items))
	for _, item := range items {
		data = append(data, toTodoResponse(item))
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// GetTodo godoc
// @Summary Get todo
// @Description Get a todo by id
// @Tags TODO
// @Produce json
// @Param id path string true "uuid"
// @Success 200 {object} ResponseBody{data=TodoResponse}
// @Failure 400 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Router /todos/{id} [get]
func (hdl *HTTPHandler) GetTodo(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	item, ok, err := hdl.srv.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: toTodoResponse(item)})
}

// CreateTodo godoc
// @Summary Create todo
// @Description Create todo; the id and creation time are assigned by the server
// @Tags TODO
// @Accept application/json
// @Produce json
// @Param CreateTodo body TodoRequest true "CreateTodo"
// @Success 201 {object} ResponseBody{data=TodoResponse}
// @Failure 400 {object} ResponseBody
// @Router /todos [post]
func (hdl *HTTPHandler) CreateTodo(c *fiber.Ctx) error {
	request, failed := hdl.parseTodoRequest(c)
	if failed {
		return nil
	}
	item, err := hdl.srv.Add(request.Title, request.IsCompleted)
	if err != nil {
		return hdl.writeStoreError(c, err)
	}
	c.Location("/todos/" + item.ID.String())
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created, Data: toTodoResponse(item)})
}

// UpdateTodo godoc
// @Summary Update todo
// @Description Replace title and completion flag of a todo
// @Tags TODO
// @Accept application/json
// @Produce json
// @Param id path string true "uuid"
// @Param UpdateTodo body TodoRequest true "UpdateTodo"
// @Success 204
// @Failure 400 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Router /todos/{id} [put]
func (hdl *HTTPHandler) UpdateTodo(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	var request TodoRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	// an unknown id is reported before any problem with the body
	if err := hdl.validator.ValidateStruct(request); err != nil {
		_, ok, lookupErr := hdl.srv.GetByID(id)
		if lookupErr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
		}
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: withMessage(BadRequest, err.Error())})
	}
	updated, err := hdl.srv.Update(id, request.Title, request.IsCompleted)
	if err != nil {
		return hdl.writeStoreError(c, err)
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteTodo godoc
// @Summary Delete todo
// @Description Delete a todo by id
// @Tags TODO
// @Param id path string true "uuid"
// @Success 204
// @Failure 400 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Router /todos/{id} [delete]
func (hdl *HTTPHandler) DeleteTodo(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	deleted, err := hdl.srv.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseTodoRequest decodes and validates the body. When it returns true the
// error response has already been written.
func (hdl *HTTPHandler) parseTodoRequest(c *fiber.Ctx) (TodoRequest, bool) {
	var request TodoRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		_ = c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
		return request, true
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: withMessage(BadRequest, err.Error())})
		return request, true
	}
	return request, false
}

// writeStoreError maps a validation failure to 400 with its message and anything else to 500
func (hdl *HTTPHandler) writeStoreError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: withMessage(BadRequest, verr.Message)})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logrus.Debugf("invalid todo id %q: %v", c.Params("id"), err)
	}
	return id, err
}
