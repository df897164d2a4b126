package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rocketstore-api/internal/application/customers"
	"github.com/jhoicas/rocketstore-api/internal/application/dto"
	"github.com/jhoicas/rocketstore-api/internal/application/validation"
	"github.com/jhoicas/rocketstore-api/internal/domain"
)

// CustomerHandler maneja las peticiones HTTP de clientes. Solo traduce Results a respuestas.
type CustomerHandler struct {
	uc *customers.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customers.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {string}  string  "ID del cliente"
// @Failure      400   {object}  dto.ValidationProblemDetails
// @Failure      409   {object}  dto.ProblemDetails
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return writeProblem(c, fiber.StatusBadRequest, "InvalidBody", "cuerpo inválido")
	}
	validation.NormalizeCustomer(&in)
	if v := validation.ValidateCustomer(&in); !v.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationProblemDetails{
			ProblemDetails: dto.ProblemDetails{
				Status: fiber.StatusBadRequest,
				Title:  string(domain.ErrCodeValidationFailed),
				Detail: "One or more validation errors occurred.",
			},
			Errors: v,
		})
	}

	res := h.uc.Create(c.UserContext(), &in)
	if res.Failed() {
		return writeFailure(c, res)
	}
	id, _ := res.Value()
	c.Location(c.BaseURL() + "/api/customers/" + id)
	return c.Status(fiber.StatusCreated).JSON(id)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Param        nameFilter   query  string  false  "Subcadena del nombre"
// @Param        emailFilter  query  string  false  "Subcadena del email"
// @Success      200  {array}   dto.CustomerSummary
// @Failure      500  {object}  dto.ProblemDetails
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	res := h.uc.List(c.UserContext(), c.Query("nameFilter"), c.Query("emailFilter"))
	if res.Failed() {
		return writeFailure(c, res)
	}
	list, _ := res.Value()
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener cliente por ID (con ubicación)
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerDetail
// @Failure      404  {object}  dto.ProblemDetails
// @Failure      502  {object}  dto.ProblemDetails
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	res := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if res.Failed() {
		return writeFailure(c, res)
	}
	detail, _ := res.Value()
	return c.JSON(detail)
}

// DeleteByID godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {string}  string  "ID eliminado"
// @Failure      404  {object}  dto.ProblemDetails
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) DeleteByID(c *fiber.Ctx) error {
	res := h.uc.DeleteByID(c.UserContext(), c.Params("id"))
	if res.Failed() {
		return writeFailure(c, res)
	}
	id, _ := res.Value()
	return c.JSON(id)
}
