package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rrhh-api/internal/application/directory"
	"github.com/jhoicas/Rrhh-api/internal/application/dto"
	"github.com/jhoicas/Rrhh-api/internal/domain"
)

// EmployeeHandler maneja el directorio de empleados (protegido y con alcance).
type EmployeeHandler struct {
	uc *directory.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *directory.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados visibles
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	res := GetScope(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de página inválidos"})
	}

	out, err := h.uc.List(c.Context(), res.Predicate, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out.Degraded = res.Degraded
	return c.JSON(out)
}

// Count godoc
// @Summary      Contar empleados visibles
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmployeeCountResponse
// @Router       /api/employees/count [get]
func (h *EmployeeHandler) Count(c *fiber.Ctx) error {
	res := GetScope(c)
	out, err := h.uc.Count(c.Context(), res.Predicate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out.Degraded = res.Degraded
	return c.JSON(out)
}

// Export godoc
// @Summary      Filas visibles para exportación de reportes
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees/export [get]
func (h *EmployeeHandler) Export(c *fiber.Ctx) error {
	res := GetScope(c)
	rows, err := h.uc.Export(c.Context(), res.Predicate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// GetByID godoc
// @Summary      Ficha de empleado (si el alcance lo admite)
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	res := GetScope(c)
	out, err := h.uc.GetByID(c.Context(), res.Predicate, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar empleado (solo administración)
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201  {object}  dto.EmployeeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "document y name son requeridos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "documento ya registrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
