package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistock-api/internal/application/dto"
	"github.com/jhoicas/sistock-api/internal/application/inventory"
	"github.com/jhoicas/sistock-api/internal/domain"
)

// MovementService lo implementa *inventory.MovementUseCase.
type MovementService interface {
	ProposeMovement(ctx context.Context, in inventory.ProposeInput) (*inventory.Outcome, error)
	ListMovements(ctx context.Context, in dto.MovementListRequest) (*dto.MovementListResponse, error)
	GetMovement(ctx context.Context, id int64) (*dto.MovementResponse, error)
	CurrentBalance(ctx context.Context, productID string) (*dto.BalanceResponse, error)
}

// AlertService lo implementa *inventory.StockAlertUseCase.
type AlertService interface {
	ListStockAlerts(ctx context.Context) ([]dto.StockAlertDTO, error)
	Summary(ctx context.Context) (*dto.DashboardSummary, error)
}

// InventoryHandler maneja las peticiones HTTP de movimientos e inventario (protegido).
type InventoryHandler struct {
	movements MovementService
	alerts    AlertService
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements MovementService, alerts AlertService) *InventoryHandler {
	return &InventoryHandler{movements: movements, alerts: alerts}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  IN suma, OUT resta (sin superar el saldo), ADJ aplica un delta con signo. El saldo nunca baja de cero.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, movement_type, quantity, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.RejectionResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, err)
	}
	out, err := h.movements.ProposeMovement(c.Context(), inventory.ProposeInputFromRequest(userID, in))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo registrar el movimiento"})
	}
	if rej := out.Rejection; rej != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.RejectionResponse{
			Code:    "REJECTED",
			Field:   rej.Field,
			Reason:  rej.Code,
			Message: rej.Message,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(out.Movement)
}

// ListMovements godoc
// @Summary      Consultar el ledger de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "UUID del producto"
// @Param        type        query  string  false  "IN | OUT | ADJ (sin distinguir mayúsculas)"
// @Param        user_id     query  string  false  "UUID del usuario"
// @Param        username    query  string  false  "Contiene (sin distinguir mayúsculas)"
// @Param        from        query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to          query  string  false  "Hasta, inclusive (YYYY-MM-DD)"
// @Param        q           query  string  false  "Texto en producto, SKU, motivo o usuario"
// @Param        limit       query  int     false  "Límite"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return validationFailed(c, err)
	}
	out, err := h.movements.ListMovements(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo consultar el ledger"})
	}
	return c.JSON(out)
}

// GetMovement godoc
// @Summary      Obtener un movimiento
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.movements.GetMovement(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo obtener el movimiento"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	return c.JSON(out)
}

// ListAlerts godoc
// @Summary      Alertas de stock bajo
// @Description  Productos con saldo en o bajo su mínimo, con la cantidad sugerida de reposición.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "total, alerts []dto.StockAlertDTO"
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) ListAlerts(c *fiber.Ctx) error {
	list, err := h.alerts.ListStockAlerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron calcular las alertas"})
	}
	return c.JSON(fiber.Map{
		"total":  len(list),
		"alerts": list,
	})
}

// Summary godoc
// @Summary      Resumen del inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	out, err := h.alerts.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo armar el resumen"})
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Saldo actual de un producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/balance [get]
func (h *InventoryHandler) Balance(c *fiber.Ctx) error {
	out, err := h.movements.CurrentBalance(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer el saldo"})
	}
	return c.JSON(out)
}
