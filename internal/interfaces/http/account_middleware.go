package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistock-api/internal/application/dto"
	"github.com/jhoicas/sistock-api/internal/domain/entity"
)

// accountChecker es el contrato mínimo que necesita el middleware para validar la cuenta.
// Lo implementa *usecase.UserUseCase.
type accountChecker interface {
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
}

// RequireActiveAccount verifica que el usuario del token siga existiendo y esté activo.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 401 Unauthorized → el usuario ya no existe.
//   - 403 Forbidden → cuenta inactiva.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequireActiveAccount(checker accountChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		user, err := checker.GetByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACCOUNT_CHECK_FAILED",
				Message: "no se pudo verificar la cuenta, intente más tarde",
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "el usuario del token no existe",
			})
		}
		if user.Status != entity.UserStatusActive {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "ACCOUNT_DISABLED",
				Message: "cuenta inactiva o suspendida",
			})
		}

		return c.Next()
	}
}
