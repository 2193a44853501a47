package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/pkg/jwt"
)

// Locals keys para claims e identidad autorizada en Fiber.
const (
	LocalClaims   = "claims"
	LocalIdentity = "identity"
)

// AuthMiddleware valida el Bearer Token JWT y deja los claims en c.Locals.
// La causa real de una verificación fallida (firma, estructura, expiración) se
// registra en el log del servidor; el cliente solo ve "token inválido o expirado".
// Esa separación es un límite de seguridad deliberado.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("verificación de token fallida")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireCapability autoriza la capability pedida con el gate y deja la identidad
// resuelta en c.Locals. Debe usarse DESPUÉS de AuthMiddleware. Corre estrictamente
// antes del handler: una denegación nunca llega a mutar estado.
//
// Razones de denegación distinguibles en la respuesta:
//   - 401 NO_IDENTITY        → sin claims extraíbles
//   - 401 IDENTITY_NOT_FOUND → el sujeto del token ya no existe
//   - 403 FORBIDDEN          → rol insuficiente para la operación
func RequireCapability(gate *auth.Gate, capability auth.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		identity, err := gate.Authorize(c.Context(), claims, capability)
		if err != nil {
			switch err {
			case domain.ErrUnauthorized:
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_IDENTITY", Message: "no hay identidad en la petición"})
			case domain.ErrUserNotFound:
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "IDENTITY_NOT_FOUND", Message: "la identidad del token no existe"})
			case domain.ErrForbidden:
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente: se requiere Administrador o Gestor"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// GetClaims devuelve los claims del contexto (después del middleware de auth).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}

// GetIdentity devuelve la identidad autorizada del contexto (después de RequireCapability).
func GetIdentity(c *fiber.Ctx) *auth.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	identity, _ := v.(*auth.Identity)
	return identity
}
