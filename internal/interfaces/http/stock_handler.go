package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP del libro de stock.
// Las lecturas son públicas; las mutaciones pasan por el gate en el router.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListAll godoc
// @Summary      Listar todo el inventario
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.StockRecordResponse
// @Router       /api/inventory/stock [get]
func (h *StockHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByArticle godoc
// @Summary      Inventario de un artículo
// @Tags         stock
// @Produce      json
// @Param        articleID  path  int  true  "ID del artículo"
// @Success      200  {array}   dto.StockRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{articleID} [get]
func (h *StockHandler) ListByArticle(c *fiber.Ctx) error {
	articleID, err := strconv.ParseInt(c.Params("articleID"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.ListByArticle(articleID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByLocation godoc
// @Summary      Inventario de una ubicación
// @Tags         stock
// @Produce      json
// @Param        location  path  string  true  "Ubicación"
// @Success      200  {array}  dto.StockRecordResponse
// @Router       /api/inventory/stock/location/{location} [get]
func (h *StockHandler) ListByLocation(c *fiber.Ctx) error {
	out, err := h.uc.ListByLocation(c.Params("location"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear registro de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "article_id, quantity, location"
// @Success      201   {object}  dto.StockRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_IDENTITY", Message: "no hay identidad en la petición"})
	}
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ArticleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "article_id es requerido"})
	}
	out, err := h.uc.Create(c.Context(), identity, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un registro de stock para ese artículo en esa ubicación"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location admite máximo 50 caracteres"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Set godoc
// @Summary      Sobreescribir cantidad (autoritativo, sin piso en cero)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del registro"
// @Param        body  body  dto.SetQuantityRequest  true  "quantity"
// @Success      204   "sin contenido"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{id} [put]
func (h *StockHandler) Set(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_IDENTITY", Message: "no hay identidad en la petición"})
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Set(c.Context(), identity, id, in); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de stock no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Adjust godoc
// @Summary      Ajustar inventario (delta con piso en cero)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del registro"
// @Param        body  body  dto.AdjustRequest  true  "delta: positivo entrada, negativo salida"
// @Success      200   {object}  dto.AdjustResponse
// @Failure      400   {object}  dto.StockErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{id}/adjust [patch]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_IDENTITY", Message: "no hay identidad en la petición"})
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Adjust(c.Context(), identity, id, in)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.StockErrorResponse{
				Code:            "INSUFFICIENT_STOCK",
				Message:         insufficient.Error(),
				CurrentQuantity: insufficient.Current,
				RequestedDelta:  insufficient.Requested,
			})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de stock no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del registro"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de stock no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
