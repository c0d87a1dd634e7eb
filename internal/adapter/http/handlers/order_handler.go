package handlers

import (
	"context"
	"errors"
	"net/http"

	request "assistencia_os/internal/adapter/http/dto/request"
	response "assistencia_os/internal/adapter/http/dto/response"
	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/auth"
	"assistencia_os/internal/usecase"

	"github.com/gin-gonic/gin"
)

const orderNotFound = "ORDER_NOT_FOUND"

// OrderHandler handles HTTP requests for service orders.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create a service order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order body request.CreateOrderRequest true "Intake form"
// @Success      201 {object} response.OrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), auth.SessionFrom(c), payload.ToInput())
	if err != nil {
		writeError(c, mapError(err, orderNotFound))
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary      Get a service order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err, orderNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders godoc
// @Summary      List service orders, newest first
// @Tags         orders
// @Produce      json
// @Param        view query string false "active | completed | history | all" default(all)
// @Success      200 {array} response.OrderResponse
// @Security     BearerAuth
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	view := usecase.OrderView(c.DefaultQuery("view", string(usecase.OrderViewAll)))

	orders, err := h.usecase.ListOrders(c.Request.Context(), view)
	if err != nil {
		writeError(c, mapError(err, orderNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// UpdateStatus godoc
// @Summary      Change the status of a service order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        status body request.UpdateStatusRequest true "Target status"
// @Success      200 {object} response.OrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	target, ok := payload.ResolveStatus()
	if !ok {
		writeError(c, errInvalidStatus)
		return
	}

	h.transition(c, func(ctx context.Context, s entities.Session, id string) (entities.ServiceOrder, error) {
		return h.usecase.UpdateStatus(ctx, s, id, target)
	})
}

func (h *OrderHandler) StartRepair(c *gin.Context) {
	h.transition(c, h.usecase.StartRepair)
}

func (h *OrderHandler) Complete(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *OrderHandler) transition(
	c *gin.Context,
	updater func(ctx context.Context, session entities.Session, id string) (entities.ServiceOrder, error),
) {
	order, err := updater(c.Request.Context(), auth.SessionFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err, orderNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// SavePhotos godoc
// @Summary      Append pending photos to an order
// @Description  Photos beyond the per-bucket limit are dropped; the accepted ones are kept and the response is 422 with the counts.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        photos body request.SavePhotosRequest true "Pending photos"
// @Success      200 {object} response.PhotoSaveResponse
// @Failure      422 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /orders/{id}/photos [put]
func (h *OrderHandler) SavePhotos(c *gin.Context) {
	var payload request.SavePhotosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.SavePhotos(c.Request.Context(), auth.SessionFrom(c), c.Param("id"), payload.FotosAntes, payload.FotosDepois)
	if err != nil {
		appErr := mapError(err, orderNotFound)
		if errors.Is(err, usecase.ErrPhotoLimit) {
			writeErrorWithDetails(c, appErr, response.FromPhotoSaveResult(result))
			return
		}
		writeError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.FromPhotoSaveResult(result))
}

// DeleteOrder godoc
// @Summary      Delete a finished or cancelled order (admin only)
// @Tags         orders
// @Param        id path string true "Order ID"
// @Success      204
// @Failure      403 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.DeleteOrder(c.Request.Context(), auth.SessionFrom(c), c.Param("id")); err != nil {
		writeError(c, mapError(err, orderNotFound))
		return
	}

	c.Status(http.StatusNoContent)
}
