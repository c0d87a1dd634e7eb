package handlers

import (
	"net/http"

	request "assistencia_os/internal/adapter/http/dto/request"
	response "assistencia_os/internal/adapter/http/dto/response"
	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/auth"
	"assistencia_os/internal/usecase"

	"github.com/gin-gonic/gin"
)

const resaleNotFound = "RESALE_NOT_FOUND"

// ResaleHandler handles HTTP requests for the resale inventory.
type ResaleHandler struct {
	usecase usecase.IResaleUseCase
}

func NewResaleHandler(uc usecase.IResaleUseCase) *ResaleHandler {
	return &ResaleHandler{usecase: uc}
}

// CreateResale godoc
// @Summary      Register a device for resale
// @Tags         resales
// @Accept       json
// @Produce      json
// @Param        item body request.CreateResaleRequest true "Device"
// @Success      201 {object} response.ResaleResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /resales [post]
func (h *ResaleHandler) CreateResale(c *gin.Context) {
	var payload request.CreateResaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.CreateResale(c.Request.Context(), auth.SessionFrom(c), payload.ToInput())
	if err != nil {
		writeError(c, mapError(err, resaleNotFound))
		return
	}

	c.JSON(http.StatusCreated, response.FromResale(item))
}

// GetResale godoc
// @Summary      Get a resale item
// @Tags         resales
// @Produce      json
// @Param        id path string true "Resale ID"
// @Success      200 {object} response.ResaleResponse
// @Failure      404 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /resales/{id} [get]
func (h *ResaleHandler) GetResale(c *gin.Context) {
	item, err := h.usecase.GetResale(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err, resaleNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromResale(item))
}

// ListResales godoc
// @Summary      List resale items, newest first
// @Tags         resales
// @Produce      json
// @Param        status query string false "Em estoque | Vendido"
// @Success      200 {array} response.ResaleResponse
// @Security     BearerAuth
// @Router       /resales [get]
func (h *ResaleHandler) ListResales(c *gin.Context) {
	var status entities.ResaleStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := entities.ParseResaleStatus(raw)
		if !ok {
			writeError(c, errInvalidStatus)
			return
		}
		status = parsed
	}

	items, err := h.usecase.ListResales(c.Request.Context(), status)
	if err != nil {
		writeError(c, mapError(err, resaleNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromResales(items))
}

// MarkSold godoc
// @Summary      Mark an in-stock device as sold
// @Tags         resales
// @Accept       json
// @Produce      json
// @Param        id path string true "Resale ID"
// @Param        sale body request.SellRequest true "Sale price"
// @Success      200 {object} response.ResaleResponse
// @Failure      409 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /resales/{id}/sell [post]
func (h *ResaleHandler) MarkSold(c *gin.Context) {
	var payload request.SellRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.MarkSold(c.Request.Context(), auth.SessionFrom(c), c.Param("id"), payload.ValorVendido)
	if err != nil {
		writeError(c, mapError(err, resaleNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromResale(item))
}

// CancelSale godoc
// @Summary      Undo a sale and return the device to stock
// @Tags         resales
// @Produce      json
// @Param        id path string true "Resale ID"
// @Success      200 {object} response.ResaleResponse
// @Failure      409 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /resales/{id}/cancel-sale [post]
func (h *ResaleHandler) CancelSale(c *gin.Context) {
	item, err := h.usecase.CancelSale(c.Request.Context(), auth.SessionFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err, resaleNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromResale(item))
}

// DeleteResale godoc
// @Summary      Delete a resale item that is not sold (admin only)
// @Tags         resales
// @Param        id path string true "Resale ID"
// @Success      204
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /resales/{id} [delete]
func (h *ResaleHandler) DeleteResale(c *gin.Context) {
	if err := h.usecase.DeleteResale(c.Request.Context(), auth.SessionFrom(c), c.Param("id")); err != nil {
		writeError(c, mapError(err, resaleNotFound))
		return
	}

	c.Status(http.StatusNoContent)
}
