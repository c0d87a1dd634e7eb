package handlers

import (
	"net/http"

	response "assistencia_os/internal/adapter/http/dto/response"
	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/auth"
	"assistencia_os/internal/infrastructure/logger"
	"assistencia_os/internal/infrastructure/messaging"
	"assistencia_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shareNotFound = "SHARE_NOT_FOUND"

// ShareHandler publishes public receipts and serves them without auth.
type ShareHandler struct {
	shares usecase.IShareUseCase
	orders usecase.IOrderUseCase
	links  *messaging.LinkBuilder
}

func NewShareHandler(shares usecase.IShareUseCase, orders usecase.IOrderUseCase, links *messaging.LinkBuilder) *ShareHandler {
	return &ShareHandler{shares: shares, orders: orders, links: links}
}

// PublishOrder godoc
// @Summary      Publish a public receipt for an order
// @Description  Returns the receipt URL and a prefilled messaging deep link addressed to the customer.
// @Tags         shares
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      201 {object} response.ShareLinkResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /orders/{id}/share [post]
func (h *ShareHandler) PublishOrder(c *gin.Context) {
	ctx := c.Request.Context()
	orderID := c.Param("id")

	share, err := h.shares.PublishOrder(ctx, auth.SessionFrom(c), orderID)
	if err != nil {
		writeError(c, mapError(err, orderNotFound))
		return
	}

	// The snapshot carries no phone; the deep link falls back to no recipient.
	var phone string
	if order, err := h.orders.GetOrder(ctx, orderID); err == nil {
		phone = order.Phone
	} else {
		logger.FromGin(c).Warn("could not read order phone for deep link", zap.String("order_id", orderID), zap.Error(err))
	}

	url := h.links.ShareURL(entities.ShareKindOrder, share.ID)
	msg := messaging.OrderMessage(share.Customer, url)
	c.JSON(http.StatusCreated, response.ShareLinkResponse{
		ID:       share.ID,
		URL:      url,
		Mensagem: msg,
		DeepLink: h.links.DeepLink(msg, phone),
	})
}

// PublishResale godoc
// @Summary      Publish a public sale receipt
// @Tags         shares
// @Produce      json
// @Param        id path string true "Resale ID"
// @Success      201 {object} response.ShareLinkResponse
// @Failure      409 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /resales/{id}/share [post]
func (h *ShareHandler) PublishResale(c *gin.Context) {
	share, err := h.shares.PublishResale(c.Request.Context(), auth.SessionFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err, resaleNotFound))
		return
	}

	url := h.links.ShareURL(entities.ShareKindResale, share.ID)
	msg := messaging.ResaleMessage(url)
	c.JSON(http.StatusCreated, response.ShareLinkResponse{
		ID:       share.ID,
		URL:      url,
		Mensagem: msg,
		DeepLink: h.links.DeepLink(msg, ""),
	})
}

// GetOrderShare godoc
// @Summary      Public order receipt
// @Tags         public
// @Produce      json
// @Param        id path string true "Share ID"
// @Success      200 {object} response.OrderShareResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /public/orders/{id} [get]
func (h *ShareHandler) GetOrderShare(c *gin.Context) {
	share, err := h.shares.GetOrderShare(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err, shareNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromOrderShare(share))
}

// GetResaleShare godoc
// @Summary      Public sale receipt
// @Tags         public
// @Produce      json
// @Param        id path string true "Share ID"
// @Success      200 {object} response.ResaleShareResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /public/resales/{id} [get]
func (h *ShareHandler) GetResaleShare(c *gin.Context) {
	share, err := h.shares.GetResaleShare(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err, shareNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromResaleShare(share))
}
