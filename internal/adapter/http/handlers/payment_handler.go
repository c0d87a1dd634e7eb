package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "assistencia_os/internal/adapter/http/dto/response"
	"assistencia_os/internal/infrastructure/auth"
	"assistencia_os/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler charges completed orders through the payment provider.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ChargeOrder godoc
// @Summary      Charge a completed order
// @Description  Body is a Mercado Pago payment request, optionally wrapped in {"mp_payload": {...}}. Amount and external reference are always taken from the order.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Security     BearerAuth
// @Router       /orders/{id}/payment [post]
func (h *PaymentHandler) ChargeOrder(c *gin.Context) {
	// An unreadable body is passed on empty; the use case decides whether
	// that is acceptable (mock mode) or a validation error.
	payload, err := readMPPayload(c)
	if err != nil {
		payload = nil
	}

	order, err := h.usecase.ChargeOrder(c.Request.Context(), auth.SessionFrom(c), c.Param("id"), payload)
	if err != nil {
		writeError(c, mapError(err, orderNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
