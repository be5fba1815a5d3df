package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/falconboard/boardflow/internal/adapter/shopify"
	"github.com/falconboard/boardflow/internal/domain/model"
)

// WebhookHandler manages commerce platform webhook endpoints.
type WebhookHandler struct {
	facade RoutingFacade
}

// NewWebhookHandler constructs WebhookHandler.
func NewWebhookHandler(facade RoutingFacade) *WebhookHandler {
	return &WebhookHandler{facade: facade}
}

// OrderCreated handles POST /api/shopify/webhooks/orders/created.
func (h *WebhookHandler) OrderCreated(c *gin.Context) {
	h.handle(c, h.facade.HandleOrderCreated)
}

// OrderUpdated handles POST /api/shopify/webhooks/orders/updated.
func (h *WebhookHandler) OrderUpdated(c *gin.Context) {
	h.handle(c, h.facade.HandleOrderUpdated)
}

func (h *WebhookHandler) handle(c *gin.Context, route func(context.Context, *model.Order) (*model.RouteResult, error)) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := shopify.DecodeOrder(body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := route(c.Request.Context(), order)
	if err != nil {
		writeRouteError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRouteResponse(result))
}
