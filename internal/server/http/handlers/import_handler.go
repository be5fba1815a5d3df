package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ImportHandler triggers a polled import run on demand.
type ImportHandler struct {
	facade RoutingFacade
}

// NewImportHandler constructs ImportHandler.
func NewImportHandler(facade RoutingFacade) *ImportHandler {
	return &ImportHandler{facade: facade}
}

// Run handles POST /api/shopify/import. The since query parameter bounds the
// updated_at window and must be RFC3339.
func (h *ImportHandler) Run(c *gin.Context) {
	raw := c.Query("since")
	if raw == "" {
		c.Status(http.StatusBadRequest)
		return
	}
	since, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	summary, err := h.facade.RunPolledImport(c.Request.Context(), since)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toImportResponse(summary))
}
