package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/falconboard/boardflow/internal/domain/errors"
	"github.com/falconboard/boardflow/internal/domain/model"
	"github.com/falconboard/boardflow/internal/server/http/dto"
)

func writeRouteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrTagsNotReady):
		c.Status(http.StatusServiceUnavailable)
	case errors.Is(err, domainErrors.ErrNoBoard), errors.Is(err, domainErrors.ErrColumnNotFound):
		c.Status(http.StatusUnprocessableEntity)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toRouteResponse(result *model.RouteResult) dto.RouteResponse {
	return dto.RouteResponse{
		Action: string(result.Action),
		Column: result.Column,
		CardID: result.CardID,
	}
}

func toImportResponse(summary *model.ImportSummary) dto.ImportResponse {
	response := dto.ImportResponse{
		Imported: summary.Imported,
		Total:    summary.Total,
	}
	for _, d := range summary.Details {
		response.Details = append(response.Details, dto.ImportDetailResponse{
			OrderID:     d.OrderID,
			OrderNumber: d.OrderNumber,
			Action:      string(d.Action),
			Column:      d.Column,
			CardID:      d.CardID,
			Error:       d.Error,
		})
	}
	return response
}
