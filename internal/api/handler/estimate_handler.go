package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
)

// EstimateHandler serves the stateless quote preview and the select options.
type EstimateHandler struct {
	service ports.WidgetService
}

func NewEstimateHandler(service ports.WidgetService) *EstimateHandler {
	return &EstimateHandler{service: service}
}

// Quote handles GET /v1/estimate.
//
// @Summary      Preview an estimate
// @Description  estimate is null unless both pickup and destination are set.
// @Tags         estimate
// @Produce      json
// @Param        pickup       query     string  false  "apapa | tincan | lekki | odock"
// @Param        destination  query     string  false  "Free-text drop-off"
// @Param        container    query     string  false  "20 | 40 | empty"
// @Success      200          {object}  quoteResponse
// @Failure      422          {object}  errorResponse
// @Router       /v1/estimate [get]
func (h *EstimateHandler) Quote(c echo.Context) error {
	var q estimateQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	result := h.service.Quote(toBookingInput(q))
	return c.JSON(http.StatusOK, quoteResponse{
		Estimate: toEstimateResponse(result.Estimate),
		Summary:  result.Summary,
		Message:  result.Message,
	})
}

type optionsResponse struct {
	Pickups    []domain.Option `json:"pickups"`
	Containers []domain.Option `json:"containers"`
	Timings    []domain.Option `json:"timings"`
}

// Options handles GET /v1/options.
//
// @Summary      Select options
// @Description  Wire values and labels for the pickup, container and timing selects.
// @Tags         estimate
// @Produce      json
// @Success      200  {object}  optionsResponse
// @Router       /v1/options [get]
func (h *EstimateHandler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, optionsResponse{
		Pickups:    domain.PickupOptions(),
		Containers: domain.ContainerOptions(),
		Timings:    domain.TimingOptions(),
	})
}
