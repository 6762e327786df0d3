package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
)

// WidgetHandler handles HTTP requests for a mounted dispatch widget.
type WidgetHandler struct {
	service ports.WidgetService
}

func NewWidgetHandler(service ports.WidgetService) *WidgetHandler {
	return &WidgetHandler{service: service}
}

// StartSession handles POST /v1/sessions.
//
// @Summary      Mount a dispatch widget
// @Description  Creates a session at the Details stage with an empty draft and returns its bearer token.
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  sessionResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/sessions [post]
func (h *WidgetHandler) StartSession(c echo.Context) error {
	result, err := h.service.StartSession(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sessionResponse{
		SessionID: result.SessionID,
		Token:     result.Token,
		View:      toViewResponse(result.View),
	})
}

// EndSession handles DELETE /v1/session.
//
// @Summary      Unmount the widget
// @Tags         sessions
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/session [delete]
func (h *WidgetHandler) EndSession(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	if err := h.service.EndSession(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetView handles GET /v1/session.
//
// @Summary      Current widget view
// @Tags         widget
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  viewResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/session [get]
func (h *WidgetHandler) GetView(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	view, err := h.service.View(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toViewResponse(*view))
}

// UpdateInput handles PATCH /v1/session/input.
//
// @Summary      Edit the booking draft
// @Description  Absent fields are untouched; an empty string clears a field. The stage never changes.
// @Tags         widget
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateInputRequest  true  "Draft fields"
// @Success      200   {object}  viewResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/session/input [patch]
func (h *WidgetHandler) UpdateInput(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req updateInputRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.service.UpdateInput(c.Request().Context(), id, toInputPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toViewResponse(*view))
}

// RequestDispatch handles POST /v1/session/dispatch.
//
// @Summary      Request dispatch
// @Description  Advances Details → Dispatch and hands the composed message off to WhatsApp.
// @Description  handoff is null when the request was ignored (wrong stage or missing pickup/destination).
// @Tags         widget
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      requestDispatchRequest  true  "Client open result"
// @Success      200   {object}  requestDispatchResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/session/dispatch [post]
func (h *WidgetHandler) RequestDispatch(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req requestDispatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.RequestDispatch(c.Request().Context(), ports.RequestDispatchInput{
		SessionID:    id,
		PopupAllowed: *req.PopupAllowed,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requestDispatchResponse{
		View:    toViewResponse(result.View),
		Handoff: toHandoffResponse(result.Handoff),
	})
}

// JumpToStage handles POST /v1/session/stage.
//
// @Summary      Jump to a stepper stage
// @Description  Disallowed jumps are ignored and the unchanged view is returned.
// @Tags         widget
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jumpToStageRequest  true  "Target stage"
// @Success      200   {object}  viewResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/session/stage [post]
func (h *WidgetHandler) JumpToStage(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req jumpToStageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	target, ok := domain.ParseStage(req.Stage)
	if !ok {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unknown stage")
	}

	view, err := h.service.JumpToStage(c.Request().Context(), id, target)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toViewResponse(*view))
}

// StartTracking handles POST /v1/session/track.
//
// @Summary      Open live tracking
// @Description  Only moves Dispatch → Track; otherwise the unchanged view is returned.
// @Tags         widget
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  viewResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/session/track [post]
func (h *WidgetHandler) StartTracking(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	view, err := h.service.StartTracking(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toViewResponse(*view))
}

// Reset handles POST /v1/session/reset.
//
// @Summary      Start a new request
// @Description  Returns to Details. The draft is kept.
// @Tags         widget
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  viewResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/session/reset [post]
func (h *WidgetHandler) Reset(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	view, err := h.service.Reset(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toViewResponse(*view))
}

// ClickCTA handles POST /v1/session/cta.
//
// @Summary      Record a secondary link click
// @Tags         widget
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ctaRequest  true  "see-tracking or open-watchtower"
// @Success      200   {object}  viewResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/session/cta [post]
func (h *WidgetHandler) ClickCTA(c echo.Context) error {
	id, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req ctaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.service.ClickCTA(c.Request().Context(), id, req.CTA)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toViewResponse(*view))
}
