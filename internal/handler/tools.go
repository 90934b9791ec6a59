package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/tools"
)

// ToolsHandler exposes the tool dispatch surface over HTTP so an external
// orchestrator can call operations by name instead of by route.
type ToolsHandler struct {
	Dispatcher *tools.Dispatcher
}

func NewToolsHandler(d *tools.Dispatcher) *ToolsHandler {
	return &ToolsHandler{Dispatcher: d}
}

// Execute handles POST /v1/tools/:name.  The request body is the tool's
// JSON argument object.  The response is always 200 with either the tool
// result or an {"error": ...} envelope; the orchestrator contract keys off
// the envelope, not the HTTP status.
func (h *ToolsHandler) Execute(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_arguments", "message": "unreadable body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result := h.Dispatcher.Execute(ctx, c.Param("name"), json.RawMessage(body))
	return c.JSON(http.StatusOK, result)
}

// Specs handles GET /v1/tools; it returns the tool declarations an
// orchestrator needs to drive the dispatch surface.
func (h *ToolsHandler) Specs(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"tools": tools.Specs()})
}
