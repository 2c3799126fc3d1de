package workflow

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/resiops/resiops/internal/domain/ward"
)

type Handler struct {
	orch *Orchestrator
	sync *SyncEngine
	ward WardStore
}

func NewHandler(orch *Orchestrator, sync *SyncEngine, wardStore WardStore) *Handler {
	return &Handler{orch: orch, sync: sync, ward: wardStore}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/consults/:id/promote", h.Promote)
	api.POST("/ward-patients/sync", h.SyncAll)
	api.POST("/ward-patients/:id/sync", h.SyncOne)
	api.POST("/tasks/:id/complete", h.Complete)
}

// httpStatus maps the workflow error taxonomy onto response codes. Store
// failures come back as 502 so load balancers can tell them apart from
// caller mistakes.
func httpStatus(err error) int {
	var nf *NotFoundError
	var dup *DuplicatePatientError
	var val *ValidationError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &dup):
		return http.StatusConflict
	case errors.As(err, &val):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func (h *Handler) Promote(c echo.Context) error {
	consultID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid consult id")
	}
	var body struct {
		AssessmentID uuid.UUID `json:"assessment_id"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.AssessmentID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "assessment_id is required")
	}

	patientID, err := h.orch.Promote(c.Request().Context(), consultID, body.AssessmentID)
	if err != nil {
		return echo.NewHTTPError(httpStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"ward_patient_id": patientID.String()})
}

func (h *Handler) SyncAll(c echo.Context) error {
	if err := h.sync.SyncAll(c.Request().Context()); err != nil {
		return echo.NewHTTPError(httpStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "synced"})
}

func (h *Handler) SyncOne(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.ward.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ward.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "ward patient not found")
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if err := h.sync.SyncOne(c.Request().Context(), p); err != nil {
		return echo.NewHTTPError(httpStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "synced"})
}

func (h *Handler) Complete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var body struct {
		ClearPendientes bool `json:"clear_pendientes"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.sync.CompleteCascade(c.Request().Context(), id, body.ClearPendientes); err != nil {
		return echo.NewHTTPError(httpStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "completed"})
}
