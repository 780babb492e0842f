package handler

import (
	"net/http"

	"suiteprop/internal/delivery/api/response"
	"suiteprop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const contentTypePNG = "image/png"

// ResidentHandler serves the resident portal.
type ResidentHandler struct {
	portal      usecase.PortalUsecase
	maintenance usecase.MaintenanceUsecase
	reports     usecase.ReportUsecase
}

// NewResidentHandler is the constructor for ResidentHandler, injected by Fx.
func NewResidentHandler(portal usecase.PortalUsecase, maintenance usecase.MaintenanceUsecase, reports usecase.ReportUsecase) *ResidentHandler {
	return &ResidentHandler{
		portal:      portal,
		maintenance: maintenance,
		reports:     reports,
	}
}

// Dashboard handles GET /api/v1/resident/dashboard.
func (h *ResidentHandler) Dashboard(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	summary, err := h.portal.ResidentSummary(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// SubmitMaintenanceRequest handles POST /api/v1/resident/maintenance.
func (h *ResidentHandler) SubmitMaintenanceRequest(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var input usecase.SubmitMaintenanceInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	request, err := h.maintenance.Submit(c.Request().Context(), session, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request)
}

// LeaseQRCode handles GET /api/v1/resident/lease/qr.
func (h *ResidentHandler) LeaseQRCode(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	png, err := h.reports.LeaseQRCode(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, contentTypePNG, png)
}
