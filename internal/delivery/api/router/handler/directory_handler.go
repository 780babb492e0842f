package handler

import (
	"net/http"

	"suiteprop/internal/delivery/api/response"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler serves the role-scoped collections both portals read.
type DirectoryHandler struct {
	directory usecase.DirectoryUsecase
	portal    usecase.PortalUsecase
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(directory usecase.DirectoryUsecase, portal usecase.PortalUsecase) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, portal: portal}
}

// Units handles GET /api/v1/units.
func (h *DirectoryHandler) Units(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	units, err := h.directory.UnitsVisibleTo(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, units)
}

// Bills handles GET /api/v1/bills?status=&type=&search=.
func (h *DirectoryHandler) Bills(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var filter usecase.BillFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "Invalid bill filter")
	}

	bills, err := h.portal.ListBills(c.Request().Context(), session, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bills)
}

// MaintenanceRequests handles GET /api/v1/maintenance?status=&priority=&search=.
func (h *DirectoryHandler) MaintenanceRequests(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var filter usecase.MaintenanceFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "Invalid maintenance filter")
	}

	requests, err := h.portal.ListMaintenanceRequests(c.Request().Context(), session, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// Lease handles GET /api/v1/lease. Callers without a lease, admins included, get 404.
func (h *DirectoryHandler) Lease(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	lease, err := h.directory.LeaseVisibleTo(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}
	if lease == nil {
		return errors.WithStack(domainerrors.ErrLeaseNotFound)
	}

	return response.Success(c, http.StatusOK, lease)
}
