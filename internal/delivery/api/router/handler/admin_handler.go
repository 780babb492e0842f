package handler

import (
	"fmt"
	"net/http"
	"time"

	"suiteprop/config"
	"suiteprop/internal/delivery/api/response"
	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/usecase"
	"suiteprop/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	headerContentSHA256 = "X-Content-Sha256"
	maxRevenueMonths    = 120
)

// AdminHandler serves the admin portal.
type AdminHandler struct {
	portal        usecase.PortalUsecase
	revenue       usecase.RevenueUsecase
	reports       usecase.ReportUsecase
	revenueMonths int
	now           func() time.Time
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
// revenue.months in cfg sets the series length when a request names none.
func NewAdminHandler(cfg *config.Config, portal usecase.PortalUsecase, revenue usecase.RevenueUsecase, reports usecase.ReportUsecase) *AdminHandler {
	months := usecase.DefaultRevenueMonths
	if cfg != nil && cfg.Revenue != nil && cfg.Revenue.Months > 0 {
		months = cfg.Revenue.Months
	}

	return &AdminHandler{
		portal:        portal,
		revenue:       revenue,
		reports:       reports,
		revenueMonths: months,
		now:           time.Now,
	}
}

// Dashboard handles GET /api/v1/admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	summary, err := h.portal.AdminSummary(c.Request().Context(), session, h.now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// Revenue handles GET /api/v1/admin/revenue?ref=YYYY-MM-DD&months=N.
// ref defaults to today. months 0 or absent means revenue.months from config.
func (h *AdminHandler) Revenue(c echo.Context) error {
	var refParam string
	var months int
	if err := echo.QueryParamsBinder(c).
		String("ref", &refParam).
		Int("months", &months).
		BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("months must be an integer"))
	}
	if months < 0 || months > maxRevenueMonths {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("months must be between 0 and %d", maxRevenueMonths)))
	}
	if months == 0 {
		months = h.revenueMonths
	}

	ref := h.now()
	if refParam != "" {
		date, err := entity.ParseDate(refParam)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("ref must be YYYY-MM-DD"))
		}
		ref = date.Time()
	}

	series, err := h.revenue.MonthlyRentSeries(c.Request().Context(), ref, months)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, series)
}

// Residents handles GET /api/v1/admin/residents?status=&search=.
func (h *AdminHandler) Residents(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var filter usecase.RosterFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "Invalid roster filter")
	}

	roster, err := h.portal.ResidentRoster(c.Request().Context(), session, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, roster)
}

// Documents handles GET /api/v1/admin/documents?type=&search=.
func (h *AdminHandler) Documents(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var filter usecase.DocumentFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "Invalid document filter")
	}

	documents, err := h.portal.ListDocuments(c.Request().Context(), session, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, documents)
}

// ExportBills handles GET /api/v1/admin/bills/export with the bill list filters.
func (h *AdminHandler) ExportBills(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var filter usecase.BillFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "Invalid bill filter")
	}

	file, err := h.reports.ExportBills(c.Request().Context(), session, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Response().Header().Set(headerContentSHA256, util.Checksum(file.Content))

	return c.Blob(http.StatusOK, file.ContentType, file.Content)
}
