package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "suiteprop/internal/delivery/context"
	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/domain/service"
	"suiteprop/internal/errors"
	"suiteprop/internal/usecase"

	"github.com/google/uuid"
)

// maintenanceService implements the MaintenanceUsecase interface.
type maintenanceService struct {
	directory usecase.DirectoryUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(
	directory usecase.DirectoryUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MaintenanceUsecase {
	return &maintenanceService{
		directory: directory,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *maintenanceService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit hands the ticket to whoever owns the ticket store via an event.
func (srv *maintenanceService) Submit(ctx context.Context, session entity.Session, input *usecase.SubmitMaintenanceInput) (*entity.MaintenanceRequest, error) {
	if err := requireResident(session); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	priority := entity.MaintenancePriority(input.Priority)
	switch {
	case title == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("title must not be blank")
	case description == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("description must not be blank")
	case !priority.IsValid():
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown priority " + input.Priority)
	}

	unit, err := srv.directory.ResidentUnit(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, errors.Wrap(domainerrors.ErrUnitNotAssigned, "cannot file a maintenance request")
	}

	request := &entity.MaintenanceRequest{
		ID:          "mr-" + uuid.NewString(),
		UnitID:      unit.ID,
		ResidentID:  session.UserID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      entity.MaintenanceStatusPending,
		CreatedAt:   entity.DateOf(srv.now()),
	}

	event := &service.MaintenanceRequestedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Request:   request,
	}
	if err := srv.publisher.PublishMaintenanceRequested(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to publish maintenance request")
	}

	srv.getLogger(ctx).InfoContext(ctx, "Maintenance request submitted",
		slog.String("maintenanceRequestID", request.ID),
		slog.String("unitID", unit.ID),
		slog.String("priority", string(priority)),
	)

	return request, nil
}
