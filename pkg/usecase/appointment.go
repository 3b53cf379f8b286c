package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/domain/interfaces"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/service/workflow"
	"github.com/secmon-lab/kairos/pkg/utils/logging"
)

// MaxAppointmentsPerLookup caps the number of appointments returned per user
const MaxAppointmentsPerLookup = 100

type AppointmentUseCase struct {
	repo     interfaces.Repository
	workflow workflow.Service
}

func NewAppointmentUseCase(repo interfaces.Repository, workflowSvc workflow.Service) *AppointmentUseCase {
	return &AppointmentUseCase{
		repo:     repo,
		workflow: workflowSvc,
	}
}

// CreateAppointment stores the appointment and sends the confirmation
// payload. The confirmation is not sent when the insert fails.
func (uc *AppointmentUseCase) CreateAppointment(ctx context.Context, appt *model.Appointment) (model.AppointmentID, error) {
	if appt.UserID == "" {
		return "", goerr.Wrap(model.ErrInvalidRequest, "userId is required")
	}

	created, err := uc.repo.Appointment().Create(ctx, appt)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create appointment", goerr.V("user_id", appt.UserID))
	}

	dispatched := uc.workflow.Dispatch(ctx, model.NewAppointmentCreatedPayload(created.ID, created.UserID))
	logging.From(ctx).Debug("appointment confirmation dispatched",
		"appointment_id", created.ID,
		"delivered", dispatched.Delivered,
		"failure", dispatched.Failure)

	return created.ID, nil
}

// ListAppointments returns up to MaxAppointmentsPerLookup appointments of the user
func (uc *AppointmentUseCase) ListAppointments(ctx context.Context, userID string) ([]*model.Appointment, error) {
	appointments, err := uc.repo.Appointment().ListByUser(ctx, userID, MaxAppointmentsPerLookup)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list appointments", goerr.V("user_id", userID))
	}
	if appointments == nil {
		appointments = []*model.Appointment{}
	}
	return appointments, nil
}
