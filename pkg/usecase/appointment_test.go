package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/domain/types"
	"github.com/secmon-lab/kairos/pkg/repository/memory"
	"github.com/secmon-lab/kairos/pkg/usecase"
)

func newAppointment(userID string) *model.Appointment {
	return &model.Appointment{
		UserID:    userID,
		Date:      time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC),
		Time:      "14:00",
		Type:      "checkup",
		Status:    types.AppointmentStatusScheduled,
		CreatedAt: time.Now().UTC(),
	}
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("created appointment is listed and confirmed", func(t *testing.T) {
		wf := &mockWorkflow{}
		uc := usecase.New(memory.New(), usecase.WithWorkflow(wf))

		id, err := uc.Appointment.CreateAppointment(ctx, newAppointment("u1"))
		gt.NoError(t, err).Required()
		gt.Value(t, id).NotEqual(model.AppointmentID(""))

		list, err := uc.Appointment.ListAppointments(ctx, "u1")
		gt.NoError(t, err).Required()
		gt.A(t, list).Length(1)
		gt.Value(t, list[0].ID).Equal(id)
		gt.Value(t, list[0].Time).Equal("14:00")

		payloads := wf.Payloads()
		gt.A(t, payloads).Length(1)
		gt.Value(t, payloads[0]["type"]).Equal(any(model.EventAppointmentCreated))
		gt.Value(t, payloads[0]["appointmentId"]).Equal(any(id.String()))
		gt.Value(t, payloads[0]["userId"]).Equal(any("u1"))
	})

	t.Run("duplicates are stored separately", func(t *testing.T) {
		uc := usecase.New(memory.New(), usecase.WithWorkflow(&mockWorkflow{}))

		id1, err := uc.Appointment.CreateAppointment(ctx, newAppointment("u1"))
		gt.NoError(t, err).Required()
		id2, err := uc.Appointment.CreateAppointment(ctx, newAppointment("u1"))
		gt.NoError(t, err).Required()
		gt.Value(t, id1).NotEqual(id2)

		list, err := uc.Appointment.ListAppointments(ctx, "u1")
		gt.NoError(t, err).Required()
		gt.A(t, list).Length(2)
	})

	t.Run("empty userId is rejected", func(t *testing.T) {
		wf := &mockWorkflow{}
		uc := usecase.New(memory.New(), usecase.WithWorkflow(wf))

		_, err := uc.Appointment.CreateAppointment(ctx, newAppointment(""))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, model.ErrInvalidRequest)).True()
		gt.A(t, wf.Payloads()).Length(0)
	})

	t.Run("store failure skips confirmation", func(t *testing.T) {
		wf := &mockWorkflow{}
		uc := usecase.New(&failingRepository{}, usecase.WithWorkflow(wf))

		_, err := uc.Appointment.CreateAppointment(ctx, newAppointment("u1"))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, errStoreDown)).True()
		gt.A(t, wf.Payloads()).Length(0)
	})
}

func TestListAppointments(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user yields empty non-nil list", func(t *testing.T) {
		uc := usecase.New(memory.New())

		list, err := uc.Appointment.ListAppointments(ctx, "nobody")
		gt.NoError(t, err).Required()
		gt.Bool(t, list == nil).False()
		gt.A(t, list).Length(0)
	})

	t.Run("other users are not included", func(t *testing.T) {
		uc := usecase.New(memory.New(), usecase.WithWorkflow(&mockWorkflow{}))

		_, err := uc.Appointment.CreateAppointment(ctx, newAppointment("u1"))
		gt.NoError(t, err).Required()
		_, err = uc.Appointment.CreateAppointment(ctx, newAppointment("u2"))
		gt.NoError(t, err).Required()

		list, err := uc.Appointment.ListAppointments(ctx, "u2")
		gt.NoError(t, err).Required()
		gt.A(t, list).Length(1)
		gt.Value(t, list[0].UserID).Equal("u2")
	})

	t.Run("lookup is capped", func(t *testing.T) {
		uc := usecase.New(memory.New(), usecase.WithWorkflow(&mockWorkflow{}))

		for range usecase.MaxAppointmentsPerLookup + 5 {
			_, err := uc.Appointment.CreateAppointment(ctx, newAppointment("u1"))
			gt.NoError(t, err).Required()
		}

		list, err := uc.Appointment.ListAppointments(ctx, "u1")
		gt.NoError(t, err).Required()
		gt.A(t, list).Length(usecase.MaxAppointmentsPerLookup)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		uc := usecase.New(&failingRepository{})

		_, err := uc.Appointment.ListAppointments(ctx, "u1")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, errStoreDown)).True()
	})
}
