package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/kairos/pkg/domain/model"
)

type createAppointmentResponse struct {
	ID string `json:"id"`
}

func (s *Server) createAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	r = detachedContext(r)
	ctx := r.Context()

	var req model.AppointmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(ctx, w, err)
		return
	}
	decodedAt := s.now().UTC()

	appt, err := req.ToAppointment(decodedAt)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	id, err := s.appointment.CreateAppointment(ctx, appt)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, createAppointmentResponse{ID: id.String()})
}

func (s *Server) getAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	r = detachedContext(r)
	ctx := r.Context()
	userID := chi.URLParam(r, "userId")

	appointments, err := s.appointment.ListAppointments(ctx, userID)
	if err != nil {
		handleError(ctx, w, err)
		return
	}
	if appointments == nil {
		appointments = []*model.Appointment{}
	}

	writeJSON(ctx, w, appointments)
}
