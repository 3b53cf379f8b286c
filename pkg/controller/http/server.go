package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/kairos/pkg/domain/model"
)

// VoiceUseCase handles classified utterances
type VoiceUseCase interface {
	ProcessVoice(ctx context.Context, input *model.VoiceInput) (*model.Classification, error)
}

// AppointmentUseCase handles appointment creation and lookup
type AppointmentUseCase interface {
	CreateAppointment(ctx context.Context, appt *model.Appointment) (model.AppointmentID, error)
	ListAppointments(ctx context.Context, userID string) ([]*model.Appointment, error)
}

type Server struct {
	router      *chi.Mux
	voice       VoiceUseCase
	appointment AppointmentUseCase
	now         func() time.Time
}

type Options func(*Server)

// WithClock overrides the clock used to stamp created_at on decoded requests
func WithClock(now func() time.Time) Options {
	return func(s *Server) {
		s.now = now
	}
}

func New(voice VoiceUseCase, appointment AppointmentUseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:      r,
		voice:       voice,
		appointment: appointment,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Post("/process-voice", s.processVoiceHandler)
	r.Post("/appointments", s.createAppointmentHandler)
	r.Get("/appointments/{userId}", s.getAppointmentsHandler)
	r.Get("/health", healthHandler)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, map[string]string{"status": "ok"})
}
