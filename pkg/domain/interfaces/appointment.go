package interfaces

import (
	"context"

	"github.com/secmon-lab/kairos/pkg/domain/model"
)

// AppointmentRepository defines the interface for Appointment persistence
type AppointmentRepository interface {
	// Create stores an appointment and returns it with the generated ID.
	// Duplicates are permitted.
	Create(ctx context.Context, appt *model.Appointment) (*model.Appointment, error)

	// ListByUser returns at most limit appointments of the user in insertion
	// order. An unknown user yields an empty slice.
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.Appointment, error)
}
