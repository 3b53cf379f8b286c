package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/domain/model"
)

type appointmentRepository struct {
	mu     sync.RWMutex
	byUser map[string][]*model.Appointment
}

func newAppointmentRepository() *appointmentRepository {
	return &appointmentRepository{
		byUser: make(map[string][]*model.Appointment),
	}
}

func copyAppointment(a *model.Appointment) *model.Appointment {
	copied := *a
	return &copied
}

func (r *appointmentRepository) Create(ctx context.Context, appt *model.Appointment) (*model.Appointment, error) {
	if appt.UserID == "" {
		return nil, goerr.New("userId is required to store appointment")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyAppointment(appt)
	created.ID = model.NewAppointmentID()
	created.Status = created.Status.Normalize()

	r.byUser[created.UserID] = append(r.byUser[created.UserID], created)
	return copyAppointment(created), nil
}

func (r *appointmentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.byUser[userID]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	result := make([]*model.Appointment, 0, len(all))
	for _, a := range all {
		result = append(result, copyAppointment(a))
	}
	return result, nil
}
