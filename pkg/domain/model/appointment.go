package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/domain/types"
)

// AppointmentID is a UUID-based identifier for Appointment
type AppointmentID string

// NewAppointmentID generates a new UUID v4 AppointmentID
func NewAppointmentID() AppointmentID {
	return AppointmentID(uuid.New().String())
}

// String returns the string representation of the ID
func (id AppointmentID) String() string {
	return string(id)
}

// Appointment is a scheduled visit. Appointments are create-only; the store
// assigns ID on insert.
type Appointment struct {
	ID        AppointmentID           `json:"id"`
	UserID    string                  `json:"userId"`
	Date      time.Time               `json:"date"`
	Time      string                  `json:"time"` // free-form, e.g. "14:00"
	Type      string                  `json:"type"`
	Status    types.AppointmentStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
}

// AppointmentRequest is the body of a create-appointment request. Pointer
// fields distinguish a missing key from an empty string.
type AppointmentRequest struct {
	UserID    string  `json:"userId" validate:"required"`
	Date      *string `json:"date" validate:"required"`
	Time      *string `json:"time" validate:"required"`
	Type      *string `json:"type" validate:"required"`
	Status    *string `json:"status"`
	CreatedAt *string `json:"created_at"`
}

// dateTimeLayouts are the ISO-8601 forms accepted for date and created_at.
// Values without an offset are interpreted as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseDateTime parses an ISO-8601 date or date-time string
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, goerr.Wrap(ErrInvalidRequest, "invalid date-time format", goerr.V(ValueKey, s))
}

// ToAppointment validates the request and builds an Appointment. createdAt is
// applied when the client did not send created_at; callers pass the time the
// request was decoded, not the time of storage.
func (r *AppointmentRequest) ToAppointment(createdAt time.Time) (*Appointment, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}

	date, err := ParseDateTime(*r.Date)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid date", goerr.V(FieldKey, "date"))
	}

	if r.CreatedAt != nil {
		createdAt, err = ParseDateTime(*r.CreatedAt)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid created_at", goerr.V(FieldKey, "created_at"))
		}
	}

	var status types.AppointmentStatus
	if r.Status != nil {
		status = types.AppointmentStatus(*r.Status)
	}

	return &Appointment{
		UserID:    r.UserID,
		Date:      date,
		Time:      *r.Time,
		Type:      *r.Type,
		Status:    status.Normalize(),
		CreatedAt: createdAt,
	}, nil
}
