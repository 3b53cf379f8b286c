package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/domain/types"
)

// ProbeFixtures are the synthetic payloads sent by the probe command
type ProbeFixtures struct {
	Intents       []IntentFixture       `toml:"intent"`
	Notifications []NotificationFixture `toml:"notification"`
}

// IntentFixture is one voice intent payload
type IntentFixture struct {
	Intent string `toml:"intent"`
	UserID string `toml:"user_id"`
	Text   string `toml:"text"`
}

// Validate checks if the IntentFixture is valid
func (f *IntentFixture) Validate() error {
	if _, err := types.ParseIntent(f.Intent); err != nil {
		return goerr.Wrap(ErrInvalidFixture, "unknown intent", goerr.V("intent", f.Intent))
	}
	if f.Text == "" {
		return goerr.Wrap(ErrInvalidFixture, "text is required", goerr.V("intent", f.Intent))
	}
	return nil
}

// NotificationFixture is one appointment notification payload. The
// appointment date is DaysAhead days after the probe runs.
type NotificationFixture struct {
	Type            string `toml:"type"`
	AppointmentID   string `toml:"appointment_id"`
	UserID          string `toml:"user_id"`
	DaysAhead       int    `toml:"days_ahead"`
	Time            string `toml:"time"`
	AppointmentType string `toml:"appointment_type"`
	Status          string `toml:"status"`
}

// Validate checks if the NotificationFixture is valid
func (f *NotificationFixture) Validate() error {
	if f.Type == "" {
		return goerr.Wrap(ErrInvalidFixture, "notification type is required")
	}
	if f.DaysAhead < 0 {
		return goerr.Wrap(ErrInvalidFixture, "days_ahead must not be negative",
			goerr.V("type", f.Type), goerr.V("days_ahead", f.DaysAhead))
	}
	return nil
}

// Payload builds the notification payload relative to now
func (f *NotificationFixture) Payload(now time.Time) model.WorkflowPayload {
	status := types.AppointmentStatus(f.Status).Normalize()
	return model.WorkflowPayload{
		"type":          f.Type,
		"appointmentId": f.AppointmentID,
		"userId":        f.UserID,
		"data": map[string]any{
			"date":   now.AddDate(0, 0, f.DaysAhead).Format(time.DateOnly),
			"time":   f.Time,
			"type":   f.AppointmentType,
			"status": status.String(),
		},
	}
}

// Validate checks every fixture
func (p *ProbeFixtures) Validate() error {
	for i, f := range p.Intents {
		if err := f.Validate(); err != nil {
			return goerr.Wrap(err, "invalid intent fixture", goerr.V(FixtureIndexKey, i))
		}
	}
	for i, f := range p.Notifications {
		if err := f.Validate(); err != nil {
			return goerr.Wrap(err, "invalid notification fixture", goerr.V(FixtureIndexKey, i))
		}
	}
	return nil
}

// IntentPayloads returns the voice intent payloads in fixture order
func (p *ProbeFixtures) IntentPayloads() []model.WorkflowPayload {
	payloads := make([]model.WorkflowPayload, len(p.Intents))
	for i, f := range p.Intents {
		userID := f.UserID
		payloads[i] = model.NewVoiceIntentPayload(types.Intent(f.Intent), &userID, f.Text)
	}
	return payloads
}

// NotificationPayloads returns the notification payloads in fixture order
func (p *ProbeFixtures) NotificationPayloads(now time.Time) []model.WorkflowPayload {
	payloads := make([]model.WorkflowPayload, len(p.Notifications))
	for i, f := range p.Notifications {
		payloads[i] = f.Payload(now)
	}
	return payloads
}

// DefaultProbeFixtures returns the built-in probe payloads
func DefaultProbeFixtures() *ProbeFixtures {
	return &ProbeFixtures{
		Intents: []IntentFixture{
			{
				Intent: types.IntentBooking.String(),
				UserID: "test-user",
				Text:   "I want to book an appointment for tomorrow at 2pm",
			},
			{
				Intent: types.IntentCancel.String(),
				UserID: "test-user",
				Text:   "I need to cancel my appointment",
			},
			{
				Intent: types.IntentReschedule.String(),
				UserID: "test-user",
				Text:   "Can I reschedule my appointment to Friday?",
			},
		},
		Notifications: []NotificationFixture{
			{
				Type:            model.EventAppointmentCreated,
				AppointmentID:   "test-appointment-id",
				UserID:          "test-user-id",
				DaysAhead:       2,
				Time:            "14:00",
				AppointmentType: "Initial Consultation",
				Status:          types.AppointmentStatusScheduled.String(),
			},
			{
				Type:            "appointment_reminder",
				AppointmentID:   "test-appointment-id",
				UserID:          "test-user-id",
				DaysAhead:       1,
				Time:            "10:30",
				AppointmentType: "Follow-up",
				Status:          types.AppointmentStatusScheduled.String(),
			},
		},
	}
}

// LoadProbeFixtures loads probe fixtures from a TOML file. Sections missing
// from the file fall back to the built-in payloads.
func LoadProbeFixtures(path string) (*ProbeFixtures, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrFixtureNotFound, "fixture file does not exist", goerr.V(FixturePathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read fixture file", goerr.V(FixturePathKey, path))
	}

	var fixtures ProbeFixtures
	if err := toml.Unmarshal(data, &fixtures); err != nil {
		return nil, goerr.Wrap(ErrInvalidFixture, "failed to parse TOML fixture",
			goerr.V(FixturePathKey, path), goerr.V("cause", err.Error()))
	}

	defaults := DefaultProbeFixtures()
	if len(fixtures.Intents) == 0 {
		fixtures.Intents = defaults.Intents
	}
	if len(fixtures.Notifications) == 0 {
		fixtures.Notifications = defaults.Notifications
	}

	if err := fixtures.Validate(); err != nil {
		return nil, goerr.Wrap(err, "fixture validation failed", goerr.V(FixturePathKey, path))
	}

	return &fixtures, nil
}
