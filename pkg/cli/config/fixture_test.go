package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/kairos/pkg/cli/config"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestDefaultProbeFixtures(t *testing.T) {
	fixtures := config.DefaultProbeFixtures()
	gt.NoError(t, fixtures.Validate())

	intents := fixtures.IntentPayloads()
	gt.A(t, intents).Length(3)
	gt.Value(t, intents[0]["intent"]).Equal(any("booking"))
	gt.Value(t, intents[1]["intent"]).Equal(any("cancel"))
	gt.Value(t, intents[2]["intent"]).Equal(any("reschedule"))
	gt.Value(t, intents[2]["userId"]).Equal(any("test-user"))

	now := time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC)
	notifications := fixtures.NotificationPayloads(now)
	gt.A(t, notifications).Length(2)
	gt.Value(t, notifications[0]["type"]).Equal(any("appointment_created"))
	gt.Value(t, notifications[1]["type"]).Equal(any("appointment_reminder"))

	created, ok := notifications[0]["data"].(map[string]any)
	gt.Bool(t, ok).True()
	gt.Value(t, created["date"]).Equal(any("2025-01-01"))
	gt.Value(t, created["time"]).Equal(any("14:00"))
	gt.Value(t, created["type"]).Equal(any("Initial Consultation"))
	gt.Value(t, created["status"]).Equal(any("scheduled"))

	reminder, ok := notifications[1]["data"].(map[string]any)
	gt.Bool(t, ok).True()
	gt.Value(t, reminder["date"]).Equal(any("2024-12-31"))
	gt.Value(t, reminder["time"]).Equal(any("10:30"))
}

func TestLoadProbeFixtures(t *testing.T) {
	t.Run("loads intents and keeps default notifications", func(t *testing.T) {
		path := writeFixture(t, `
[[intent]]
intent = "cancel"
user_id = "u42"
text = "cancel my visit on Monday"
`)
		fixtures, err := config.LoadProbeFixtures(path)
		gt.NoError(t, err).Required()
		gt.A(t, fixtures.Intents).Length(1)
		gt.Value(t, fixtures.Intents[0].UserID).Equal("u42")
		gt.A(t, fixtures.Notifications).Length(2)
	})

	t.Run("loads notifications with default status", func(t *testing.T) {
		path := writeFixture(t, `
[[notification]]
type = "appointment_cancelled"
appointment_id = "a1"
user_id = "u1"
days_ahead = 3
time = "09:00"
appointment_type = "Checkup"
`)
		fixtures, err := config.LoadProbeFixtures(path)
		gt.NoError(t, err).Required()
		gt.A(t, fixtures.Notifications).Length(1)

		payloads := fixtures.NotificationPayloads(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		data, ok := payloads[0]["data"].(map[string]any)
		gt.Bool(t, ok).True()
		gt.Value(t, data["date"]).Equal(any("2024-01-04"))
		gt.Value(t, data["status"]).Equal(any("scheduled"))
	})

	t.Run("unknown intent is rejected", func(t *testing.T) {
		path := writeFixture(t, `
[[intent]]
intent = "complain"
text = "this is bad"
`)
		_, err := config.LoadProbeFixtures(path)
		gt.Error(t, err).Is(config.ErrInvalidFixture)
	})

	t.Run("broken TOML is rejected", func(t *testing.T) {
		path := writeFixture(t, `[[intent]`)
		_, err := config.LoadProbeFixtures(path)
		gt.Error(t, err).Is(config.ErrInvalidFixture)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadProbeFixtures(filepath.Join(t.TempDir(), "nope.toml"))
		gt.Error(t, err).Is(config.ErrFixtureNotFound)
	})
}
