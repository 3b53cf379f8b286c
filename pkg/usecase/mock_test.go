package usecase_test

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/domain/interfaces"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/domain/types"
)

type mockClassifier struct {
	result *model.Classification
	texts  []string
}

func (m *mockClassifier) Classify(ctx context.Context, text string) *model.Classification {
	m.texts = append(m.texts, text)
	if m.result != nil {
		return m.result
	}
	return &model.Classification{
		Intent:     types.IntentFromText(text),
		Response:   "ok",
		Confidence: model.ClassificationConfidence,
	}
}

type mockWorkflow struct {
	mu       sync.Mutex
	payloads []model.WorkflowPayload
}

func (m *mockWorkflow) Dispatch(ctx context.Context, payload model.WorkflowPayload) *model.DispatchResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads = append(m.payloads, payload)
	return &model.DispatchResult{Delivered: true, StatusCode: 200}
}

func (m *mockWorkflow) Payloads() []model.WorkflowPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.WorkflowPayload(nil), m.payloads...)
}

var errStoreDown = goerr.New("store is down")

// failingRepository fails every write and read
type failingRepository struct{}

func (r *failingRepository) Conversation() interfaces.ConversationRepository {
	return failingConversationRepository{}
}

func (r *failingRepository) Appointment() interfaces.AppointmentRepository {
	return failingAppointmentRepository{}
}

func (r *failingRepository) Close() error { return nil }

type failingConversationRepository struct{}

func (failingConversationRepository) Create(ctx context.Context, conv *model.Conversation) error {
	return errStoreDown
}

type failingAppointmentRepository struct{}

func (failingAppointmentRepository) Create(ctx context.Context, appt *model.Appointment) (*model.Appointment, error) {
	return nil, errStoreDown
}

func (failingAppointmentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Appointment, error) {
	return nil, errStoreDown
}
