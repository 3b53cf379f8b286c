package memory

import (
	"github.com/secmon-lab/kairos/pkg/domain/interfaces"
	"github.com/secmon-lab/kairos/pkg/domain/model"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-process document store. Data is lost when the process exits.
type Memory struct {
	conversation *conversationRepository
	appointment  *appointmentRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		conversation: newConversationRepository(),
		appointment:  newAppointmentRepository(),
	}
}

func (m *Memory) Conversation() interfaces.ConversationRepository {
	return m.conversation
}

func (m *Memory) Appointment() interfaces.AppointmentRepository {
	return m.appointment
}

// Conversations returns copies of all stored conversations in insertion order
func (m *Memory) Conversations() []*model.Conversation {
	return m.conversation.all()
}

func (m *Memory) Close() error {
	return nil
}
