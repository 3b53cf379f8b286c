package interfaces

// Repository is the document store facade for conversations and appointments
type Repository interface {
	Conversation() ConversationRepository
	Appointment() AppointmentRepository

	Close() error
}
