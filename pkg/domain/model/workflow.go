package model

import "github.com/secmon-lab/kairos/pkg/domain/types"

// WorkflowPayload is the JSON object forwarded to the workflow webhook.
// Its shape is decided by the caller.
type WorkflowPayload map[string]any

// EventAppointmentCreated is the type of the appointment confirmation payload
const EventAppointmentCreated = "appointment_created"

// NewVoiceIntentPayload builds {intent, userId, text}. userId is null only
// when the caller sent no userId; an empty string is forwarded as is.
func NewVoiceIntentPayload(intent types.Intent, userID *string, text string) WorkflowPayload {
	var uid any
	if userID != nil {
		uid = *userID
	}
	return WorkflowPayload{
		"intent": intent.String(),
		"userId": uid,
		"text":   text,
	}
}

// NewAppointmentCreatedPayload builds {type, appointmentId, userId}
func NewAppointmentCreatedPayload(id AppointmentID, userID string) WorkflowPayload {
	return WorkflowPayload{
		"type":          EventAppointmentCreated,
		"appointmentId": id.String(),
		"userId":        userID,
	}
}

// DispatchFailure describes why a dispatch was not delivered
type DispatchFailure string

const (
	DispatchFailureNone          DispatchFailure = ""
	DispatchFailureNotConfigured DispatchFailure = "not_configured"
	DispatchFailureTimeout       DispatchFailure = "timeout"
	DispatchFailureBadStatus     DispatchFailure = "bad_status"
	DispatchFailureTransport     DispatchFailure = "transport"
	DispatchFailureDecode        DispatchFailure = "decode"
)

// DispatchResult is the outcome of one webhook call. Response holds the
// decoded JSON body when Delivered is true.
type DispatchResult struct {
	Delivered  bool
	StatusCode int
	Response   any
	Body       string // raw body, kept for non-200 responses
	Failure    DispatchFailure
	Err        error
}

// NewDispatchFailure returns a failed result
func NewDispatchFailure(failure DispatchFailure, err error) *DispatchResult {
	return &DispatchResult{
		Failure: failure,
		Err:     err,
	}
}
