package model

import "github.com/secmon-lab/kairos/pkg/domain/types"

const (
	// ClassificationConfidence is reported for every successful classification
	ClassificationConfidence = 0.9

	// DegradedResponse is returned when the language model call fails
	DegradedResponse = "I'm sorry, I couldn't process that request."
)

// Classification is the result of classifying an utterance
type Classification struct {
	Intent     types.Intent `json:"intent"`
	Response   string       `json:"response"`
	Confidence float64      `json:"confidence"`
}

// NewDegradedClassification returns the fallback result used after a model failure
func NewDegradedClassification() *Classification {
	return &Classification{
		Intent:     types.IntentUnknown,
		Response:   DegradedResponse,
		Confidence: 0.0,
	}
}
