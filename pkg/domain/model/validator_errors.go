package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrInvalidRequest = goerr.New("invalid request")
)

// Context keys for error values
const (
	FieldKey = "field"
	TagKey   = "tag"
	ValueKey = "value"
)
