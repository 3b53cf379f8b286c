package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidConfig     = goerr.New("invalid configuration")
	ErrMissingWebhookURL = goerr.New("workflow webhook URL is not configured")
	ErrInvalidFixture    = goerr.New("invalid probe fixture")
	ErrFixtureNotFound   = goerr.New("probe fixture file not found")
)

// Context keys for error values
const (
	FixturePathKey  = "fixture_path"
	FixtureIndexKey = "fixture_index"
)
