package model

import "github.com/m-mizutani/goerr/v2"

// ErrDuplicateID is returned when a record with the same ID already exists
var ErrDuplicateID = goerr.New("duplicate record ID")
