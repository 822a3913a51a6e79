package service

import "errors"

var (
	ErrEmptyDeviceID = errors.New("no device ID provided")
	ErrUnknownDevice = errors.New("device is not registered")

	ErrInvalidRegistration = errors.New("invalid registration data")

	// ErrTooManyConflicts is surfaced after the bounded chain-conflict
	// retry budget is exhausted; the exchange failed transiently and the
	// device should retry later.
	ErrTooManyConflicts = errors.New("sync exchange retries exhausted")
)
