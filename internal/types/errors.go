package types

import "errors"

// Error taxonomy for a sweep. Only ErrSweepConfigInvalid ever reaches a caller;
// the others are absorbed where they occur and only show up in logs.
var (
	ErrLocalAddressUnavailable = errors.New("local address unavailable")
	ErrProbeFailure            = errors.New("probe failure")
	ErrResolutionFailure       = errors.New("resolution failure")
	ErrSweepConfigInvalid      = errors.New("invalid sweep configuration")
)
