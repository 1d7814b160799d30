package types

import "github.com/m-mizutani/goerr/v2"

// Version is the application version, overridden at build time via ldflags.
var Version = "dev"

// UnknownVersionToken is used when a URL carries no recognizable tag segment.
const UnknownVersionToken = "unknown"

// Terminal error classes. None of these are retried; they decide the exit
// status and message of the current invocation only.
var (
	// ErrDeclined is returned when the operator rejects an overwrite prompt.
	ErrDeclined = goerr.New("overwrite declined by operator")

	// ErrInvalidArgument is returned for missing or malformed CLI input.
	ErrInvalidArgument = goerr.New("invalid argument")

	// ErrTransferFailed is returned when a download or upload did not complete.
	ErrTransferFailed = goerr.New("transfer failed")
)
