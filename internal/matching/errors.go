package matching

import "fmt"

// ValidationError marks a single profile as unusable for matching.
// In batch mode the offending candidate is skipped and reported; in
// single-pair mode it propagates to the caller.
type ValidationError struct {
	ProfileID uint64
	Reason    string
}

func newValidationError(id uint64, reason string) *ValidationError {
	return &ValidationError{ProfileID: id, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile %d: %s", e.ProfileID, e.Reason)
}

// ConfigError marks the shared matching configuration as unusable.
// It is fatal to a whole batch run and is surfaced before any scoring.
type ConfigError struct {
	Reason string
}

func newConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	return "invalid matching config: " + e.Reason
}
