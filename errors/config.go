package errors

import (
	"fmt"
)

// ErrConfig matches every ConfigError via Is.
var ErrConfig = New("invalid configuration")

// ConfigError reports a configuration mistake detected at construction time.
// It is never retried, caller must fix the configuration and construct again.
type ConfigError struct {
	Field  string
	Reason string
}

func (e ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrConfig, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConfig, e.Field, e.Reason)
}

func (e ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func NewConfigError(field string, reason string, args ...any) error {
	return ConfigError{
		Field:  field,
		Reason: fmt.Sprintf(reason, args...),
	}
}
