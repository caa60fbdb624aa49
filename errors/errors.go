package errors

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	Is     = errors.Is
	As     = errors.As
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Errorf = fmt.Errorf
	New    = errors.New
	Cause  = errors.Cause
)

func Log(err error, fmt string, args ...any) {
	if err != nil {
		log.Error().Err(err).Msgf(fmt, args...)
	}
}

func Chain(err error, cause error) error {
	return Errorf("%w: %w", err, cause)
}
