package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInternal        = errors.New("internal error")

	ErrLocalesNotString   = errors.New("locales must be a string")
	ErrOptionsNotObject   = errors.New("options must be an object")
	ErrQuoteLength        = errors.New("quote must be length 1 or 2")
	ErrQuoteNotString     = errors.New("quote elements must be strings")
	ErrSeparatorNotString = errors.New("separator must be a string")
	ErrUndefinedSeverity  = errors.New("undefined severity tag")
)

// Invalid marks err as an invalid construction argument
func Invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

// Internal marks err as a defect inside the package
func Internal(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
