package people

import "errors"

var (
	// ErrValidation marks a record that does not meet the person schema.
	ErrValidation = errors.New("invalid person record")

	// ErrDateParse marks date text that is not a real DD.MM.YYYY date.
	ErrDateParse = errors.New("invalid date of birth")

	// ErrMalformedFile means the data file is not a JSON array.
	ErrMalformedFile = errors.New("malformed data file")
)
