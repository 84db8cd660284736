package dbconf

import "errors"

// Errors returned by WriteFile for entries that Parse could not read back.
var (
	// ErrInvalidKey indicates an empty key or one containing '=' or a newline.
	ErrInvalidKey = errors.New("invalid config key")
	// ErrInvalidValue indicates a value spanning several lines.
	ErrInvalidValue = errors.New("invalid config value")
)
