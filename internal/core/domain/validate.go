package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"
)

// validate is the shared validator instance. validator.Validate is safe for
// concurrent use and caches struct metadata, so one instance serves the
// whole process.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs tag-based validation on v.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return zerr.Wrap(err, "validation failed")
	}
	return nil
}

// ValidateLine checks a 1-based line number.
func ValidateLine(line int) error {
	if line < 1 {
		return zerr.With(ErrInvalidLine, "line", line)
	}
	return nil
}

// ValidateColumn checks a 1-based column number.
func ValidateColumn(column int) error {
	if column < 1 {
		return zerr.With(ErrInvalidColumn, "column", column)
	}
	return nil
}

// ValidateTTL checks a cache time-to-live.
func ValidateTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return zerr.With(ErrInvalidTTL, "ttl", ttl.String())
	}
	return nil
}

// ValidateWindow checks a debounce/throttle/batch time window.
func ValidateWindow(window time.Duration) error {
	if window <= 0 {
		return zerr.With(ErrInvalidWindow, "window", window.String())
	}
	return nil
}

// ValidateContext checks a jump target before any external effect.
func ValidateContext(target ProjectContext) error {
	if target.FilePath == "" {
		return ErrEmptyFilePath
	}
	if err := ValidateLine(target.Line); err != nil {
		return err
	}
	return ValidateColumn(target.Column)
}
