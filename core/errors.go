package core

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound is returned when an attribute, mapping key or element is absent.
	ErrNotFound = errors.New("not found")

	// ErrTypeMismatch is returned when an attribute already exists under a name
	// with an incompatible kind or value type.
	ErrTypeMismatch = errors.New("duplicate or type mismatch")

	// ErrInvalidArgument is returned for malformed tolerances, masks,
	// permutations and index ranges.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorruption is returned when persisted data fails validation.
	ErrCorruption = errors.New("corruption")
)

// NotFoundf returns an error marked with ErrNotFound.
func NotFoundf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}

// TypeMismatchf returns an error marked with ErrTypeMismatch.
func TypeMismatchf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrTypeMismatch)
}

// InvalidArgumentf returns an error marked with ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}

// Corruptionf returns an error marked with ErrCorruption.
func Corruptionf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrCorruption)
}

// WrapCorruption marks err as ErrCorruption and prefixes it with msg.
// It returns nil if err is nil.
func WrapCorruption(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, msg), ErrCorruption)
}

// IndexOutOfRange returns a NotFound error for an index checked against size.
func IndexOutOfRange(what string, i Index, size int) error {
	return errors.WithDetailf(
		NotFoundf("%s %d out of range", what, uint32(i)),
		"size: %d", size,
	)
}
