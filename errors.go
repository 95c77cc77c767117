package meshkit

import (
	"io"
	"io/fs"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/meshkit/core"
)

var (
	// ErrNotFound is returned when an attribute, element or file is absent.
	ErrNotFound = core.ErrNotFound

	// ErrTypeMismatch is returned when an attribute exists with another kind
	// or value type.
	ErrTypeMismatch = core.ErrTypeMismatch

	// ErrInvalidArgument is returned for malformed arguments.
	ErrInvalidArgument = core.ErrInvalidArgument

	// ErrCorruption is returned when an archive fails validation.
	ErrCorruption = core.ErrCorruption
)

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsTypeMismatch reports whether err is an ErrTypeMismatch.
func IsTypeMismatch(err error) bool { return errors.Is(err, ErrTypeMismatch) }

// IsInvalidArgument reports whether err is an ErrInvalidArgument.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// IsCorruption reports whether err is an ErrCorruption.
func IsCorruption(err error) bool { return errors.Is(err, ErrCorruption) }

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if IsNotFound(err) || IsTypeMismatch(err) || IsInvalidArgument(err) || IsCorruption(err) {
		return err
	}

	// File errors.
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Mark(err, ErrNotFound)
	}

	// A truncated archive.
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return errors.Mark(err, ErrCorruption)
	}

	return err
}
