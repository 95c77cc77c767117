// Package core holds the identifiers and the error taxonomy shared by every meshkit package.
//
// Errors come in four classes, each with a sentinel usable with errors.Is:
//
//   - ErrNotFound: an attribute name, mapping key or element index is absent.
//   - ErrTypeMismatch: an attribute exists under the requested name with another kind or type.
//   - ErrInvalidArgument: a tolerance, mask, permutation or index range is malformed.
//   - ErrCorruption: an archive fails version, schema or checksum validation.
package core
