// SPDX-License-Identifier: MIT
// Package: epochal/builder
//
// errors.go — sentinel errors for the resolution engine.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context (field names, values) via %w wrapping;
//     sentinels themselves never carry formatted parameters.

package builder

import "errors"

// ErrConflictingFieldValues indicates two resolved canonical dates disagreed
// during resolution. Terminal: the builder enters the Contradiction phase.
// The wrapping message names both disagreeing sources.
// Usage: if errors.Is(err, ErrConflictingFieldValues) { /* inputs lie */ }.
var ErrConflictingFieldValues = errors.New("builder: conflicting field values")

// ErrInsufficientFieldData indicates extraction of a canonical date was
// attempted before resolution derived one.
// Usage: if errors.Is(err, ErrInsufficientFieldData) { /* add more fields */ }.
var ErrInsufficientFieldData = errors.New("builder: insufficient field data")

// ErrNilField indicates Set was called with a nil field key.
var ErrNilField = errors.New("builder: nil field")

// ErrBuilderFinished indicates a mutation after the builder reached a
// terminal phase (Resolved or Contradiction); builders are single-use.
var ErrBuilderFinished = errors.New("builder: already finished")
