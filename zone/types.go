// SPDX-License-Identifier: MIT
// Package: epochal/zone
//
// types.go — the ID value object, the Provider collaborator contract and
// the package's sentinel errors.

package zone

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Sentinel errors for zone-identifier operations.
var (
	// ErrInvalidZoneID indicates a malformed identifier string.
	ErrInvalidZoneID = errors.New("zone: invalid zone identifier")

	// ErrUnknownZoneID indicates the bound provider has no rules for the
	// identifier.
	ErrUnknownZoneID = errors.New("zone: unknown zone identifier")

	// ErrNoProvider indicates no rules provider has been registered yet.
	ErrNoProvider = errors.New("zone: no rules provider registered")

	// ErrZoneIDTooLong indicates an identifier exceeding the 65535-byte
	// limit of the length-prefixed wire form.
	ErrZoneIDTooLong = errors.New("zone: identifier too long to serialize")

	// ErrZoneSerialization indicates a malformed persisted identifier.
	ErrZoneSerialization = errors.New("zone: malformed serialized identifier")

	// ErrRulesUnavailable indicates a provider could not load or parse its
	// rule source.
	ErrRulesUnavailable = errors.New("zone: rules unavailable")
)

// RuleSet is the opaque set of offset-transition rules for one zone. The
// framework transports rule sets, it never interprets them; Zone names the
// identifier the rules belong to.
type RuleSet interface {
	Zone() string
}

// Provider maps region identifiers to rule sets. Implementations must
// behave as a pure function of the identifier once rules are published:
// repeated lookups for the same id return equivalent rule sets. Providers
// may be queried concurrently.
type Provider interface {
	// Rules returns the rule set for id.
	//
	// Errors:
	//   - ErrUnknownZoneID (wrapped) for an id the provider does not know.
	Rules(id string) (RuleSet, error)

	// IsValid reports whether the provider knows id.
	IsValid(id string) bool
}

// ID is an immutable time-zone identifier. It references — never owns — the
// externally lifecycled rules keyed by its string; construction via
// OfUnchecked performs no provider lookup at all.
type ID struct {
	id string
}

// OfUnchecked constructs an ID from its string form, checking only the
// identifier syntax. No provider validation happens; rules bind lazily on
// the first Rules or IsValid call. Intended for deserialization and for
// systems that fetch rules remotely.
//
// Errors:
//   - ErrInvalidZoneID for an empty or syntactically malformed identifier.
func OfUnchecked(id string) (ID, error) {
	if err := checkSyntax(id); err != nil {
		return ID{}, err
	}

	return ID{id: id}, nil
}

// Of constructs an ID and validates it against the registered provider.
//
// Errors:
//   - ErrInvalidZoneID for malformed syntax.
//   - ErrNoProvider if no provider is registered.
//   - ErrUnknownZoneID if the provider does not know the identifier.
func Of(id string) (ID, error) {
	z, err := OfUnchecked(id)
	if err != nil {
		return ID{}, err
	}
	if _, err = z.Rules(); err != nil {
		return ID{}, err
	}

	return z, nil
}

// String returns the identifier text.
func (z ID) String() string { return z.id }

// Rules returns the rule set for this identifier from the lazily bound
// provider. Results are memoized process-wide per identifier.
func (z ID) Rules() (RuleSet, error) {
	return rulesFor(z.id)
}

// IsValid reports whether a registered provider knows this identifier.
// False when no provider is registered.
func (z ID) IsValid() bool {
	p, ok := currentProvider()
	if !ok {
		return false
	}

	return p.IsValid(z.id)
}

// checkSyntax enforces the identifier grammar: non-empty valid UTF-8 with
// no space or control characters.
func checkSyntax(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidZoneID)
	}
	if !utf8.ValidString(id) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidZoneID, id)
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains whitespace or control characters", ErrInvalidZoneID, id)
		}
	}

	return nil
}
