// Package zone models time-zone identifiers as pure immutable values bound
// lazily to an external rules provider.
//
// What:
//
//   - ID is a validated-or-unchecked region string ("Europe/Prague"). It
//     carries no rules itself; Rules and IsValid consult the process-wide
//     provider on first use, so a provider registered after the ID was
//     created still serves it.
//   - Provider is the narrow collaborator contract: Rules(id) and
//     IsValid(id), behaving as a pure function of the identifier once rules
//     are published.
//   - Rule lookups are memoized in a thread-safe cache keyed by identifier;
//     concurrent first lookups for the same id are collapsed through
//     golang.org/x/sync/singleflight.
//   - The persisted form of an ID is a 2-byte big-endian length prefix
//     followed by the UTF-8 identifier text; deserialization reconstructs an
//     unchecked ID and defers provider binding to first use.
//   - FileProvider is a ready-made Provider backed by a YAML document, for
//     tooling and tests. The framework never interprets rule contents;
//     offset-transition logic stays outside this module.
//
// Why:
//
//   - Identifiers are long-lived and well-defined; rules change with
//     legislation. Keeping the value object free of rules lets identifiers
//     be created, compared, serialized and shipped without any database.
//
// Errors:
//
//   - ErrInvalidZoneID, ErrUnknownZoneID, ErrNoProvider,
//     ErrZoneIDTooLong, ErrZoneSerialization, ErrRulesUnavailable.
package zone
