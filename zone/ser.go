// SPDX-License-Identifier: MIT
// Package: epochal/zone
//
// ser.go — the bit-exact persisted form of an identifier: a 2-byte
// big-endian length prefix followed by the UTF-8 identifier text.
// Deserialization yields an UNCHECKED identifier; no provider lookup is
// performed at read time.

package zone

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WriteTo writes the identifier in its canonical wire form. Implements
// io.WriterTo.
//
// Errors:
//   - ErrZoneIDTooLong if the UTF-8 text exceeds 65535 bytes.
func (z ID) WriteTo(w io.Writer) (int64, error) {
	text := []byte(z.id)
	if len(text) > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d bytes", ErrZoneIDTooLong, len(text))
	}

	var prefix [2]byte
	binary.BigEndian.PutUint16(prefix[:], uint16(len(text)))

	n, err := w.Write(prefix[:])
	written := int64(n)
	if err != nil {
		return written, fmt.Errorf("zone: write length prefix: %w", err)
	}

	n, err = w.Write(text)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("zone: write identifier text: %w", err)
	}

	return written, nil
}

// ReadID reconstructs an identifier from its wire form. The result is
// unchecked: provider binding is deferred to the first Rules/IsValid call,
// exactly as with OfUnchecked.
//
// Errors:
//   - ErrZoneSerialization for truncated input.
//   - ErrInvalidZoneID if the decoded text is not a legal identifier.
func ReadID(r io.Reader) (ID, error) {
	var prefix [2]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return ID{}, fmt.Errorf("%w: length prefix: %v", ErrZoneSerialization, err)
	}

	text := make([]byte, binary.BigEndian.Uint16(prefix[:]))
	if _, err := io.ReadFull(r, text); err != nil {
		return ID{}, fmt.Errorf("%w: identifier text: %v", ErrZoneSerialization, err)
	}

	return OfUnchecked(string(text))
}
