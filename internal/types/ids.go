package types

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ID is a custom type that wraps a UUID string.
// It provides type-safe UUID generation, validation, and serialization for
// per-attempt identifiers such as lifecycle event IDs.
type ID string

// NewID generates a new UUID v4 and returns it as an ID.
// It will never return an error as uuid.New() uses crypto/rand
// which panics on system-level failures (extremely rare).
func NewID() ID {
	return ID(uuid.New().String())
}

// ParseID parses and validates a string as a UUID, returning an ID.
// It returns an error if the string is not a valid UUID format.
func ParseID(s string) (ID, error) {
	if s == "" {
		return "", fmt.Errorf("ID cannot be empty")
	}

	parsedUUID, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid UUID format: %w", err)
	}

	return ID(parsedUUID.String()), nil
}

// Validate checks if the ID is a valid UUID.
// Returns an error if the ID is invalid or empty.
func (id ID) Validate() error {
	if id == "" {
		return fmt.Errorf("ID cannot be empty")
	}

	_, err := uuid.Parse(string(id))
	if err != nil {
		return fmt.Errorf("invalid UUID format: %w", err)
	}

	return nil
}

// String returns the string representation of the ID.
func (id ID) String() string {
	return string(id)
}

// IsZero checks if the ID is empty or zero-valued.
func (id ID) IsZero() bool {
	return id == ""
}

// MarshalJSON implements json.Marshaler.
// A zero ID marshals to null so it survives a decode round trip.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON implements json.Unmarshaler.
// null and the empty string both decode to the zero ID.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	if str == "" {
		*id = ""
		return nil
	}

	parsed, err := ParseID(str)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}
