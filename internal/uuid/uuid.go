// Package uuid binds resource IDs from path and query parameters.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is a resource ID that gin can bind from URI and form parameters.
// The zero value means that no ID was given.
type UUID struct {
	google_uuid.UUID
}

// Parse parses s as UUID. Anything that is not a UUID yields ErrInvalidUUID,
// the parser's own message is not useful for API clients.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return UUID{}, ErrInvalidUUID
	}

	return UUID{parsed}, nil
}

// IsZero reports whether no ID was set.
func (u UUID) IsZero() bool {
	return u.UUID == google_uuid.Nil
}

// UnmarshalParam implements gin's BindUnmarshaler. An empty parameter
// resets u to the zero value.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = UUID{}
		return nil
	}

	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
