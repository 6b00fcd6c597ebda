// Package uuid wraps google/uuid so that IDs can be bound from URI and
// query parameters by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// From wraps an existing google/uuid value.
func From(u google_uuid.UUID) UUID {
	return UUID{u}
}

// UnmarshalParam implements gin's binding.BindUnmarshaler. An empty
// parameter binds to Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}

// OrNil returns a pointer to the wrapped UUID, or nil for the Nil UUID.
// Nullable foreign keys are modelled as *uuid.UUID.
func (u UUID) OrNil() *google_uuid.UUID {
	if u == Nil {
		return nil
	}

	id := u.UUID
	return &id
}
