// Package uuid generates time-ordered identifiers for document entries.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a UUIDv7 string. Entry ids are creation-time tokens, so the
// time-ordered layout keeps them sortable by creation.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Random generation failed; fall back to UUIDv4.
		return googleuuid.New().String()
	}
	return id.String()
}
