package models

import "github.com/google/uuid"

// assignID fills an empty string primary key before insert.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
