package model

import (
	"github.com/google/uuid"
)

// ensureID fills a zero primary key with a time-ordered UUID.
func ensureID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
