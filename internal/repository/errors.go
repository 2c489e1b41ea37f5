package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	// ErrNotFound is returned when a document the caller asked for does
	// not exist.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a unique index rejects an insert.
	ErrDuplicate = errors.New("duplicate document")
)

func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}
