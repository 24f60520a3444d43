// Package studio holds the persistence services for the creator's content:
// scripts, ideas, thumbnails, recordings, and video projects. Handlers run
// every user-written field through the moderation filter before these
// services are called; what arrives here is stored verbatim.
package studio

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
