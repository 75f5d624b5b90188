package services

import (
	"errors"
	"fmt"

	"blogapi/app/repositories"
)

var (
	ErrPostNotFound    = fmt.Errorf("post not found: %w", repositories.ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment not found: %w", repositories.ErrNotFound)

	// ErrStoreUninitialized is returned by a service built without a repository.
	ErrStoreUninitialized = errors.New("posts data not initialized")
)

// notFound translates a repository miss into the given service error.
func notFound(err, target error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return target
	}
	return err
}
