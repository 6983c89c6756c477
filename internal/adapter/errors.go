package adapter

import "errors"

// Sentinel errors returned by the repository-metadata provider. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrInvalidRepoPath is returned when the given path does not follow
	// the "owner/repository" format.
	ErrInvalidRepoPath = errors.New("invalid repository path format, expected owner/repository")

	// ErrRepositoryNotFound is returned when the upstream API answers 404
	// for the requested repository.
	ErrRepositoryNotFound = errors.New("repository not found, please check the repository path")

	// ErrRateLimited is returned when the upstream API answers 403 due to
	// rate limiting.
	ErrRateLimited = errors.New("rate limit exceeded, please try again later")

	// ErrUpstream wraps any other upstream failure (5xx, network error,
	// malformed payload).
	ErrUpstream = errors.New("upstream API error")
)
