// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the clients for the external collaborators of the
// application: the repository-metadata provider (GitHub API) and the
// comment-generation provider (Gemini API). Both are consumed by the
// service layer through narrow interfaces so that tests can substitute
// them with mocks.
package adapter

import (
	"context"

	"github.com/dkorolev/repoboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RepositoryProvider fetches repository metadata from the upstream
// code-hosting API.
type RepositoryProvider interface {
	// GetRepositoryData fetches metadata for the repository at
	// "owner/repo" path. Fails with [ErrRepositoryNotFound],
	// [ErrRateLimited], or a wrapped [ErrUpstream].
	GetRepositoryData(ctx context.Context, repoPath string) (models.RepositoryData, error)

	// CheckRepositoryExists reports whether the repository exists
	// upstream. Network failures are reported as "does not exist"
	// so that the pre-validation endpoint stays best-effort.
	CheckRepositoryExists(ctx context.Context, repoPath string) bool
}

// CommentProvider generates a short descriptive comment for a repository.
// Strictly best-effort: callers must substitute [FallbackComment] on any
// failure and never propagate it to the user-visible result.
type CommentProvider interface {
	GenerateComment(ctx context.Context, data models.RepositoryData) (string, error)
}
