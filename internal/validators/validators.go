// Package validators provides request input validation for the application.
//
// Validation runs before any store access and reports every failing field
// at once: a [ValidationError] carries a list of per-field problems instead
// of a single generic message, so clients can annotate their forms.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/dkorolev/repoboard/models"
)

// Field name constants used in reported problems.
const (
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldOwner      = "owner"
	FieldName       = "name"
	FieldURL        = "url"
	FieldStars      = "stars"
	FieldForks      = "forks"
	FieldOpenIssues = "openIssues"
	FieldCreatedAt  = "createdAt"
	FieldAIComment  = "aiComment"
	FieldRepoPath   = "repoPath"
)

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 6

	// MaxAICommentLength caps the stored project comment.
	MaxAICommentLength = 500
)

var (
	urlPattern      = regexp.MustCompile(`^https?://.+`)
	repoPathPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+/[a-zA-Z0-9._-]+$`)
)

// ValidationError aggregates every per-field problem found in a request.
// It implements the error interface so that services and handlers can pass
// it through their usual error paths.
type ValidationError struct {
	Problems []models.FieldProblem
}

// Error implements the error interface with a stable, generic message;
// the per-field details travel in Problems.
func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) add(field, message string) {
	e.Problems = append(e.Problems, models.FieldProblem{Field: field, Message: message})
}

// orNil returns the error when at least one problem was collected,
// nil otherwise.
func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

// NormalizeEmail lower-cases and trims an email address. Applied before
// validation, storage, and lookup so that uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCredentials checks a register or credential-change payload:
// well-formed email, password of at least [MinPasswordLength] characters.
func ValidateCredentials(email, password string) error {
	verr := &ValidationError{}

	if _, err := mail.ParseAddress(email); err != nil {
		verr.add(FieldEmail, "must be a valid email address")
	}
	if len(password) < MinPasswordLength {
		verr.add(FieldPassword, "must be at least 6 characters long")
	}

	return verr.orNil()
}

// ValidateLogin checks a login payload. Unlike registration, the password
// only needs to be present: length rules changed over time and old accounts
// must still be able to sign in.
func ValidateLogin(email, password string) error {
	verr := &ValidationError{}

	if _, err := mail.ParseAddress(email); err != nil {
		verr.add(FieldEmail, "must be a valid email address")
	}
	if password == "" {
		verr.add(FieldPassword, "is required")
	}

	return verr.orNil()
}

// ValidateCreateProject checks a manual project creation payload: non-empty
// owner and name, http(s) URL, and non-negative numeric fields, all of which
// must be present.
func ValidateCreateProject(req models.CreateProjectRequest) error {
	verr := &ValidationError{}

	if strings.TrimSpace(req.Owner) == "" {
		verr.add(FieldOwner, "is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		verr.add(FieldName, "is required")
	}
	if !urlPattern.MatchString(req.URL) {
		verr.add(FieldURL, "must start with http:// or https://")
	}

	checkCount(verr, FieldStars, req.Stars)
	checkCount(verr, FieldForks, req.Forks)
	checkCount(verr, FieldOpenIssues, req.OpenIssues)
	checkCount(verr, FieldCreatedAt, req.CreatedAt)

	return verr.orNil()
}

// ValidateProjectUpdate checks a partial project change: every provided
// field must satisfy the same rules as on creation; absent fields are
// skipped.
func ValidateProjectUpdate(update models.ProjectUpdate) error {
	verr := &ValidationError{}

	if update.Owner != nil && strings.TrimSpace(*update.Owner) == "" {
		verr.add(FieldOwner, "must not be empty")
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		verr.add(FieldName, "must not be empty")
	}
	if update.URL != nil && !urlPattern.MatchString(*update.URL) {
		verr.add(FieldURL, "must start with http:// or https://")
	}
	if update.Stars != nil && *update.Stars < 0 {
		verr.add(FieldStars, "must be a non-negative integer")
	}
	if update.Forks != nil && *update.Forks < 0 {
		verr.add(FieldForks, "must be a non-negative integer")
	}
	if update.OpenIssues != nil && *update.OpenIssues < 0 {
		verr.add(FieldOpenIssues, "must be a non-negative integer")
	}
	if update.CreatedAt != nil && *update.CreatedAt < 0 {
		verr.add(FieldCreatedAt, "must be a non-negative integer")
	}
	if update.AIComment != nil && len(*update.AIComment) > MaxAICommentLength {
		verr.add(FieldAIComment, "must be at most 500 characters long")
	}

	return verr.orNil()
}

// ValidateRepoPath checks an import payload: the path must follow the
// "owner/repository" format.
func ValidateRepoPath(repoPath string) error {
	verr := &ValidationError{}

	trimmed := strings.TrimSpace(repoPath)
	if trimmed == "" {
		verr.add(FieldRepoPath, "is required")
	} else if !repoPathPattern.MatchString(trimmed) {
		verr.add(FieldRepoPath, "invalid repository path format, expected owner/repository")
	}

	return verr.orNil()
}

// ValidateUserUpdate checks a partial credential change: a provided email
// must be well-formed, a provided password must satisfy the length rule.
func ValidateUserUpdate(update models.UserUpdate) error {
	verr := &ValidationError{}

	if update.Email != nil {
		if _, err := mail.ParseAddress(*update.Email); err != nil {
			verr.add(FieldEmail, "must be a valid email address")
		}
	}
	if update.Password != nil && len(*update.Password) < MinPasswordLength {
		verr.add(FieldPassword, "must be at least 6 characters long")
	}

	return verr.orNil()
}

func checkCount(verr *ValidationError, field string, value *int64) {
	switch {
	case value == nil:
		verr.add(field, "is required")
	case *value < 0:
		verr.add(field, "must be a non-negative integer")
	}
}
