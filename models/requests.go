package models

// RegisterRequest is the body of POST /api/auth/register and
// POST /api/auth/login. Password is accepted in plaintext over the wire
// and hashed before it reaches any store.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateProjectRequest is the body of POST /api/projects.
// Numeric fields use pointers so that "missing" and "zero" can be told
// apart during validation.
type CreateProjectRequest struct {
	Owner      string `json:"owner"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Stars      *int64 `json:"stars"`
	Forks      *int64 `json:"forks"`
	OpenIssues *int64 `json:"openIssues"`
	CreatedAt  *int64 `json:"createdAt"`
}

// ImportRequest is the body of POST /api/github.
type ImportRequest struct {
	RepoPath string `json:"repoPath"`
}
