package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a bookmarked external repository owned by exactly one user.
//
// CreatedAt is the Unix timestamp of the external resource's creation time
// (as reported by GitHub or entered manually) and is distinct from the
// record's own audit timestamps InsertedAt/UpdatedAt.
type Project struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner string             `bson:"owner"         json:"owner"`
	Name  string             `bson:"name"          json:"name"`
	URL   string             `bson:"url"           json:"url"`

	Stars      int64 `bson:"stars"      json:"stars"`
	Forks      int64 `bson:"forks"      json:"forks"`
	OpenIssues int64 `bson:"openIssues" json:"openIssues"`
	CreatedAt  int64 `bson:"createdAt"  json:"createdAt"`

	// GitHubPath is the "owner/repo" path used as an external
	// de-duplication key. Empty for manually created projects.
	GitHubPath string `bson:"githubPath,omitempty" json:"githubPath,omitempty"`

	// AIComment is an optional generated description, capped at 500 chars.
	AIComment string `bson:"aiComment,omitempty" json:"aiComment,omitempty"`

	// UserID references the owning user in the relational store.
	// A back-reference only: projects never mutate users.
	UserID int64 `bson:"userId" json:"userId"`

	InsertedAt time.Time `bson:"insertedAt" json:"insertedAt"`
	UpdatedAt  time.Time `bson:"updatedAt"  json:"updatedAt"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the Project model.
func (p Project) CollectionName() string {
	return "projects"
}

// ProjectUpdate describes a partial project change. Nil fields are left
// untouched by the store.
type ProjectUpdate struct {
	Owner      *string `json:"owner,omitempty"`
	Name       *string `json:"name,omitempty"`
	URL        *string `json:"url,omitempty"`
	Stars      *int64  `json:"stars,omitempty"`
	Forks      *int64  `json:"forks,omitempty"`
	OpenIssues *int64  `json:"openIssues,omitempty"`
	CreatedAt  *int64  `json:"createdAt,omitempty"`
	AIComment  *string `json:"aiComment,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u ProjectUpdate) Empty() bool {
	return u.Owner == nil && u.Name == nil && u.URL == nil &&
		u.Stars == nil && u.Forks == nil && u.OpenIssues == nil &&
		u.CreatedAt == nil && u.AIComment == nil
}

// RepositoryData is the metadata returned by the repository-metadata
// provider for a single GitHub repository.
type RepositoryData struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	Stars         int64  `json:"stars"`
	Forks         int64  `json:"forks"`
	OpenIssues    int64  `json:"openIssues"`
	CreatedAt     int64  `json:"createdAt"`
	GitHubPath    string `json:"githubPath"`
	Description   string `json:"description,omitempty"`
	Language      string `json:"language,omitempty"`
	DefaultBranch string `json:"defaultBranch,omitempty"`
	Archived      bool   `json:"archived,omitempty"`
}
