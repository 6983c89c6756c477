// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Response is the uniform envelope returned by every endpoint:
// {"success": true, "data": ...} on success and
// {"success": false, "error": "...", "details": [...]} on failure.
type Response struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Details []FieldProblem `json:"details,omitempty"`
}

// FieldProblem describes a single validation failure on a named
// request field.
type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AuthResponse is the data payload of successful register and login calls.
type AuthResponse struct {
	User  Identity `json:"user"`
	Token string   `json:"token"`
}

// CheckRepoResponse is the data payload of GET /api/github/check.
type CheckRepoResponse struct {
	ExistsLocally  bool   `json:"existsLocally"`
	ExistsOnGitHub bool   `json:"existsOnGitHub"`
	Message        string `json:"message,omitempty"`
}

// HealthResponse reports per-datastore reachability. The endpoint always
// answers 200; the booleans carry the actual state.
type HealthResponse struct {
	Status     string    `json:"status"`
	PostgreSQL bool      `json:"postgresql"`
	MongoDB    bool      `json:"mongodb"`
	Timestamp  time.Time `json:"timestamp"`
}
