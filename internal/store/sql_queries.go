// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING id, email, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, created_at, updated_at
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`
)

// buildUpdateUserQuery builds a parameterised UPDATE for the subset of user
// columns actually being changed. Nil arguments are skipped; updated_at is
// always bumped. Returns [ErrBuildingSQLQuery] when no column is set, which
// callers translate into a no-op read.
func buildUpdateUserQuery(id int64, email, passwordHash *string) (string, []any, error) {
	builder := sq.Update("users").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, email, password_hash, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	changed := false
	if email != nil {
		builder = builder.Set("email", *email)
		changed = true
	}
	if passwordHash != nil {
		builder = builder.Set("password_hash", *passwordHash)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.ToSql()
}
