// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildUpdateUserQuery_EmailAndPassword(t *testing.T) {
	email := "new@example.com"
	hash := "bcrypt-hash"

	query, args, err := buildUpdateUserQuery(42, &email, &hash)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update users")
	require.Contains(t, q, "email")
	require.Contains(t, q, "password_hash")
	require.Contains(t, q, "updated_at")
	require.Contains(t, q, "returning")

	// placeholder format should be $N (Postgres)
	require.Contains(t, query, "$1")

	// user id travels as an argument, not as inlined SQL
	require.Contains(t, args, int64(42))
	require.Contains(t, args, email)
	require.Contains(t, args, hash)
}

func Test_buildUpdateUserQuery_EmailOnly(t *testing.T) {
	email := "new@example.com"

	query, args, err := buildUpdateUserQuery(1, &email, nil)
	require.NoError(t, err)

	q := strings.ToLower(query)
	setClause, _, _ := strings.Cut(q, "returning")
	require.Contains(t, setClause, "email =")
	require.NotContains(t, setClause, "password_hash =")
	require.Contains(t, args, email)
}

func Test_buildUpdateUserQuery_PasswordOnly(t *testing.T) {
	hash := "bcrypt-hash"

	query, args, err := buildUpdateUserQuery(1, nil, &hash)
	require.NoError(t, err)

	q := strings.ToLower(query)
	setClause, _, _ := strings.Cut(q, "returning")
	require.NotContains(t, setClause, "email =")
	require.Contains(t, setClause, "password_hash")
	require.Contains(t, args, hash)
}

func Test_buildUpdateUserQuery_NothingToSet(t *testing.T) {
	_, _, err := buildUpdateUserQuery(1, nil, nil)
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}
