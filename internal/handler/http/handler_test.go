// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/internal/service"
	"github.com/dkorolev/repoboard/internal/utils"
	"github.com/dkorolev/repoboard/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, email, password string) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	resolveUserFn func(ctx context.Context, userID int64) (models.User, error)
	updateUserFn  func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	deleteUserFn  func(ctx context.Context, userID int64) (bool, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (models.User, error) {
	return m.registerFn(ctx, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, userID int64) (models.User, error) {
	return m.resolveUserFn(ctx, userID)
}

func (m *mockAuthService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	return m.updateUserFn(ctx, userID, update)
}

func (m *mockAuthService) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	return m.deleteUserFn(ctx, userID)
}

// mockProjectService implements service.ProjectService for unit tests.
type mockProjectService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Project, error)
	createFn func(ctx context.Context, userID int64, req models.CreateProjectRequest) (models.Project, error)
	updateFn func(ctx context.Context, userID int64, projectID string, update models.ProjectUpdate) (models.Project, error)
	deleteFn func(ctx context.Context, userID int64, projectID string) error
	importFn func(ctx context.Context, userID int64, repoPath string) (models.Project, error)
	checkFn  func(ctx context.Context, userID int64, repoPath string) (models.CheckRepoResponse, error)
}

func (m *mockProjectService) List(ctx context.Context, userID int64) ([]models.Project, error) {
	return m.listFn(ctx, userID)
}

func (m *mockProjectService) Create(ctx context.Context, userID int64, req models.CreateProjectRequest) (models.Project, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockProjectService) Update(ctx context.Context, userID int64, projectID string, update models.ProjectUpdate) (models.Project, error) {
	return m.updateFn(ctx, userID, projectID, update)
}

func (m *mockProjectService) Delete(ctx context.Context, userID int64, projectID string) error {
	return m.deleteFn(ctx, userID, projectID)
}

func (m *mockProjectService) ImportFromGitHub(ctx context.Context, userID int64, repoPath string) (models.Project, error) {
	return m.importFn(ctx, userID, repoPath)
}

func (m *mockProjectService) CheckRepo(ctx context.Context, userID int64, repoPath string) (models.CheckRepoResponse, error) {
	return m.checkFn(ctx, userID, repoPath)
}

// mockHealthService implements service.HealthService for unit tests.
type mockHealthService struct {
	checkFn func(ctx context.Context) models.HealthResponse
}

func (m *mockHealthService) Check(ctx context.Context) models.HealthResponse {
	return m.checkFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given mocks. Nil mocks are left
// nil; tests only wire the services they exercise.
func newTestHandler(t *testing.T, auth service.AuthService, projects service.ProjectService, health service.HealthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		ProjectService: projects,
		HealthService:  health,
	}
	return NewHandler(svcs, logger.Nop())
}

// decodeEnvelope decodes the uniform response envelope from a recorder.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// withIdentity stamps the request context with an authenticated identity,
// standing in for the auth middleware.
func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.IdentityCtxKey, identity))
}

// identity fixture used across tests.
var testIdentity = models.Identity{ID: 13, Email: "alice@example.com"}
