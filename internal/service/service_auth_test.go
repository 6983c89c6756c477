package service

import (
	"context"
	"testing"
	"time"

	"github.com/dkorolev/repoboard/internal/config"
	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/internal/mock"
	"github.com/dkorolev/repoboard/internal/store"
	"github.com/dkorolev/repoboard/internal/validators"
	"github.com/dkorolev/repoboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthSvc builds an authService over a mocked user repository with
// a low bcrypt cost so tests stay fast.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)

	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "repoboard",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}

	svc := NewAuthService(mockUsers, cfg, logger.Nop()).(*authService)

	return svc, mockUsers
}

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		CreateUser(ctx, "john@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, email, passwordHash string) (models.User, error) {
			// the stored hash must verify against the original password
			// and must not be the plaintext itself
			assert.NotEqual(t, "secret123", passwordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret123")))
			return models.User{UserID: 1, Email: email}, nil
		})

	user, err := svc.Register(ctx, "John@Example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "john@example.com", user.Email, "email should be normalized before storage")
}

func TestAuthService_Register_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", "123")

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Problems, 2, "both email and password problems should be reported")
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		CreateUser(ctx, "john@example.com", gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, "john@example.com", "secret123")

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       7,
		Email:        "john@example.com",
		PasswordHash: bcryptHash(t, "secret123"),
	}

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(stored, nil)

	user, err := svc.Login(ctx, "John@Example.com ", "secret123")

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       7,
		Email:        "john@example.com",
		PasswordHash: bcryptHash(t, "secret123"),
	}

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(stored, nil)

	_, err := svc.Login(ctx, "john@example.com", "wrong-password")

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, "ghost@example.com", "whatever")

	// an unknown email must be indistinguishable from a wrong password
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, store.ErrNoUserWasFound)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Tampered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	other := *svc
	other.tokenSignKey = "different-key"

	_, err = other.ParseToken(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestAuthService_UpdateUser_RehashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	newPassword := "brand-new-pass"
	update := models.UserUpdate{Password: &newPassword}

	mockUsers.EXPECT().
		UpdateUser(ctx, int64(7), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, email, passwordHash *string) (models.User, error) {
			require.NotNil(t, passwordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*passwordHash), []byte(newPassword)))
			return models.User{UserID: id}, nil
		})

	_, err := svc.UpdateUser(ctx, 7, update)
	require.NoError(t, err)
}

func TestAuthService_UpdateUser_ShortPasswordRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	short := "123"
	_, err := svc.UpdateUser(ctx, 7, models.UserUpdate{Password: &short})

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAuthService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		DeleteUser(ctx, int64(7)).
		Return(true, nil)

	deleted, err := svc.DeleteUser(ctx, 7)
	require.NoError(t, err)
	assert.True(t, deleted)
}

// Deleting a user touches only the user store: projects keep their
// back-reference and stay listable under the old user ID. The controller
// fails the test if DeleteUser issues any project-store call.
func TestAuthService_DeleteUser_LeavesProjectsOrphaned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc, mockUsers := newTestAuthSvc(t, ctrl)
	projectSvc, mockProjects, _, _ := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	orphans := []models.Project{
		{Owner: "golang", Name: "go", UserID: 7},
		{Owner: "golang", Name: "tools", UserID: 7},
	}

	mockUsers.EXPECT().
		DeleteUser(ctx, int64(7)).
		Return(true, nil)
	mockProjects.EXPECT().
		ListForUser(ctx, int64(7)).
		Return(orphans, nil)

	deleted, err := authSvc.DeleteUser(ctx, 7)
	require.NoError(t, err)
	require.True(t, deleted)

	remaining, err := projectSvc.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, orphans, remaining)
}
