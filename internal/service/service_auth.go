package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkorolev/repoboard/internal/config"
	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/internal/store"
	"github.com/dkorolev/repoboard/internal/utils"
	"github.com/dkorolev/repoboard/internal/validators"
	"github.com/dkorolev/repoboard/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the cost factor applied when hashing passwords.
	// Zero falls back to bcrypt.DefaultCost.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The email is case-normalized and validated together with the password
// before any store access; the password is then hashed with bcrypt and
// persistence is delegated to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a *validators.ValidationError describing every failing field;
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = validators.NormalizeEmail(email)
	if err := validators.ValidateCredentials(email, password); err != nil {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	hash, err := a.hashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, email, hash)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The supplied password is compared against the stored bcrypt hash with the
// library's own constant-time compare primitive; a manual equality check on
// raw hash bytes is never performed.
//
// Returns the authenticated user record or:
//   - a *validators.ValidationError for a malformed request;
//   - ErrInvalidCredentials for an unknown email or a wrong password.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = validators.NormalizeEmail(email)
	if err := validators.ValidateLogin(email, password); err != nil {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Debug().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveUser loads the account a verified token points at. A missing
// account (deleted since the token was issued) surfaces as
// store.ErrNoUserWasFound and the middleware answers 401.
func (a *authService) ResolveUser(ctx context.Context, userID int64) (models.User, error) {
	return a.userRepository.FindUserByID(ctx, userID)
}

// UpdateUser applies a partial credential change: a provided email is
// normalized, a provided password is re-hashed. With no fields the call is
// a no-op that returns the current record.
func (a *authService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateUserUpdate(update); err != nil {
		log.Error().Int64("id", userID).Msg("invalid user update provided")
		return models.User{}, err
	}

	var email, passwordHash *string
	if update.Email != nil {
		normalized := validators.NormalizeEmail(*update.Email)
		email = &normalized
	}
	if update.Password != nil {
		hash, err := a.hashPassword(*update.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		passwordHash = &hash
	}

	updatedUser, err := a.userRepository.UpdateUser(ctx, userID, email, passwordHash)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes the account. Projects owned by the account stay in
// the document store; it holds only a back-reference to the user ID.
func (a *authService) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	return a.userRepository.DeleteUser(ctx, userID)
}

// hashPassword derives the bcrypt hash stored in place of the plaintext
// password. bcrypt salts internally, so equal passwords produce distinct
// hashes.
func (a *authService) hashPassword(password string) (string, error) {
	cost := a.bcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
