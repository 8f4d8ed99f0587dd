// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/crypto"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/internal/utils"
	"github.com/MKhiriev/go-acervo/internal/validators"
	"github.com/MKhiriev/go-acervo/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the JWT session
// lifecycle over a UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and checks password hashes.
	hasher crypto.PasswordHasher

	// validator checks registrations.
	validator validators.Validator

	// tokenSignKey overrides the cookie key of the document when set.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration overrides the cookie expiry of the document when set.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// The input is normalized first (username lowercased without spaces, email
// lowercased, name title-cased) and then validated against every rule.
// Returns the public view of the stored account or:
//   - the joined validation errors of the validators package.
//   - store.ErrUsernameAlreadyExists or store.ErrEmailAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user = validators.NormalizeRegistration(user)
	if err := a.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid registration")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user.Public(), nil
}

// Login authenticates an existing user.
//
// Returns the public view of the account or:
//   - ErrInvalidDataProvided if the username or the password is empty.
//   - ErrWrongCredentials if the account does not exist or the password does
//     not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	username := validators.NormalizeUsername(user.Username)
	if username == "" || user.Password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("username", username).Msg("login for unknown user")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := a.hasher.Verify(user.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("username", username).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Error().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser.Public(), nil
}

// CreateToken issues a signed JWT whose subject is the username.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	signKey, duration, err := a.sessionParams(ctx)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, duration, signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed, unusable signing key) and a token whose
// account no longer exists are normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	signKey, _, err := a.sessionParams(ctx)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, signKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	username := token.Username
	if username == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	_, err = a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("username", username).Msg("session token of a deleted account")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return token, nil
}

func (a *authService) GetUser(ctx context.Context, username string) (models.User, error) {
	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	return user.Public(), nil
}

func (a *authService) CookieSettings(ctx context.Context) (models.CookieSettings, error) {
	return a.userRepository.CookieSettings(ctx)
}

func (a *authService) EnsureAdmin(ctx context.Context, password string) (bool, error) {
	_, err := a.userRepository.FindUserByUsername(ctx, models.AdminUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return false, err
	}

	return a.SetAdminPassword(ctx, password)
}

func (a *authService) SetAdminPassword(ctx context.Context, password string) (bool, error) {
	log := logger.FromContext(ctx)

	if password == "" {
		return false, ErrEmptyAdminPassword
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := a.userRepository.SetPasswordHash(ctx, models.AdminUsername, hash)
	if err != nil {
		log.Err(err).Msg("error setting admin password")
		return false, err
	}
	log.Info().Bool("created", created).Msg("admin password set")

	return created, nil
}

// sessionParams resolves the signing key and the token lifetime: configured
// overrides win over the cookie settings of the document.
func (a *authService) sessionParams(ctx context.Context) (string, time.Duration, error) {
	if models.IsUsableSignKey(a.tokenSignKey) && a.tokenDuration > 0 {
		return a.tokenSignKey, a.tokenDuration, nil
	}

	cookie, err := a.userRepository.CookieSettings(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("error reading cookie settings: %w", err)
	}

	signKey, duration := a.tokenSignKey, a.tokenDuration
	if signKey == "" {
		signKey = cookie.Key
	}
	if duration <= 0 {
		duration = cookie.Expiry()
	}
	if !models.IsUsableSignKey(signKey) {
		logger.FromContext(ctx).Error().Str("func", "*authService.sessionParams").Msg("refusing to use a missing or public signing key")
		return "", 0, ErrInsecureSignKey
	}

	return signKey, duration, nil
}
