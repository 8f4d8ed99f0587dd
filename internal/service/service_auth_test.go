// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/mock"
	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/internal/validators"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, cfg config.App) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)

	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewAuthService(users, hasher, cfg, logger.Nop()), users, hasher
}

func validRegistration() models.User {
	return models.User{
		Username:        "  Ana Maria ",
		Name:            "ana maria",
		Email:           " Ana@Example.COM ",
		Password:        "s3cret",
		PasswordConfirm: "s3cret",
	}
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().Hash("s3cret").Return("$argon2id$hash", nil),
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) error {
				assert.Equal(t, "anamaria", u.Username)
				assert.Equal(t, "Ana Maria", u.Name)
				assert.Equal(t, "ana@example.com", u.Email)
				assert.Equal(t, "$argon2id$hash", u.PasswordHash)
				return nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, validRegistration())

	require.NoError(t, err)
	assert.Equal(t, models.User{Username: "anamaria", Name: "Ana Maria", Email: "ana@example.com"}, user)
}

func TestAuthService_RegisterUser_ReportsEveryRule(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t, config.App{})

	_, err := svc.RegisterUser(context.Background(), models.User{
		Username:        "a",
		Email:           "not-an-email",
		Password:        "123",
		PasswordConfirm: "456",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalidUsername)
	assert.ErrorIs(t, err, validators.ErrInvalidName)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
	assert.ErrorIs(t, err, validators.ErrPasswordMismatch)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t, config.App{})

	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), validRegistration())

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_HashError(t *testing.T) {
	svc, _, hasher := newTestAuthSvc(t, config.App{})

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("entropy exhausted"))

	_, err := svc.RegisterUser(context.Background(), validRegistration())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error hashing password")
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t, config.App{})
	stored := models.User{Username: "alice", Name: "Alice", Email: "a@b.co", PasswordHash: "hash"}

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
	hasher.EXPECT().Verify("pw12", "hash").Return(true, nil)

	user, err := svc.Login(context.Background(), models.User{Username: " Alice ", Password: "pw12"})

	require.NoError(t, err)
	assert.Equal(t, stored.Public(), user)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t, config.App{})

	_, err := svc.Login(context.Background(), models.User{Username: "alice"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t, config.App{})

	users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.User{Username: "ghost", Password: "pw12"})

	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t, config.App{})

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{Username: "alice", PasswordHash: "hash"}, nil)
	hasher.EXPECT().Verify("nope", "hash").Return(false, nil)

	_, err := svc.Login(context.Background(), models.User{Username: "alice", Password: "nope"})

	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t, config.App{})

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrCorruptDocument)

	_, err := svc.Login(context.Background(), models.User{Username: "alice", Password: "pw12"})

	assert.ErrorIs(t, err, store.ErrCorruptDocument)
	assert.NotErrorIs(t, err, ErrWrongCredentials)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_Token_RoundTrip_ConfiguredKey(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t, config.App{TokenSignKey: "k", TokenIssuer: "acervo", TokenDuration: time.Hour})
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{Username: "alice"}, nil)

	token, err := svc.CreateToken(ctx, models.User{Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	username, err := parsed.GetUsername()
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestAuthService_Token_CookieSettingsFallback(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t, config.App{TokenIssuer: "acervo"})
	ctx := context.Background()

	cookie := models.DefaultCookieSettings()
	cookie.Key = "generated-key"
	users.EXPECT().CookieSettings(ctx).Return(cookie, nil).Times(2)
	users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{Username: "alice"}, nil)

	token, err := svc.CreateToken(ctx, models.User{Username: "alice"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), token.Expires, time.Minute)

	_, err = svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
}

func TestAuthService_Token_CookieSettingsError(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t, config.App{})

	users.EXPECT().CookieSettings(gomock.Any()).Return(models.CookieSettings{}, store.ErrCorruptDocument)

	_, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
	assert.ErrorIs(t, err, store.ErrCorruptDocument)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	issuing, _, _ := newTestAuthSvc(t, config.App{TokenSignKey: "one", TokenIssuer: "acervo", TokenDuration: time.Hour})
	parsing, _, _ := newTestAuthSvc(t, config.App{TokenSignKey: "two", TokenIssuer: "acervo", TokenDuration: time.Hour})

	token, err := issuing.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	_, err = parsing.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Token_RejectsUnusableKey(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.App
		cookie models.CookieSettings
	}{
		{name: "fresh settings", cfg: config.App{TokenIssuer: "acervo"}, cookie: models.DefaultCookieSettings()},
		{name: "placeholder in document", cfg: config.App{TokenIssuer: "acervo"}, cookie: models.CookieSettings{Key: models.DefaultCookieKey, ExpiryDays: 30}},
		{name: "placeholder configured", cfg: config.App{TokenIssuer: "acervo", TokenSignKey: models.DefaultCookieKey, TokenDuration: time.Hour}, cookie: models.DefaultCookieSettings()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newTestAuthSvc(t, tt.cfg)
			users.EXPECT().CookieSettings(gomock.Any()).Return(tt.cookie, nil).Times(2)

			_, err := svc.CreateToken(context.Background(), models.User{Username: models.AdminUsername})
			assert.ErrorIs(t, err, ErrTokenCreationFailed)
			assert.ErrorIs(t, err, ErrInsecureSignKey)

			_, err = svc.ParseToken(context.Background(), "any.jwt.token")
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
			assert.ErrorIs(t, err, ErrInsecureSignKey)
		})
	}
}

func TestAuthService_ParseToken_DeletedAccount(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t, config.App{TokenSignKey: "k", TokenIssuer: "acervo", TokenDuration: time.Hour})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Username: "alice"})
	require.NoError(t, err)

	users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrNoUserWasFound)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_StorageError(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t, config.App{TokenSignKey: "k", TokenIssuer: "acervo", TokenDuration: time.Hour})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Username: "alice"})
	require.NoError(t, err)

	users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrCorruptDocument)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, store.ErrCorruptDocument)
	assert.NotErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// Admin bootstrap
// ─────────────────────────────────────────────

func TestAuthService_EnsureAdmin_Creates(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t, config.App{})

	users.EXPECT().FindUserByUsername(gomock.Any(), models.AdminUsername).Return(models.User{}, store.ErrNoUserWasFound)
	hasher.EXPECT().Hash("root").Return("hash", nil)
	users.EXPECT().SetPasswordHash(gomock.Any(), models.AdminUsername, "hash").Return(true, nil)

	created, err := svc.EnsureAdmin(context.Background(), "root")

	require.NoError(t, err)
	assert.True(t, created)
}

func TestAuthService_EnsureAdmin_KeepsExisting(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t, config.App{})

	users.EXPECT().FindUserByUsername(gomock.Any(), models.AdminUsername).Return(models.User{Username: models.AdminUsername}, nil)

	created, err := svc.EnsureAdmin(context.Background(), "root")

	require.NoError(t, err)
	assert.False(t, created)
}

func TestAuthService_SetAdminPassword_Empty(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t, config.App{})

	_, err := svc.SetAdminPassword(context.Background(), "")

	assert.ErrorIs(t, err, ErrEmptyAdminPassword)
}

func TestAuthService_SetAdminPassword_Replaces(t *testing.T) {
	svc, users, hasher := newTestAuthSvc(t, config.App{})

	hasher.EXPECT().Hash("new").Return("hash2", nil)
	users.EXPECT().SetPasswordHash(gomock.Any(), models.AdminUsername, "hash2").Return(false, nil)

	created, err := svc.SetAdminPassword(context.Background(), "new")

	require.NoError(t, err)
	assert.False(t, created)
}

func TestAuthService_GetUser(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t, config.App{})

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{Username: "alice", Name: "Alice", PasswordHash: "hash"}, nil)

	user, err := svc.GetUser(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, models.User{Username: "alice", Name: "Alice"}, user)
}
