// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/utils"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and applies the request timeout to every call.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewConfiguredHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ─────────────────────────────────────────────
// Account
// ─────────────────────────────────────────────

// Register implements [ServerAdapter]. It POSTs to /api/user/register and
// keeps the bearer token of the "Authorization" response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.startSession(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter]. It POSTs to /api/user/login and keeps
// the bearer token of the "Authorization" response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.startSession(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) startSession(ctx context.Context, path string, user models.User) (models.User, error) {
	var sessionUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&sessionUser).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", sessionUser.Username).Msg("session started")

	return sessionUser, nil
}

// Logout implements [ServerAdapter].
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	req := h.authedRequest(ctx)
	h.SetToken("")

	resp, err := req.Post("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.getJSON(ctx, "/api/user/me", nil, &user)
	return user, err
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo
	err := h.getJSON(ctx, "/api/version", nil, &info)
	return info, err
}

// ─────────────────────────────────────────────
// Groups and invites
// ─────────────────────────────────────────────

// ListGroups implements [ServerAdapter].
func (h *httpServerAdapter) ListGroups(ctx context.Context) ([]string, error) {
	var groups []string
	err := h.getJSON(ctx, "/api/groups", nil, &groups)
	return groups, err
}

// CreateGroup implements [ServerAdapter].
func (h *httpServerAdapter) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	var group models.Group

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateGroupRequest{Name: name}).
		SetResult(&group).
		Post("/api/groups")
	if err != nil {
		return models.Group{}, fmt.Errorf("create group request: %w", err)
	}

	return group, mapHTTPError(resp)
}

// Members implements [ServerAdapter].
func (h *httpServerAdapter) Members(ctx context.Context, group string) ([]models.Member, error) {
	var members []models.Member
	err := h.getJSON(ctx, "/api/groups/{group}/members", map[string]string{"group": group}, &members)
	return members, err
}

// Invite implements [ServerAdapter].
func (h *httpServerAdapter) Invite(ctx context.Context, group, username string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("group", group).
		SetBody(models.InviteRequest{Username: username}).
		Post("/api/groups/{group}/invites")
	if err != nil {
		return fmt.Errorf("invite request: %w", err)
	}

	return mapHTTPError(resp)
}

// LeaveGroup implements [ServerAdapter].
func (h *httpServerAdapter) LeaveGroup(ctx context.Context, group string) error {
	return h.postGroupAction(ctx, "/api/groups/{group}/leave", group)
}

// PendingInvites implements [ServerAdapter].
func (h *httpServerAdapter) PendingInvites(ctx context.Context) ([]models.Invite, error) {
	var invites []models.Invite
	err := h.getJSON(ctx, "/api/invites", nil, &invites)
	return invites, err
}

// AcceptInvite implements [ServerAdapter].
func (h *httpServerAdapter) AcceptInvite(ctx context.Context, group string) error {
	return h.postGroupAction(ctx, "/api/invites/{group}/accept", group)
}

// DeclineInvite implements [ServerAdapter].
func (h *httpServerAdapter) DeclineInvite(ctx context.Context, group string) error {
	return h.postGroupAction(ctx, "/api/invites/{group}/decline", group)
}

func (h *httpServerAdapter) postGroupAction(ctx context.Context, path, group string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("group", group).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}

	return mapHTTPError(resp)
}

// ─────────────────────────────────────────────
// Collections and records
// ─────────────────────────────────────────────

// Collection implements [ServerAdapter].
func (h *httpServerAdapter) Collection(ctx context.Context, view models.ViewContext) (models.CollectionView, error) {
	var collection models.CollectionView

	if view.IsPersonal() {
		err := h.getJSON(ctx, "/api/collections/personal", nil, &collection)
		return collection, err
	}

	err := h.getJSON(ctx, "/api/collections/groups/{group}", map[string]string{"group": view.Group}, &collection)
	return collection, err
}

// GetRecord implements [ServerAdapter].
func (h *httpServerAdapter) GetRecord(ctx context.Context, id string) (models.Artwork, error) {
	var record models.Artwork
	err := h.getJSON(ctx, "/api/records/{id}", map[string]string{"id": id}, &record)
	return record, err
}

// AddRecord implements [ServerAdapter].
func (h *httpServerAdapter) AddRecord(ctx context.Context, record models.Artwork) (models.Artwork, error) {
	var added models.Artwork

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&added).
		Post("/api/records")
	if err != nil {
		return models.Artwork{}, fmt.Errorf("add record request: %w", err)
	}

	return added, mapHTTPError(resp)
}

// UpdateRecord implements [ServerAdapter].
func (h *httpServerAdapter) UpdateRecord(ctx context.Context, id string, record models.Artwork) (models.Artwork, error) {
	var updated models.Artwork

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(record).
		SetResult(&updated).
		Put("/api/records/{id}")
	if err != nil {
		return models.Artwork{}, fmt.Errorf("update record request: %w", err)
	}

	return updated, mapHTTPError(resp)
}

// DeleteRecord implements [ServerAdapter].
func (h *httpServerAdapter) DeleteRecord(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/records/{id}")
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

// SetImage implements [ServerAdapter]. The content is sent as the multipart
// field "image".
func (h *httpServerAdapter) SetImage(ctx context.Context, id, filename string, content io.Reader) (models.Artwork, error) {
	var record models.Artwork

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetFileReader("image", filename, content).
		SetResult(&record).
		Put("/api/records/{id}/image")
	if err != nil {
		return models.Artwork{}, fmt.Errorf("set image request: %w", err)
	}

	return record, mapHTTPError(resp)
}

// Image implements [ServerAdapter].
func (h *httpServerAdapter) Image(ctx context.Context, filename string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("filename", filename).
		Get("/api/images/{filename}")
	if err != nil {
		return nil, fmt.Errorf("image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// ─────────────────────────────────────────────
// Administrator
// ─────────────────────────────────────────────

// ListUsers implements [ServerAdapter].
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := h.getJSON(ctx, "/api/admin/users", nil, &users)
	return users, err
}

// DeleteUser implements [ServerAdapter].
func (h *httpServerAdapter) DeleteUser(ctx context.Context, username string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("username", username).
		Delete("/api/admin/users/{username}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// getJSON performs an authenticated GET of path and decodes the body into
// result.
func (h *httpServerAdapter) getJSON(ctx context.Context, path string, pathParams map[string]string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(pathParams).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
