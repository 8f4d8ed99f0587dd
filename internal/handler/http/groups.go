// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/utils"
	"github.com/MKhiriev/go-acervo/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	groups, err := h.services.GroupService.GroupsFor(r.Context(), username)
	if err != nil {
		writeError(w, r, err, "error listing groups")
		return
	}

	utils.WriteJSON(w, groups, http.StatusOK)
}

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var req models.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createGroup").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	group, err := h.services.GroupService.CreateGroup(r.Context(), username, req)
	if err != nil {
		writeError(w, r, err, "error creating group")
		return
	}

	utils.WriteJSON(w, group, http.StatusCreated)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	members, err := h.services.GroupService.Members(r.Context(), chi.URLParam(r, "group"), username)
	if err != nil {
		writeError(w, r, err, "error listing members")
		return
	}

	utils.WriteJSON(w, members, http.StatusOK)
}

func (h *Handler) invite(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var req models.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.invite").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.GroupService.Invite(r.Context(), chi.URLParam(r, "group"), username, req); err != nil {
		writeError(w, r, err, "error inviting user")
		return
	}

	utils.NoContent(w, http.StatusCreated)
}

func (h *Handler) leaveGroup(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	if err := h.services.GroupService.Leave(r.Context(), chi.URLParam(r, "group"), username); err != nil {
		writeError(w, r, err, "error leaving group")
		return
	}

	utils.NoContent(w, http.StatusNoContent)
}

func (h *Handler) listInvites(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	invites, err := h.services.GroupService.PendingInvites(r.Context(), username)
	if err != nil {
		writeError(w, r, err, "error listing invites")
		return
	}

	utils.WriteJSON(w, invites, http.StatusOK)
}

func (h *Handler) acceptInvite(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	if err := h.services.GroupService.AcceptInvite(r.Context(), chi.URLParam(r, "group"), username); err != nil {
		writeError(w, r, err, "error accepting invite")
		return
	}

	utils.NoContent(w, http.StatusNoContent)
}

func (h *Handler) declineInvite(w http.ResponseWriter, r *http.Request) {
	username, ok := sessionUser(w, r)
	if !ok {
		return
	}

	if err := h.services.GroupService.DeclineInvite(r.Context(), chi.URLParam(r, "group"), username); err != nil {
		writeError(w, r, err, "error declining invite")
		return
	}

	utils.NoContent(w, http.StatusNoContent)
}
