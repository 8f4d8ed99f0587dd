// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/logout", h.logout)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes for any signed-in user; group membership is checked by the services
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.me)

		r.Get("/api/groups", h.listGroups)
		r.Post("/api/groups", h.createGroup)
		r.Get("/api/groups/{group}/members", h.listMembers)
		r.Post("/api/groups/{group}/invites", h.invite)
		r.Post("/api/groups/{group}/leave", h.leaveGroup)

		r.Get("/api/invites", h.listInvites)
		r.Post("/api/invites/{group}/accept", h.acceptInvite)
		r.Post("/api/invites/{group}/decline", h.declineInvite)

		r.Get("/api/collections/personal", h.personalCollection)
		r.Get("/api/collections/groups/{group}", h.groupCollection)

		r.Get("/api/records", h.listRecords)
		r.Post("/api/records", h.addRecord)
		r.Get("/api/records/{id}", h.getRecord)
		r.Put("/api/records/{id}", h.updateRecord)
		r.Delete("/api/records/{id}", h.deleteRecord)
		r.Put("/api/records/{id}/image", h.setRecordImage)

		r.Get("/api/images/{filename}", h.getImage)
	})

	// administrator routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Get("/api/admin/users", h.listUsers)
		r.Delete("/api/admin/users/{username}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
