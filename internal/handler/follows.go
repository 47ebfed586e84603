package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialsphere/internal/auth"
	"socialsphere/internal/domain"
)

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	err := h.follows.Follow(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, map[string]string{"message": "user followed"})
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	err := h.follows.Unfollow(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, map[string]string{"message": "user unfollowed"})
}

func (h *Handler) listFollowers(w http.ResponseWriter, r *http.Request) {
	users, err := h.follows.Followers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, domain.UserListResponse{Users: users, Count: len(users)})
}

func (h *Handler) listFollowing(w http.ResponseWriter, r *http.Request) {
	users, err := h.follows.Following(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, domain.UserListResponse{Users: users, Count: len(users)})
}
