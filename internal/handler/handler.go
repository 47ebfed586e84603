// Package handler is the HTTP boundary. It decodes requests, calls the
// services and maps domain error kinds onto status codes; no business
// rules live here.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"socialsphere/internal/auth"
	"socialsphere/internal/domain"
	"socialsphere/internal/media"
	"socialsphere/internal/service"
)

type Handler struct {
	users      *service.Users
	follows    *service.Follows
	posts      *service.Posts
	feed       *service.Feed
	engagement *service.Engagement
	auth       *auth.Authenticator
	media      media.Store
	log        zerolog.Logger
}

func New(
	users *service.Users,
	follows *service.Follows,
	posts *service.Posts,
	feed *service.Feed,
	engagement *service.Engagement,
	authenticator *auth.Authenticator,
	mediaStore media.Store,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		users:      users,
		follows:    follows,
		posts:      posts,
		feed:       feed,
		engagement: engagement,
		auth:       authenticator,
		media:      mediaStore,
		log:        log,
	}
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			h.log.Error().Err(err).Msg("failed to encode response")
		}
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	message := err.Error()

	switch domain.KindOf(err) {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindAuth:
		status = http.StatusUnauthorized
	default:
		// Dependency and unclassified failures stay opaque to clients.
		status = http.StatusInternalServerError
		message = "internal server error"
		h.log.Error().Err(err).Msg("request failed")
	}

	h.respond(w, status, domain.ErrorResponse{Code: status, Message: message})
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, domain.Validationf("invalid request body")
	}
	return v, nil
}

// parsePage reads ?cursor= and ?count= query parameters; services clamp
// the values.
func parsePage(r *http.Request) domain.Page {
	var page domain.Page
	if v, err := strconv.ParseInt(r.URL.Query().Get("cursor"), 10, 64); err == nil {
		page.Cursor = v
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("count"), 10, 64); err == nil {
		page.Count = v
	}
	return page
}
