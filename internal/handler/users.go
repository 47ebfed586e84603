package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialsphere/internal/auth"
	"socialsphere/internal/domain"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	req, err := decode[domain.RegisterRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, err := h.users.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	token, err := h.auth.GenerateToken(user.ID)
	if err != nil {
		h.writeError(w, domain.Dependencyf(err, "issue token"))
		return
	}

	h.respond(w, http.StatusCreated, domain.AuthResponse{User: user, Token: token})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req, err := decode[domain.LoginRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, err := h.users.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	token, err := h.auth.GenerateToken(user.ID)
	if err != nil {
		h.writeError(w, domain.Dependencyf(err, "issue token"))
		return
	}

	h.respond(w, http.StatusOK, domain.AuthResponse{User: user, Token: token})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	profile, err := h.users.Profile(r.Context(), userID, userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, profile)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	profile, err := h.users.Profile(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	req, err := decode[domain.UpdateProfileRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), auth.UserID(r.Context()), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, user)
}

func (h *Handler) updateProfileImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := auth.UserID(ctx)

	data, contentType, err := h.readImage(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	url, err := h.media.Save(ctx, data, contentType)
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, previous, err := h.users.UpdateImage(ctx, userID, url)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if previous != "" {
		if err := h.media.Delete(ctx, previous); err != nil {
			h.log.Warn().Err(err).Str("image", previous).Msg("failed to delete replaced profile image")
		}
	}

	h.respond(w, http.StatusOK, user)
}

const maxImageBytes = 8 << 20

// readImage pulls the "image" file out of a multipart form.
func (h *Handler) readImage(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		return nil, "", domain.Validationf("expected multipart form with an image")
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", domain.Validationf("image file is required")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, "", domain.Dependencyf(err, "read upload")
	}
	if len(data) > maxImageBytes {
		return nil, "", domain.Validationf("image exceeds %d bytes", maxImageBytes)
	}

	return data, header.Header.Get("Content-Type"), nil
}
