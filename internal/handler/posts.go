package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"socialsphere/internal/auth"
	"socialsphere/internal/domain"
)

// createPost accepts either a JSON body or a multipart form with an
// optional image file.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := auth.UserID(ctx)

	var text, imageURL string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImageBytes); err != nil {
			h.writeError(w, domain.Validationf("invalid multipart form"))
			return
		}
		text = r.FormValue("text")

		if _, _, err := r.FormFile("image"); err == nil {
			data, contentType, err := h.readImage(r)
			if err != nil {
				h.writeError(w, err)
				return
			}
			imageURL, err = h.media.Save(ctx, data, contentType)
			if err != nil {
				h.writeError(w, err)
				return
			}
		}
	} else {
		req, err := decode[domain.CreatePostRequest](r)
		if err != nil {
			h.writeError(w, err)
			return
		}
		text = req.Text
	}

	post, err := h.posts.Create(ctx, userID, text, imageURL)
	if err != nil {
		// The post never happened; drop the orphaned upload.
		if imageURL != "" {
			if derr := h.media.Delete(ctx, imageURL); derr != nil {
				h.log.Warn().Err(derr).Str("image", imageURL).Msg("failed to delete orphaned upload")
			}
		}
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusCreated, post)
}

func (h *Handler) homeFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.feed.Home(r.Context(), auth.UserID(r.Context()), parsePage(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, feed)
}

func (h *Handler) authorFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.feed.Author(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"), parsePage(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, feed)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.Get(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, post)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	err := h.posts.Delete(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	result, err := h.engagement.ToggleLike(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, result)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	req, err := decode[domain.AddCommentRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	comment, err := h.engagement.AddComment(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), req.Text)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusCreated, comment)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	err := h.engagement.RemoveComment(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "cid"), auth.UserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}
