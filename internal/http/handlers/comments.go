package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-comments-api/internal/errors"
	"github.com/pribylovaa/go-comments-api/internal/models"
	"github.com/pribylovaa/go-comments-api/internal/service"
)

const msgCommentDeleted = "Comment deleted successfully"

// ListComments — GET /comments?userId=&postId=.
func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.listComments(w, r, models.Filter{
		UserID: models.Ref(q.Get("userId")),
		PostID: models.Ref(q.Get("postId")),
	})
}

// ListPostComments — GET /posts/{id}/comments?userId=.
func (h *Handlers) ListPostComments(w http.ResponseWriter, r *http.Request) {
	h.listComments(w, r, models.Filter{
		PostID: models.Ref(chi.URLParam(r, "id")),
		UserID: models.Ref(r.URL.Query().Get("userId")),
	})
}

// ListUserComments — GET /users/{id}/comments?postId=.
func (h *Handlers) ListUserComments(w http.ResponseWriter, r *http.Request) {
	h.listComments(w, r, models.Filter{
		UserID: models.Ref(chi.URLParam(r, "id")),
		PostID: models.Ref(r.URL.Query().Get("postId")),
	})
}

func (h *Handlers) listComments(w http.ResponseWriter, r *http.Request, f models.Filter) {
	comments, err := h.Service.ListComments(r.Context(), f)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ListCommentsResponse{Comments: comments})
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var in models.CreateCommentRequest
	if err := decodeJSON(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.New(http.StatusBadRequest, apierrors.MsgInsufficientData))
		return
	}

	comment, err := h.Service.CreateComment(r.Context(), service.CreateCommentInput{
		UserID: in.UserID,
		PostID: in.PostID,
		Body:   in.Body,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *Handlers) GetCommentByID(w http.ResponseWriter, r *http.Request) {
	comment, err := h.Service.CommentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.GetCommentResponse{Comment: comment})
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateCommentRequest
	if err := decodeJSON(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.New(http.StatusBadRequest, apierrors.MsgInsufficientData))
		return
	}

	comment, err := h.Service.UpdateCommentBody(r.Context(), service.UpdateCommentInput{
		ID:   chi.URLParam(r, "id"),
		Body: in.Body,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.UpdateCommentResponse{UpdatedComment: comment})
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteComment(r.Context(), chi.URLParam(r, "id")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.DeleteCommentResponse{Message: msgCommentDeleted})
}
