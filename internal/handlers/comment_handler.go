package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/white/lead-management/internal/models"
)

// CommentHandler handles the comments nested under a lead
type CommentHandler struct {
	comments CommentStore
}

func NewCommentHandler(comments CommentStore) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CommentCreatedResponse is the body of POST /leads/{id}/comments
type CommentCreatedResponse struct {
	Message string          `json:"message"`
	Comment *models.Comment `json:"comment"`
}

// ListComments godoc
// @Summary List the comments of a lead
// @Tags Comments
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {array} models.CommentView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No comments found for this lead ID."
// @Failure 500 {object} ErrorResponse
// @Router /leads/{id}/comments [get]
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{Internal: "An error occurred while fetching comments"}

	leadID, err := models.ParseObjectID("id", mux.Vars(r)["id"])
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	comments, err := h.comments.ListByLead(r.Context(), leadID)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}
	if len(comments) == 0 {
		respondWithError(w, http.StatusNotFound, "No comments found for this lead ID.")
		return
	}
	respondWithJSON(w, http.StatusOK, comments)
}

// CreateComment godoc
// @Summary Add a comment to a lead
// @Description The lead is taken from the path and is not checked for existence.
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param comment body models.CreateCommentRequest true "Comment"
// @Success 201 {object} CommentCreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /leads/{id}/comments [post]
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{Internal: "Failed to add comment."}

	leadID, err := models.ParseObjectID("id", mux.Vars(r)["id"])
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	var req models.CreateCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	comment, err := models.NewComment(leadID, req)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	if err := h.comments.Create(r.Context(), comment); err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	respondWithJSON(w, http.StatusCreated, CommentCreatedResponse{
		Message: "Comment added successfully!",
		Comment: comment,
	})
}
