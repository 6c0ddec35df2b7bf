package handlers

import (
	"net/http"

	"github.com/white/lead-management/internal/models"
)

// TagHandler handles tag endpoints
type TagHandler struct {
	tags TagStore
}

func NewTagHandler(tags TagStore) *TagHandler {
	return &TagHandler{tags: tags}
}

// TagCreatedResponse is the body of POST /tags
type TagCreatedResponse struct {
	Message string      `json:"message"`
	Tag     *models.Tag `json:"tag"`
}

// CreateTag godoc
// @Summary Create a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param tag body models.CreateTagRequest true "Tag"
// @Success 200 {object} TagCreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tags [post]
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	msgs := errorMessages{Internal: "Failed to create new tag."}

	var req models.CreateTagRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	tag, err := models.NewTag(req)
	if err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	if err := h.tags.Create(r.Context(), tag); err != nil {
		respondWithStoreError(w, r, err, msgs)
		return
	}

	// tags answer 200 on create, unlike the other resources
	respondWithJSON(w, http.StatusOK, TagCreatedResponse{
		Message: "Tag created successfully!",
		Tag:     tag,
	})
}

// ListTags godoc
// @Summary List tags
// @Tags Tags
// @Produce json
// @Success 200 {array} models.Tag
// @Failure 404 {object} ErrorResponse "Tags not found."
// @Failure 500 {object} ErrorResponse
// @Router /tags [get]
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.List(r.Context())
	if err != nil {
		respondWithStoreError(w, r, err, errorMessages{Internal: "Failed to fetch tags."})
		return
	}
	if len(tags) == 0 {
		respondWithError(w, http.StatusNotFound, "Tags not found.")
		return
	}
	respondWithJSON(w, http.StatusOK, tags)
}
