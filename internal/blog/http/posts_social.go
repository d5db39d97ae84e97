package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openjournal/blogd/internal/blog/service"
	"github.com/openjournal/blogd/pkg/httpx"
	"github.com/openjournal/blogd/pkg/slogx"
)

type commentRequest struct {
	Text string `json:"text"`
}

// HandleLike increments a post's like counter.
//
//	@Summary		Like a post
//	@Description	Adds one like. Likes are anonymous and unbounded; liking twice counts twice.
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		string					true	"Post id"
//	@Success		200	{object}	PostResponse			"Post with the new like total"
//	@Failure		404	{object}	httpx.MessageResponse	"No such post"
//	@Router			/posts/{id}/like [post].
func (h *PostsHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	p, err := h.PostService.Like(r.Context(), r.PathValue("id"))
	if err != nil {
		writePostError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostResponse(p))
}

// HandleAddComment appends a comment to a post.
//
//	@Summary		Comment on a post
//	@Description	Appends a comment. Comments keep their arrival order and cannot be edited or removed.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Post id"
//	@Param			request	body		commentRequest			true	"Comment text"
//	@Success		200		{object}	PostResponse			"Post including the new comment"
//	@Failure		400		{object}	httpx.MessageResponse	"Missing comment text"
//	@Failure		404		{object}	httpx.MessageResponse	"No such post"
//	@Router			/posts/{id}/comments [post].
func (h *PostsHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	p, err := h.PostService.AddComment(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			httpx.WriteMessage(w, http.StatusBadRequest, "comment text is required")
			return
		}
		writePostError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostResponse(p))
}
