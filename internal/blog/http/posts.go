package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/openjournal/blogd/internal/blog/service"
	"github.com/openjournal/blogd/internal/blog/store"
	"github.com/openjournal/blogd/pkg/httpx"
	"github.com/openjournal/blogd/pkg/slogx"
)

type PostsHandler struct {
	PostService *service.PostService
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HandleCreate creates a post for the authenticated user.
//
//	@Summary		Create a post
//	@Description	Persists a new post authored by the authenticated user, with zero likes and no comments.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		postRequest				true	"Title and content"
//	@Success		201		{object}	PostResponse			"Created post"
//	@Failure		400		{object}	httpx.MessageResponse	"Missing title or content"
//	@Failure		401		{object}	httpx.MessageResponse	"Missing or invalid token"
//	@Router			/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	authorID := httpx.UserIDFromContext(r.Context())
	p, err := h.PostService.Create(r.Context(), req.Title, req.Content, authorID)
	if err != nil {
		writePostError(w, log, err)
		return
	}

	log.Info("post created", "post_id", p.ID, "author", authorID)
	httpx.WriteJSON(w, http.StatusCreated, toPostResponse(p))
}

// HandleList returns all posts, newest first.
//
//	@Summary	List posts
//	@Tags		Posts
//	@Produce	json
//	@Success	200	{array}		PostResponse			"Posts ordered by creation time, newest first"
//	@Failure	500	{object}	httpx.MessageResponse	"Internal error"
//	@Router		/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	posts, err := h.PostService.List(r.Context())
	if err != nil {
		writePostError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostResponses(posts))
}

// HandleGet returns a single post by id.
//
//	@Summary	Fetch a post
//	@Tags		Posts
//	@Produce	json
//	@Param		id	path		string					true	"Post id"
//	@Success	200	{object}	PostResponse			"The post"
//	@Failure	404	{object}	httpx.MessageResponse	"No such post"
//	@Router		/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	p, err := h.PostService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writePostError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostResponse(p))
}

// HandleUpdate overwrites a post's title and content.
//
//	@Summary		Update a post
//	@Description	Only the author may update their post; other fields are untouched.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Post id"
//	@Param			request	body		postRequest				true	"New title and content"
//	@Success		200		{object}	PostResponse			"Updated post"
//	@Failure		400		{object}	httpx.MessageResponse	"Missing title or content"
//	@Failure		403		{object}	httpx.MessageResponse	"Caller is not the author"
//	@Failure		404		{object}	httpx.MessageResponse	"No such post"
//	@Router			/posts/{id} [put].
func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	callerID := httpx.UserIDFromContext(r.Context())
	p, err := h.PostService.Update(r.Context(), r.PathValue("id"), callerID, req.Title, req.Content)
	if err != nil {
		writePostError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostResponse(p))
}

// HandleDelete removes a post.
//
//	@Summary		Delete a post
//	@Description	Only the author may delete their post. Comments are removed with it.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Post id"
//	@Success		200	{object}	httpx.MessageResponse	"Deleted"
//	@Failure		403	{object}	httpx.MessageResponse	"Caller is not the author"
//	@Failure		404	{object}	httpx.MessageResponse	"No such post"
//	@Router			/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	callerID := httpx.UserIDFromContext(r.Context())
	if err := h.PostService.Delete(r.Context(), r.PathValue("id"), callerID); err != nil {
		writePostError(w, log, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "post deleted")
}

// writePostError maps service/store errors onto the status/message contract.
func writePostError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		httpx.WriteMessage(w, http.StatusBadRequest, "title and content are required")
	case errors.Is(err, service.ErrNotOwner):
		httpx.WriteMessage(w, http.StatusForbidden, "only the author may modify this post")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "post not found")
	default:
		log.Error("post operation failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
	}
}
