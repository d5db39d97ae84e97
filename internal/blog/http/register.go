package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openjournal/blogd/internal/blog/service"
	"github.com/openjournal/blogd/pkg/httpx"
	"github.com/openjournal/blogd/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP handles user registration.
//
//	@Summary		Register a new user
//	@Description	Creates a user with a hashed password. Usernames are unique; the password is never echoed back.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest			true	"Credentials"
//	@Success		201		{object}	httpx.MessageResponse	"Registered"
//	@Failure		400		{object}	httpx.MessageResponse	"Missing fields or duplicate username"
//	@Failure		500		{object}	httpx.MessageResponse	"Internal error"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		log.Info("user registered", "user_id", u.ID)
		httpx.WriteMessage(w, http.StatusCreated, "registered")
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.WriteMessage(w, http.StatusBadRequest, "username already taken")
	case errors.Is(err, service.ErrMissingCredentials):
		httpx.WriteMessage(w, http.StatusBadRequest, "username and password are required")
	default:
		log.Error("register failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
	}
}
