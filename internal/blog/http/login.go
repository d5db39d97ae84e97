package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openjournal/blogd/internal/blog/service"
	"github.com/openjournal/blogd/pkg/httpx"
	"github.com/openjournal/blogd/pkg/slogx"
)

type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP handles login and token issuance.
//
//	@Summary		Log in
//	@Description	Verifies credentials and returns a bearer token valid for one hour.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest			true	"Credentials"
//	@Success		200		{object}	TokenResponse			"Signed identity token"
//	@Failure		400		{object}	httpx.MessageResponse	"Unknown user or wrong password"
//	@Failure		500		{object}	httpx.MessageResponse	"Internal error"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	u, err := h.UserService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteMessage(w, http.StatusBadRequest, "invalid username or password")
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.TokenService.Issue(u)
	if err != nil {
		log.Error("token issuance failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}
