package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openjournal/blogd/internal/blog/service"
	"github.com/openjournal/blogd/internal/blog/store/drivers/sqlite"
	"github.com/openjournal/blogd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	secret := []byte("test-secret-test-secret-test-secret!")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter(jwtx.NewCommonHS256(secret, "blogd-test"), "test", st, logger, nil)
	router.UserService = &service.UserService{Store: st}
	router.TokenService = &service.TokenService{
		Signer: signer,
		Issuer: "blogd-test",
		TTL:    jwtx.DefaultAccessTokenTTL,
	}
	router.PostService = &service.PostService{Store: st}
	router.ApplyRoutes()

	return router
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

// registerAndLogin creates a user and returns a bearer token for them.
func registerAndLogin(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": password}

	rec := doJSON(t, h, http.MethodPost, "/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/auth/login", "", creds)
	require.Equal(t, http.StatusOK, rec.Code)

	var tok TokenResponse
	decodeInto(t, rec, &tok)
	require.NotEmpty(t, tok.Token)
	return tok.Token
}

func TestAuthEndpoints(t *testing.T) {
	h := newTestAPI(t)

	creds := map[string]string{"username": "alice", "password": "correct horse"}

	t.Run("register", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/auth/register", "", creds)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate username is a 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/auth/register", "", creds)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/auth/register", "", map[string]string{"username": "bob"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login returns a token", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/auth/login", "", creds)
		require.Equal(t, http.StatusOK, rec.Code)

		var tok TokenResponse
		decodeInto(t, rec, &tok)
		require.NotEmpty(t, tok.Token)
	})

	t.Run("wrong password and unknown user both 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/auth/login", "",
			map[string]string{"username": "alice", "password": "wrong"})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, h, http.MethodPost, "/auth/login", "",
			map[string]string{"username": "mallory", "password": "wrong"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostEndpoints(t *testing.T) {
	h := newTestAPI(t)

	alice := registerAndLogin(t, h, "alice", "password-alice")
	bob := registerAndLogin(t, h, "bob", "password-bob")

	post := map[string]string{"title": "First post", "content": "hello world"}

	t.Run("create requires a token", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/posts", "", post)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	var created PostResponse
	t.Run("create", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/posts", alice, post)
		require.Equal(t, http.StatusCreated, rec.Code)

		decodeInto(t, rec, &created)
		require.NotEmpty(t, created.ID)
		require.Equal(t, "First post", created.Title)
		require.Zero(t, created.Likes)
		require.NotNil(t, created.Comments)
		require.Empty(t, created.Comments)
	})

	t.Run("list and get are open", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/posts", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var posts []PostResponse
		decodeInto(t, rec, &posts)
		require.Len(t, posts, 1)

		rec = doJSON(t, h, http.MethodGet, "/posts/"+created.ID, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update is author-only", func(t *testing.T) {
		revised := map[string]string{"title": "Revised", "content": "still hello"}

		rec := doJSON(t, h, http.MethodPut, "/posts/"+created.ID, bob, revised)
		require.Equal(t, http.StatusForbidden, rec.Code)

		rec = doJSON(t, h, http.MethodPut, "/posts/"+created.ID, alice, revised)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated PostResponse
		decodeInto(t, rec, &updated)
		require.Equal(t, "Revised", updated.Title)
	})

	t.Run("unknown post is a 404", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/posts/no-such-post", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete is author-only", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodDelete, "/posts/"+created.ID, bob, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)

		rec = doJSON(t, h, http.MethodDelete, "/posts/"+created.ID, alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, h, http.MethodGet, "/posts/"+created.ID, "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLikeAndCommentEndpoints(t *testing.T) {
	h := newTestAPI(t)

	alice := registerAndLogin(t, h, "alice", "password-alice")

	rec := doJSON(t, h, http.MethodPost, "/posts", alice,
		map[string]string{"title": "Likeable", "content": "like me"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created PostResponse
	decodeInto(t, rec, &created)

	t.Run("likes need no token and accumulate", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/posts/"+created.ID+"/like", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, h, http.MethodPost, "/posts/"+created.ID+"/like", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var p PostResponse
		decodeInto(t, rec, &p)
		require.EqualValues(t, 2, p.Likes)
	})

	t.Run("comments append in order", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/posts/"+created.ID+"/comments", "",
			map[string]string{"text": "first!"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, h, http.MethodPost, "/posts/"+created.ID+"/comments", "",
			map[string]string{"text": "second"})
		require.Equal(t, http.StatusOK, rec.Code)

		var p PostResponse
		decodeInto(t, rec, &p)
		require.Len(t, p.Comments, 2)
		require.Equal(t, "first!", p.Comments[0].Text)
		require.Equal(t, "second", p.Comments[1].Text)
	})

	t.Run("empty comment is a 400", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/posts/"+created.ID+"/comments", "",
			map[string]string{"text": ""})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("liking a missing post is a 404", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/posts/no-such-post/like", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	h := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestHealthEndpoints(t *testing.T) {
	h := newTestAPI(t)

	t.Run("livez", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/livez", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var health HealthResponse
		decodeInto(t, rec, &health)
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "test", health.Version)
	})

	t.Run("readyz reports the database", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/readyz", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var health HealthResponse
		decodeInto(t, rec, &health)
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "ok", health.Database)
	})
}
