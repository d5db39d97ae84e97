package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openjournal/blogd/internal/blog/service"
	"github.com/openjournal/blogd/internal/blog/store"
	"github.com/openjournal/blogd/pkg/httpx"
	"github.com/openjournal/blogd/pkg/jwtx"
	"github.com/openjournal/blogd/pkg/slogx"

	_ "github.com/openjournal/blogd/api/blog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	UserService  *service.UserService
	TokenService *service.TokenService
	PostService  *service.PostService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	corsOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Default middleware chain: CORS for browser clients, then contextual
	// request logging.
	r.middlewares = []httpx.Middleware{
		httpx.CORSMiddleware(corsOrigins...),
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPosts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Blog Backend API
//	@version		0.1.0
//	@description	Minimal blog backend: registration/login with hashed credentials and
//	@description	bearer-token issuance, plus CRUD over posts with likes and comments.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	register := &RegisterHandler{UserService: r.UserService}
	login := &LoginHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}

	r.Mux.Handle("POST /auth/register", register)
	r.Mux.Handle("POST /auth/login", login)
}

func (r *Router) registerPosts() {
	h := &PostsHandler{PostService: r.PostService}

	authn := httpx.AuthnMiddleware(r.verifier)

	// Only create/update/delete require authentication; list, get, like and
	// comment are open to anyone.
	r.Mux.Handle("POST /posts", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("PUT /posts/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn))
	r.Mux.Handle("DELETE /posts/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn))

	r.Mux.HandleFunc("GET /posts", h.HandleList)
	r.Mux.HandleFunc("GET /posts/{id}", h.HandleGet)
	r.Mux.HandleFunc("POST /posts/{id}/like", h.HandleLike)
	r.Mux.HandleFunc("POST /posts/{id}/comments", h.HandleAddComment)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))

	r.Mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteMessage(w, http.StatusOK, "blog backend")
	})
}
