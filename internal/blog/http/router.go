package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/service"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store"
	"github.com/aussiebroadwan/ngxblog/pkg/httpx"
	"github.com/aussiebroadwan/ngxblog/pkg/jwtx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/ngxblog/api/blog" // Swagger docs
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

	store           store.Store
	UserService     *service.UserService
	ResetService    *service.ResetService
	DocumentService *service.DocumentService
	UploadService   *service.UploadService

	// StaticDir is served at / when it exists.
	StaticDir string

	// Registry backs /metrics. Nil disables both the endpoint and request
	// instrumentation.
	Registry *prometheus.Registry
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerReset()
	r.registerAuthors()
	r.registerArticles()
	r.registerCategories()
	r.registerUpload()
	r.registerSystem()
	r.registerStatic()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())

	if r.Registry != nil {
		// Request metrics need the matched pattern, so they wrap the mux
		// directly and run innermost.
		m := httpx.NewMetrics("ngxblog", r.Registry)
		r.middlewares = append(r.middlewares, m.Middleware())
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{}))
	}
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Ngx Blog API
//	@version		0.1.0
//	@description	Backend for the Ngx Blog single page app: accounts, password resets, authors, articles, categories and image uploads.
//	@description
//	@description				Session tokens are HS256 JWTs valid for 60 days.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/ngxblog
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Resolve the route up front so the access log can name it.
	_, req.Pattern = r.Mux.Handler(req)
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("POST /api/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /api/login", http.HandlerFunc(h.HandleLogin))

	r.Mux.Handle("GET /api/user",
		httpx.Wrap(h.HandleCurrentUser, httpx.RequireAuth(r.verifier)),
	)
	r.Mux.Handle("POST /api/changePassword",
		httpx.Wrap(h.HandleChangePassword, httpx.RequireAuth(r.verifier)),
	)
}

func (r *Router) registerReset() {
	h := &ResetHandler{ResetService: r.ResetService}

	r.Mux.Handle("POST /api/resetPassword", http.HandlerFunc(h.HandleRequest))
	r.Mux.Handle("GET /api/isResetIdOk/{resetId}", http.HandlerFunc(h.HandleCheck))
	r.Mux.Handle("POST /api/resetChangePassword", http.HandlerFunc(h.HandleChange))
}

func (r *Router) registerAuthors() {
	h := &AuthorsHandler{DocumentService: r.DocumentService}
	auth := httpx.RequireAuth(r.verifier)

	r.Mux.Handle("GET /api/authors", httpx.Wrap(h.HandleList, auth))
	r.Mux.Handle("GET /api/author", httpx.Wrap(h.HandleFind, auth))
	r.Mux.Handle("GET /api/authors/{id}", httpx.Wrap(h.HandleGet, auth))
	r.Mux.Handle("POST /api/authors", httpx.Wrap(h.HandleAdd, auth))
	r.Mux.Handle("PUT /api/authors", httpx.Wrap(h.HandleUpdate, auth))
	r.Mux.Handle("DELETE /api/authors", httpx.Wrap(h.HandleDelete, auth))
}

func (r *Router) registerArticles() {
	h := &ArticlesHandler{DocumentService: r.DocumentService}
	auth := httpx.RequireAuth(r.verifier)

	// Anonymous visitors can read the article list.
	r.Mux.Handle("GET /api/articles", httpx.Wrap(h.HandleList, httpx.OptionalAuth(r.verifier)))

	r.Mux.Handle("GET /api/articlesByAuthor", httpx.Wrap(h.HandleListMine, auth))
	r.Mux.Handle("GET /api/article", httpx.Wrap(h.HandleFind, auth))
	r.Mux.Handle("POST /api/articles", httpx.Wrap(h.HandleAdd, auth))
	r.Mux.Handle("PUT /api/article/{id}", httpx.Wrap(h.HandleUpdate, auth))
	r.Mux.Handle("DELETE /api/delete/articles/{id}", httpx.Wrap(h.HandleDelete, auth))
}

func (r *Router) registerCategories() {
	h := &CategoriesHandler{DocumentService: r.DocumentService}
	auth := httpx.RequireAuth(r.verifier)

	r.Mux.Handle("GET /api/categories", httpx.Wrap(h.HandleList, auth))
	r.Mux.Handle("POST /api/categories", httpx.Wrap(h.HandleAdd, auth))
	r.Mux.Handle("PUT /api/categories", httpx.Wrap(h.HandleUpdate, auth))
}

func (r *Router) registerUpload() {
	h := &UploadHandler{UploadService: r.UploadService}

	r.Mux.Handle("POST /api/upload", httpx.Chain(h, httpx.OptionalAuth(r.verifier)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

func (r *Router) registerStatic() {
	if r.StaticDir == "" {
		return
	}
	if fi, err := os.Stat(r.StaticDir); err != nil || !fi.IsDir() {
		r.logger.Warn("static directory not found, client will not be served", "dir", r.StaticDir)
		return
	}

	r.Mux.Handle("GET /", http.FileServer(http.Dir(r.StaticDir)))
}
