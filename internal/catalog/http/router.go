package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pagebound/pagebound/internal/catalog/service"
	"github.com/pagebound/pagebound/internal/catalog/store"
	"github.com/pagebound/pagebound/pkg/httpx"
	"github.com/pagebound/pagebound/pkg/jwtx"
	"github.com/pagebound/pagebound/pkg/slogx"

	_ "github.com/pagebound/pagebound/api/catalog" // Swagger docs
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

	store          store.Store
	AccountService *service.AccountService
	BookService    *service.BookService
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
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerBooks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Pagebound Catalog Service API
//	@version		0.1.0
//	@description	A small book catalog service: users sign up, log in, and publish or
//	@description	unpublish listings; anyone can browse published books or search by title.
//	@description	Protected routes are gated on a signed bearer token minted at login.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signupHandler := &SignupHandler{AccountService: r.AccountService}
	loginHandler := &LoginHandler{AccountService: r.AccountService}

	r.Mux.Handle("POST /api/auth/signup", signupHandler)
	r.Mux.Handle("POST /api/auth/login", loginHandler)
}

func (r *Router) registerBooks() {
	h := &BooksHandler{BookService: r.BookService}

	authn := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("POST /api/books/publish",
		httpx.Chain(http.HandlerFunc(h.HandlePublish), authn))

	r.Mux.Handle("PUT /api/books/unpublish/{bookID}",
		httpx.Chain(http.HandlerFunc(h.HandleUnpublish), authn))

	r.Mux.Handle("GET /api/books/user",
		httpx.Chain(http.HandlerFunc(h.HandleMine), authn))

	r.Mux.Handle("GET /api/books/published",
		httpx.Chain(http.HandlerFunc(h.HandlePublished), authn))

	// Search is the one public listing endpoint.
	r.Mux.Handle("GET /api/books/search", http.HandlerFunc(h.HandleSearch))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
