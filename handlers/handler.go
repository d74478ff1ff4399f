package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/juho05/wavedial/auth"
	"github.com/juho05/wavedial/favorites"
	"github.com/juho05/wavedial/repos"
	"github.com/juho05/wavedial/stations"
	"github.com/juho05/wavedial/upload"
)

type Handler struct {
	router chi.Router

	DB        repos.DB
	Auth      *auth.Service
	Stations  *stations.Service
	Favorites *favorites.Service
	Uploads   *upload.Handler

	secureCookies bool
}

func New(db repos.DB, authService *auth.Service, stationService *stations.Service, favoriteService *favorites.Service, uploads *upload.Handler, secureCookies bool) *Handler {
	h := &Handler{
		DB:            db,
		Auth:          authService,
		Stations:      stationService,
		Favorites:     favoriteService,
		Uploads:       uploads,
		secureCookies: secureCookies,
	}
	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(h.sessionMiddleware)

	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
	r.Get("/logout", h.handleLogout)

	r.Get("/stations", h.handleListStations)
	r.Get("/stations/{id}", h.handleGetStation)
	r.Get("/search", h.handleSearch)

	r.Group(func(r chi.Router) {
		r.Use(h.requireUser)
		r.Post("/stations", h.handleCreateStation)
		r.Post("/stations/{id}", h.handleUpdateStation)
		r.Post("/stations/{id}/delete", h.handleDeleteStation)
		r.Get("/favourites", h.handleListFavourites)
		r.Post("/favourites", h.handleAddFavourite)
	})

	r.Handle(upload.PublicPrefix+"/*", http.StripPrefix(upload.PublicPrefix+"/", http.FileServer(http.Dir(h.Uploads.Dir()))))

	h.router = r
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.StripSlashes(h.router).ServeHTTP(w, r)
}
