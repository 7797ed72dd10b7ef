package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dress-diary/app/controller"
	"dress-diary/metrics"
	"dress-diary/service"
)

// Controllers groups the HTTP handlers mounted by NewRouter
type Controllers struct {
	Auth        *controller.AuthController
	Item        *controller.ItemController
	Composition *controller.CompositionController
	Outfit      *controller.OutfitController
	Lookbook    *controller.LookbookController
	Import      *controller.ImportController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// NewRouter mounts every route. Everything except /ping, /metrics, /signup
// and /login requires a bearer token issued by auth.
func NewRouter(controllers *Controllers, auth *service.AuthService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observe)

	r.Get("/ping", pingHandler)
	r.Handle("/metrics", metrics.Handler())

	r.Post("/signup", controllers.Auth.SignUp)
	r.Post("/login", controllers.Auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(authenticate(auth))

		r.Post("/logout", controllers.Auth.Logout)
		r.Get("/me", controllers.Auth.Profile)
		r.Put("/me/dark-mode", controllers.Auth.SetDarkMode)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", controllers.Item.ListItems)
			r.Post("/", controllers.Item.CreateItem)
			r.Get("/filters", controllers.Item.FilterOptions)
			r.Get("/{id}/image", controllers.Item.GetImage)
			r.Delete("/{id}", controllers.Item.DeleteItem)
		})

		r.Route("/compositions", func(r chi.Router) {
			r.Post("/", controllers.Composition.Open)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.Composition.Get)
				r.Delete("/", controllers.Composition.Abandon)
				r.Post("/drag", controllers.Composition.BeginDrag)
				r.Post("/drag/cancel", controllers.Composition.CancelDrag)
				r.Post("/drop", controllers.Composition.Drop)
				r.Delete("/placements/{itemId}", controllers.Composition.RemovePlacement)
				r.Post("/reload", controllers.Composition.Reload)
				r.Put("/palette", controllers.Composition.SetPalette)
				r.Post("/save", controllers.Composition.Save)
			})
		})

		r.Route("/outfits", func(r chi.Router) {
			r.Get("/", controllers.Outfit.ListOutfits)
			r.Delete("/{id}", controllers.Outfit.DeleteOutfit)
			r.Get("/{id}/preview.png", controllers.Outfit.Preview)
		})

		r.Get("/suggestion/today", controllers.Outfit.TodaySuggestion)
		r.Get("/lookbook", controllers.Lookbook.Lookbook)
		r.Post("/imports/drive", controllers.Import.ImportDrive)
	})

	return r
}

// observe records every request in the HTTP metrics, labelled by route pattern
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.ObserveHTTPRequest(r.Method, route, status, time.Since(start))
	})
}
