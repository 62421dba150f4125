package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/draca/medium-api/internal/api"
	apiMiddleware "github.com/draca/medium-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	userHandler := api.NewUserHandler(app.userStore, app.jwtService, app.passwordVerifier)
	blogHandler := api.NewBlogHandler(app.blogStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api/v1", func(r chi.Router) {
		// User endpoints (public): these issue the tokens the blog
		// routes verify.
		r.Post("/user/signup", userHandler.Signup)
		r.Post("/user/signin", userHandler.Signin)

		// Blog endpoints, all behind the auth gate.
		r.Route("/blog", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/", blogHandler.Create)
			r.Put("/", blogHandler.Update)
			r.Get("/bulk", blogHandler.List)
			r.Get("/{id}", blogHandler.GetByID)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
