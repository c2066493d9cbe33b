package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/josanism/community-api/internal/api"
	apiMiddleware "github.com/josanism/community-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	signupHandler := api.NewSignupHandler(app.signupService)
	authHandler := api.NewAuthHandler(
		app.platform,
		app.cookieManager,
		app.tokenVerifier,
		app.profileStore,
		app.config.Auth.ReservedEmailDomain,
		app.logger,
	)
	profileHandler := api.NewProfileHandler(app.profileStore)
	sessionMiddleware := apiMiddleware.NewSessionMiddleware(app.tokenVerifier)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/signup", signupHandler.Signup)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/callback", authHandler.Callback)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/profiles/{username}", profileHandler.GetByUsername)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(sessionMiddleware.Authenticate)
			r.Get("/auth/me", authHandler.Me)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
