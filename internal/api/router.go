package api

import (
	"net/http"
	"time"

	"calendo/internal/api/handler"
	"calendo/internal/api/middleware"
	"calendo/internal/app/service"
	"calendo/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	calendarService *service.CalendarService,
	eventService *service.EventService,
	reminderService *service.ReminderService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies a bearer token if present and puts claims in context; the
	// Authenticator middleware enforces it on protected subtrees.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(apiRouter chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService)
		apiRouter.Route("/auth", authHandler.RegisterRoutes)

		// User admin routes (any signed-in role can list; mutations Admin only)
		userHandler := handler.NewUserHandler(userService)
		apiRouter.Route("/users", func(users chi.Router) {
			users.Use(middleware.Authenticator)
			userHandler.RegisterRoutes(users)
		})

		// Calendar / event / reminder routes (role guards registered per handler)
		calendarHandler := handler.NewCalendarHandler(calendarService)
		apiRouter.Route("/calendars", calendarHandler.RegisterRoutes)

		eventHandler := handler.NewEventHandler(eventService)
		apiRouter.Route("/events", eventHandler.RegisterRoutes)

		reminderHandler := handler.NewReminderHandler(reminderService)
		apiRouter.Route("/reminders", reminderHandler.RegisterRoutes)
	})

	return r
}
