package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/pontodigital/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	timeEntryHandler TimeEntryHandler,
	justificationHandler JustificationHandler,
	teamHandler TeamHandler,
	userHandler UserHandler,
	invitationHandler InvitationHandler,
	reportHandler ReportHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-digital"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Route("/callback", func(r chi.Router) {
					r.Get("/google", authHandler.OAuthCallbackGoogle)
				})
			})
		})

		// SSE stream authenticates via its own short-lived token
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/auth/profile", authHandler.Profile)

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/punch", timeEntryHandler.Punch)
				r.Get("/today", timeEntryHandler.GetToday)
				r.Get("/date/{date}", timeEntryHandler.GetByDate)
				r.Get("/competence/{competence}", timeEntryHandler.ListByCompetence)
				r.Get("/{id}", timeEntryHandler.Get)

				// Manager corrections
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", timeEntryHandler.List)
					r.Post("/", timeEntryHandler.CreateRetroactive)
					r.Put("/{id}", timeEntryHandler.Update)
					r.Delete("/{id}", timeEntryHandler.Delete)
				})
			})

			r.Route("/justifications", func(r chi.Router) {
				r.Post("/", justificationHandler.Create)
				r.Get("/my", justificationHandler.ListMine)
				r.Get("/{id}", justificationHandler.Get)

				r.Route("/types", func(r chi.Router) {
					r.Get("/", justificationHandler.ListTypes)
					r.Get("/{id}", justificationHandler.GetType)

					// Manager only catalog mutation
					r.Group(func(r chi.Router) {
						r.Use(middleware.ManagerOnly)
						r.Post("/", justificationHandler.CreateType)
						r.Put("/{id}", justificationHandler.UpdateType)
						r.Delete("/{id}", justificationHandler.DeleteType)
					})
				})

				// Manager approval workflow
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/pending", justificationHandler.ListPending)
					r.Post("/{id}/approve", justificationHandler.Approve)
					r.Post("/{id}/reject", justificationHandler.Reject)
				})
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", teamHandler.List)
				r.Get("/{id}", teamHandler.Get)
				r.Get("/{id}/members", teamHandler.ListMembers)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", teamHandler.Create)
					r.Put("/{id}", teamHandler.Update)
					r.Delete("/{id}", teamHandler.Delete)
					r.Post("/{id}/members", teamHandler.AddMember)
					r.Delete("/{id}/members/{userID}", teamHandler.RemoveMember)
					r.Get("/{id}/time-entries", timeEntryHandler.ListByTeam)
					r.Get("/{id}/report", reportHandler.TeamMonthly)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/organization", reportHandler.OrganizationMonthly)
			})

			r.Route("/management", func(r chi.Router) {
				r.Post("/invitations/{token}/accept", invitationHandler.Accept)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/stats", invitationHandler.Stats)
					r.Get("/invitations", invitationHandler.List)
					r.Post("/invitations", invitationHandler.Create)
					r.Delete("/invitations/{id}", invitationHandler.Delete)
					r.Get("/users/available", userHandler.ListAvailable)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)
				r.Post("/{id}/activate", userHandler.Activate)
				r.Post("/{id}/deactivate", userHandler.Deactivate)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Get("/sse-token", notificationHandler.GetSSEToken)
				r.Post("/mark-read", notificationHandler.MarkAsRead)
				r.Post("/mark-all-read", notificationHandler.MarkAllAsRead)
				r.Delete("/{id}", notificationHandler.Delete)
			})
		})
	})
	return r
}
