package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hastma/hastma-cup/handlers"
	"github.com/hastma/hastma-cup/middleware"
	"github.com/hastma/hastma-cup/services"
)

// SetupRoutes wires every handler into the router. Read endpoints are
// public so the scoreboard and dashboard can poll them; everything that
// mutates tournament state sits behind the admin token check.
func SetupRoutes(
	router *chi.Mux,
	auth services.AuthService,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	teamHandler *handlers.TeamHandler,
	matchHandler *handlers.MatchHandler,
	predictionHandler *handlers.PredictionHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Post("/auth/login", authHandler.LoginHandler)

	// Public read surface, polled by the scoreboard.
	router.Get("/tournament", tournamentHandler.GetDocumentHandler)
	router.Get("/standings/{group}", tournamentHandler.StandingsHandler)
	router.Get("/dashboard", dashboardHandler.StatsHandler)
	router.Get("/predictions", predictionHandler.ListHandler)
	router.Post("/predictions", predictionHandler.SubmitHandler)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(auth))

		r.Post("/tournament", tournamentHandler.ReplaceDocumentHandler)
		r.Get("/logs", tournamentHandler.LogsHandler)
		r.Post("/snapshots", tournamentHandler.ExportSnapshotHandler)
		r.Delete("/predictions", predictionHandler.ClearHandler)

		r.Route("/teams", func(r chi.Router) {
			r.Post("/", teamHandler.CreateHandler)
			r.Patch("/{teamID}", teamHandler.UpdateHandler)
			r.Delete("/{teamID}", teamHandler.DeleteHandler)

			r.Post("/{teamID}/players", teamHandler.AddPlayerHandler)
			r.Patch("/{teamID}/players/{playerIndex}", teamHandler.UpdatePlayerHandler)
			r.Delete("/{teamID}/players/{playerIndex}", teamHandler.RemovePlayerHandler)
			r.Post("/{teamID}/players/{playerIndex}/captain", teamHandler.SetCaptainHandler)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", matchHandler.CreateHandler)
			r.Patch("/{matchID}", matchHandler.UpdateScheduleHandler)

			r.Post("/{matchID}/status", matchHandler.SetStatusHandler)
			r.Post("/{matchID}/finish", matchHandler.FinishHandler)
			r.Post("/{matchID}/unfinish", matchHandler.UnfinishHandler)

			r.Post("/{matchID}/events", matchHandler.AddEventHandler)
			r.Patch("/{matchID}/events/{eventIndex}", matchHandler.UpdateEventHandler)
			r.Delete("/{matchID}/events/{eventIndex}", matchHandler.RemoveEventHandler)

			r.Post("/{matchID}/score", matchHandler.AdjustScoreHandler)
			r.Post("/{matchID}/score/recompute", matchHandler.RecomputeScoreHandler)
		})
	})
}
