package routes

import (
	"net/http"

	_ "github.com/Dosada05/swiss-tournament/docs" // registers the swagger document
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(
	router *chi.Mux,
	tournamentHandler *handlers.TournamentHandler,
	snapshotHandler *handlers.SnapshotHandler,
	webSocketHandler *handlers.WebSocketHandler,
	allowedOrigins []string,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", tournamentHandler.HealthHandler)

	router.Route("/players", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListPlayersHandler)
		r.Post("/", tournamentHandler.RegisterPlayerHandler)
		r.Delete("/", tournamentHandler.DeletePlayersHandler)
		r.Get("/count", tournamentHandler.CountPlayersHandler)
		r.Get("/{playerID}", tournamentHandler.GetPlayerHandler)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListMatchesHandler)
		r.Post("/", tournamentHandler.ReportMatchHandler)
		r.Delete("/", tournamentHandler.DeleteMatchesHandler)
	})

	router.Get("/standings", tournamentHandler.StandingsHandler)
	router.Get("/pairings", tournamentHandler.PairingsHandler)
	router.Get("/overview", tournamentHandler.OverviewHandler)
	router.Post("/snapshots", snapshotHandler.CreateSnapshotHandler)

	router.Get("/ws", webSocketHandler.ServeWs)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}
