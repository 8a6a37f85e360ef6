package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/vercel098/central-city-soccer/handlers"
	"github.com/vercel098/central-city-soccer/middleware"
)

// SetupRoutes wires the full HTTP surface. Paths match the contract the
// frontend was built against. Admin dashboard endpoints are unauthenticated
// because admin login issues no token; team and player endpoints are behind
// the bearer-token middleware.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	teamHandler *handlers.TeamHandler,
	playerHandler *handlers.PlayerHandler,
	uploadHandler *handlers.UploadHandler,
	smsHandler *handlers.SMSHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))

	// Registration and login
	router.Post("/register", authHandler.RegisterAdmin)
	router.Post("/login", authHandler.LoginAdmin)
	router.Post("/teamregister", teamHandler.Register)
	router.Post("/teamlogin", authHandler.LoginTeam)
	router.Post("/playerregister", playerHandler.Register)
	router.Post("/playerlogin", authHandler.LoginPlayer)

	// Admin dashboard
	router.Get("/teams", teamHandler.List)
	router.Put("/teams/{id}", teamHandler.UpdateApproval)
	router.Delete("/teams/{id}", teamHandler.Delete)
	router.Put("/teams/edit/{id}", teamHandler.Edit)
	router.Get("/team/{id}", teamHandler.GetByID)
	router.Get("/team/count", teamHandler.Count)
	router.Get("/teamsget", teamHandler.ListSummaries)
	router.Get("/teamsget/{teamName}", teamHandler.GetByName)

	router.Get("/players", playerHandler.List)
	router.Get("/players/export", playerHandler.ExportCSV)
	router.Put("/players/{id}", playerHandler.UpdateByID)
	router.Delete("/players/{id}", playerHandler.DeleteByID)
	router.Get("/player/{playerId}", playerHandler.GetByPlayerID)
	router.Get("/player/count", playerHandler.Count)

	// Team self-service
	router.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/getTeamProfile", teamHandler.GetProfile)
		r.Patch("/getTeamProfile", teamHandler.PatchProfile)

		r.Get("/getPlayersForTeam", playerHandler.ListForTeam)
		r.Patch("/getPlayersForTeam", playerHandler.PatchForTeam)
		r.Patch("/getPlayersForTeam/{playerId}", playerHandler.PatchForTeamByID)

		r.Patch("/approvePlayer/{playerId}", playerHandler.Approve)
		r.Delete("/approvePlayer/{playerId}", playerHandler.DeleteForTeam)
	})

	// Player self-service
	router.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/playerprofile", playerHandler.Profile)
		r.Put("/playerupdate", playerHandler.UpdateOwnProfile)
	})

	// Shared services
	router.Post("/upload", uploadHandler.Upload)
	router.Post("/sendPlayerApprovalSMS", smsHandler.SendPlayerApprovalSMS)
}
