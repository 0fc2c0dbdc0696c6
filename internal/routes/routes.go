package routes

import (
	"net/http"

	"github.com/skilltrackhq/skilltrack/internal/app"
	"github.com/skilltrackhq/skilltrack/internal/handler"
	"github.com/skilltrackhq/skilltrack/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService, app.UserService)
	profile := handler.NewProfileHandler(app.ProfileService)
	skill := handler.NewSkillHandler(app.SkillService, app.DashboardService)
	goal := handler.NewGoalHandler(app.GoalService, app.FileService)
	progress := handler.NewProgressHandler(app.ProgressService, app.FileService)
	note := handler.NewNoteHandler(app.NoteService)
	dashboard := handler.NewDashboardHandler(app.DashboardService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Health)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	mux.HandleFunc("GET /api/me", middleware.RequireAuth(auth.Me))
	mux.HandleFunc("DELETE /api/me", middleware.RequireAuth(auth.DeleteAccount))

	// Profile
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profile.Get))
	mux.HandleFunc("PUT /api/profile", middleware.RequireAuth(profile.Update))

	// Skills
	mux.HandleFunc("GET /api/skills", middleware.RequireAuth(skill.List))
	mux.HandleFunc("POST /api/skills", middleware.RequireAuth(skill.Create))
	mux.HandleFunc("GET /api/skills/stats", middleware.RequireAuth(skill.Stats))
	mux.HandleFunc("GET /api/skills/{id}", middleware.RequireAuth(skill.Get))
	mux.HandleFunc("PUT /api/skills/{id}", middleware.RequireAuth(skill.Update))
	mux.HandleFunc("DELETE /api/skills/{id}", middleware.RequireAuth(skill.Delete))
	mux.HandleFunc("POST /api/skills/{id}/complete", middleware.RequireAuth(skill.Complete))
	mux.HandleFunc("GET /api/skills/{id}/analytics", middleware.RequireAuth(skill.Analytics))

	// Goals
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("PUT /api/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))
	mux.HandleFunc("POST /api/goals/{id}/complete", middleware.RequireAuth(goal.Complete))
	mux.HandleFunc("POST /api/goals/{id}/roadmap", middleware.RequireAuth(goal.UploadRoadmap))

	// Progress
	mux.HandleFunc("GET /api/progress", middleware.RequireAuth(progress.List))
	mux.HandleFunc("POST /api/skills/{id}/progress", middleware.RequireAuth(progress.Log))
	mux.HandleFunc("PUT /api/progress/{id}", middleware.RequireAuth(progress.Update))
	mux.HandleFunc("DELETE /api/progress/{id}", middleware.RequireAuth(progress.Delete))
	mux.HandleFunc("POST /api/progress/{id}/certificate", middleware.RequireAuth(progress.UploadCertificate))
	mux.HandleFunc("POST /api/progress/{id}/notes", middleware.RequireAuth(progress.UploadNotes))

	// Notes
	mux.HandleFunc("GET /api/notes", middleware.RequireAuth(note.List))
	mux.HandleFunc("POST /api/skills/{id}/notes", middleware.RequireAuth(note.Create))
	mux.HandleFunc("DELETE /api/notes/{id}", middleware.RequireAuth(note.Delete))

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboard.Overview))
	mux.HandleFunc("GET /api/dashboard/charts", middleware.RequireAuth(dashboard.Charts))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserRepository, app.ProfileService),
	)

	return handler
}
