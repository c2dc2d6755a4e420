package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "github.com/OscarGirao89/FusionArte-sub000/internals/features/schedule/controller"
)

// SessionsAdminRoutes: CRUD + status workflow for class sessions.
func SessionsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &scheduleController.Handler{DB: db}

	grp := admin.Group("/sessions")
	{
		grp.Post("/", h.CreateSession)
		grp.Get("/", h.ListSessions)
		grp.Get("/:id", h.GetSession)
		grp.Patch("/:id", h.UpdateSession)
		grp.Post("/:id/status", h.UpdateSessionStatus)
		grp.Delete("/:id", h.DeleteSession)
	}
}

// SessionsPublicRoutes: read-only listing for the public schedule.
func SessionsPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := &scheduleController.Handler{DB: db}
	public.Get("/sessions", h.ListSessions)
	public.Get("/sessions/:id", h.GetSession)
}
