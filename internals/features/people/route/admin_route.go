package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	peopleController "github.com/OscarGirao89/FusionArte-sub000/internals/features/people/controller"
)

// TeachersAdminRoutes: CRUD for teachers/partners.
func TeachersAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &peopleController.Handler{DB: db}

	grp := admin.Group("/teachers")
	{
		grp.Post("/", h.CreateTeacher)
		grp.Get("/", h.ListTeachers)
		grp.Get("/:id", h.GetTeacher)
		grp.Patch("/:id", h.UpdateTeacher)
		grp.Delete("/:id", h.DeleteTeacher)
	}
}
