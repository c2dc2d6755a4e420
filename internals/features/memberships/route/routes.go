package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	membershipController "github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/controller"
)

// MembershipsAdminRoutes: plan CRUD + validity preview + member lookup.
func MembershipsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &membershipController.Handler{DB: db}

	plans := admin.Group("/plans")
	{
		plans.Post("/", h.CreatePlan)
		plans.Get("/", h.ListPlans)
		plans.Get("/:id", h.GetPlan)
		plans.Patch("/:id", h.UpdatePlan)
		plans.Delete("/:id", h.DeletePlan)
		plans.Post("/:id/validity-preview", h.ValidityPreview)
	}

	admin.Get("/memberships/user/:user_id", h.GetMembershipByUser)
}

// MembershipsUserRoutes: the student's own membership.
func MembershipsUserRoutes(user fiber.Router, db *gorm.DB) {
	h := &membershipController.Handler{DB: db}
	user.Get("/me/membership", h.MyMembership)
}

// MembershipsPublicRoutes: plan catalog for the storefront.
func MembershipsPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := &membershipController.Handler{DB: db}
	public.Get("/plans", h.ListPlans)
	public.Get("/plans/:id", h.GetPlan)
}
