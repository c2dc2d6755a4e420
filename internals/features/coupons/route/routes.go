package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	couponController "github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/controller"
)

// CouponsAdminRoutes: CRUD + validation endpoint.
func CouponsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &couponController.Handler{DB: db}

	grp := admin.Group("/coupons")
	{
		grp.Post("/", h.CreateCoupon)
		grp.Get("/", h.ListCoupons)
		grp.Patch("/:id", h.UpdateCoupon)
		grp.Delete("/:id", h.DeleteCoupon)
		grp.Post("/validate", h.ValidateCoupon)
	}
}

// CouponsUserRoutes: students can check a code before buying.
func CouponsUserRoutes(user fiber.Router, db *gorm.DB) {
	h := &couponController.Handler{DB: db}
	user.Post("/coupons/validate", h.ValidateCoupon)
}
