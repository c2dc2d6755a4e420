package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payrollController "github.com/OscarGirao89/FusionArte-sub000/internals/features/payroll/controller"
)

// PayrollAdminRoutes: settlement views (read-only, recomputed per request).
func PayrollAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &payrollController.Handler{DB: db}

	grp := admin.Group("/payroll")
	{
		grp.Get("/studio-expenses", h.StudioExpenses)
		grp.Get("/partners/:id/income", h.PartnerIncome)
	}
}
