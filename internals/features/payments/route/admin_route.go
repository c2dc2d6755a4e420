package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "github.com/OscarGirao89/FusionArte-sub000/internals/features/payments/controller"
)

// PaymentsAdminRoutes: purchase processing + invoice updates.
func PaymentsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &paymentController.Handler{DB: db}

	admin.Post("/purchases", h.CreatePurchase)

	grp := admin.Group("/payments")
	{
		grp.Get("/", h.ListPayments)
		grp.Get("/:id", h.GetPayment)
		grp.Patch("/:id", h.UpdatePayment)
	}
}

// PaymentsUserRoutes: the student's own invoices.
func PaymentsUserRoutes(user fiber.Router, db *gorm.DB) {
	h := &paymentController.Handler{DB: db}
	user.Get("/me/invoices", h.MyInvoices)
}
