// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/OscarGirao89/FusionArte-sub000/internals/configs"
	couponRoute "github.com/OscarGirao89/FusionArte-sub000/internals/features/coupons/route"
	membershipRoute "github.com/OscarGirao89/FusionArte-sub000/internals/features/memberships/route"
	paymentRoute "github.com/OscarGirao89/FusionArte-sub000/internals/features/payments/route"
	payrollRoute "github.com/OscarGirao89/FusionArte-sub000/internals/features/payroll/route"
	peopleRoute "github.com/OscarGirao89/FusionArte-sub000/internals/features/people/route"
	scheduleRoute "github.com/OscarGirao89/FusionArte-sub000/internals/features/schedule/route"
	authRoute "github.com/OscarGirao89/FusionArte-sub000/internals/features/users/auth/route"
	authmw "github.com/OscarGirao89/FusionArte-sub000/internals/middlewares/auth"
)

/* =======================================================
   ROUTE INDEX
   /api/public — no auth
   /api/u      — any authenticated user
   /api/a      — admin + staff
======================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ---------- PUBLIC ----------
	public := api.Group("/public")
	authRoute.AuthPublicRoutes(public, db)
	membershipRoute.MembershipsPublicRoutes(public, db)
	scheduleRoute.SessionsPublicRoutes(public, db)

	// ---------- AUTHENTICATED USERS ----------
	user := api.Group("/u", authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	authRoute.AuthUserRoutes(user, db)
	membershipRoute.MembershipsUserRoutes(user, db)
	paymentRoute.PaymentsUserRoutes(user, db)
	couponRoute.CouponsUserRoutes(user, db)

	// ---------- ADMIN / STAFF ----------
	admin := api.Group("/a",
		authmw.AuthJWT(authmw.AuthJWTOpts{Secret: configs.JWTSecret}),
		authmw.RequireRoles("admin", "staff"),
	)
	peopleRoute.TeachersAdminRoutes(admin, db)
	scheduleRoute.SessionsAdminRoutes(admin, db)
	membershipRoute.MembershipsAdminRoutes(admin, db)
	couponRoute.CouponsAdminRoutes(admin, db)
	paymentRoute.PaymentsAdminRoutes(admin, db)
	payrollRoute.PayrollAdminRoutes(admin, db)
}
